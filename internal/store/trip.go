// Package store keeps the trip list in process memory. It is the sole owner
// of trip records; nothing is written to disk.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/you/go-trip-tracker/internal/domain"
)

// TripStore defines the persistence operations for trips.
// Trips are only ever added or removed, never updated.
type TripStore interface {
	// Create appends trip. The caller assigns the ID.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID returns domain.ErrNotFound if no trip has that ID.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips in insertion order.
	List(ctx context.Context) ([]domain.Trip, error)

	// Delete returns domain.ErrNotFound if no trip has that ID.
	Delete(ctx context.Context, id string) error
}

type memTripStore struct {
	mu    sync.RWMutex
	trips []domain.Trip
}

func NewMemTripStore() TripStore {
	return &memTripStore{}
}

func (s *memTripStore) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.ID == trip.ID {
			return domain.Trip{}, fmt.Errorf("store.TripStore.Create: duplicate id %q", trip.ID)
		}
	}
	s.trips = append(s.trips, trip)
	return trip, nil
}

func (s *memTripStore) GetByID(_ context.Context, id string) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("store.TripStore.GetByID: %w", domain.ErrNotFound)
}

func (s *memTripStore) List(_ context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out, nil
}

func (s *memTripStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.trips {
		if t.ID == id {
			s.trips = append(s.trips[:i:i], s.trips[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store.TripStore.Delete: %w", domain.ErrNotFound)
}
