package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/you/go-trip-tracker/internal/dates"
	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/store"
)

// DefaultImageURL is used when a new trip has no image.
const DefaultImageURL = "https://images.unsplash.com/photo-1488085061387-422e29b40080?auto=format&fit=crop&q=80&w=1000"

// TripService validates trips before they reach the store.
type TripService struct {
	store store.TripStore
	newID func() string
}

func NewTripService(s store.TripStore) *TripService {
	return &TripService{store: s, newID: uuid.NewString}
}

// Create assigns a fresh ID and stores the trip.
// Returns domain.ErrValidation if a required field is missing, a date does
// not parse, or the end date is before the start date.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.StartDate = strings.TrimSpace(trip.StartDate)
	trip.EndDate = strings.TrimSpace(trip.EndDate)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.ImageURL == "" {
		trip.ImageURL = DefaultImageURL
	}
	trip.ID = s.newID()

	created, err := s.store.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return t, nil
}

// List returns all trips in insertion order. Never nil.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Seed stores trips as given, keeping their IDs. Used for demo data.
func (s *TripService) Seed(ctx context.Context, trips []domain.Trip) error {
	for _, t := range trips {
		if _, err := s.store.Create(ctx, t); err != nil {
			return fmt.Errorf("service.TripService.Seed: %w", err)
		}
	}
	return nil
}

func validateTrip(t domain.Trip) error {
	var missing []string
	if t.Destination == "" {
		missing = append(missing, "destination")
	}
	if t.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if t.EndDate == "" {
		missing = append(missing, "end_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", domain.ErrValidation, strings.Join(missing, ", "))
	}

	start, err := dates.Parse(t.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrValidation)
	}
	end, err := dates.Parse(t.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
