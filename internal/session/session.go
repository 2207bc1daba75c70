// Package session owns the application state for one running server: the
// trip list, the selected trip and the price lookup for that selection.
// Every derived view is recomputed from the trip list on request.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you/go-trip-tracker/internal/dates"
	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/geo"
	"github.com/you/go-trip-tracker/internal/itinerary"
	"github.com/you/go-trip-tracker/internal/pricefetch"
	"github.com/you/go-trip-tracker/internal/trend"
)

// TripServicer is the trip operations the session depends on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// Card is a trip as shown in the trip list.
type Card struct {
	domain.Trip
	Dates    string           `json:"dates"`
	Trend    domain.TrendInfo `json:"trend"`
	Badge    trend.Badge      `json:"badge"`
	Selected bool             `json:"selected"`
}

// Snapshot is the selection and its price lookup.
type Snapshot struct {
	Selected *domain.Trip     `json:"selected"`
	Prices   pricefetch.State `json:"prices"`
}

type Session struct {
	trips   TripServicer
	table   geo.CoordinateTable
	trends  trend.Synthesizer
	prices  *pricefetch.Tracker
	homeOrg string

	mu       sync.Mutex
	selected string
}

func New(trips TripServicer, table geo.CoordinateTable, trends trend.Synthesizer, prices *pricefetch.Tracker, homeOrigin string) *Session {
	return &Session{
		trips:   trips,
		table:   table,
		trends:  trends,
		prices:  prices,
		homeOrg: homeOrigin,
	}
}

func (s *Session) Table() geo.CoordinateTable { return s.table }

// AddTrip validates and stores a new trip.
func (s *Session) AddTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return s.trips.Create(ctx, trip)
}

// DeleteTrip removes a trip. Deleting the selected trip clears the selection
// and drops its price lookup.
func (s *Session) DeleteTrip(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == id {
		s.selected = ""
		s.prices.Clear()
	}
	return nil
}

// Cards lists trips in insertion order, each with a freshly drawn trend.
func (s *Session) Cards(ctx context.Context) ([]Card, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	cards := make([]Card, len(trips))
	for i, t := range trips {
		info := s.trends.Trend(t.Destination)
		cards[i] = Card{
			Trip:     t,
			Dates:    dates.Range(t.StartDate, t.EndDate),
			Trend:    info,
			Badge:    trend.Describe(t.Destination, info),
			Selected: t.ID == selected,
		}
	}
	return cards, nil
}

// View derives the itinerary, path and map framing from the current trips.
func (s *Session) View(ctx context.Context) (itinerary.View, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return itinerary.View{}, err
	}
	return itinerary.Build(trips, s.table), nil
}

// Select makes id the selected trip and starts a price lookup from the home
// origin to its destination on its start date. Any earlier lookup is
// superseded. The returned channel closes when this lookup finishes.
func (s *Session) Select(ctx context.Context, id string) (<-chan struct{}, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session.Select: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = trip.ID
	q := pricefetch.Query{From: s.homeOrg, To: trip.Destination, Date: trip.StartDate}
	// the lookup outlives the request that triggered it
	return s.prices.Select(context.WithoutCancel(ctx), q), nil
}

// ClearSelection deselects the current trip, if any.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
	s.prices.Clear()
}

// Snapshot reports the selected trip and the state of its price lookup.
func (s *Session) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	id := s.selected
	snap := Snapshot{Prices: s.prices.State()}
	s.mu.Unlock()

	if id == "" {
		return snap, nil
	}
	trip, err := s.trips.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return snap, nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	snap.Selected = &trip
	return snap, nil
}
