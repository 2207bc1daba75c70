// Package itinerary turns an unordered set of trips into the ordered itinerary,
// the projected path, and the map framing derived from it.
package itinerary

import (
	"sort"
	"time"

	"github.com/you/go-trip-tracker/internal/dates"
	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/geo"
)

// NoUpcomingTrips is the header label when the itinerary is empty.
const NoUpcomingTrips = "No upcoming trips"

// Waypoint is one resolved path point. Index is the position of its trip in
// the itinerary the path was projected from.
type Waypoint struct {
	Point  domain.GeoPoint `json:"point"`
	Index  int             `json:"index"`
	TripID string          `json:"trip_id"`
}

// Sort returns a copy of trips ordered by start date ascending. Equal dates
// keep their input order. Trips whose start date does not parse go last, in
// input order. The input slice is not modified.
func Sort(trips []domain.Trip) []domain.Trip {
	type keyed struct {
		trip  domain.Trip
		start time.Time
		ok    bool
	}
	ks := make([]keyed, len(trips))
	for i, t := range trips {
		start, err := dates.Parse(t.StartDate)
		ks[i] = keyed{trip: t, start: start, ok: err == nil}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.start.Before(b.start)
	})

	out := make([]domain.Trip, len(ks))
	for i, k := range ks {
		out[i] = k.trip
	}
	return out
}

// Project maps each itinerary entry through table. Entries whose destination
// is not in the table are left out of the path; the itinerary is untouched.
func Project(itinerary []domain.Trip, table geo.CoordinateTable) []Waypoint {
	path := make([]Waypoint, 0, len(itinerary))
	for i, t := range itinerary {
		p, ok := table.Lookup(t.Destination)
		if !ok {
			continue
		}
		path = append(path, Waypoint{Point: p, Index: i, TripID: t.ID})
	}
	return path
}

// Points strips the back-references from a path.
func Points(path []Waypoint) []domain.GeoPoint {
	out := make([]domain.GeoPoint, len(path))
	for i, w := range path {
		out[i] = w.Point
	}
	return out
}
