package itinerary

import (
	"github.com/you/go-trip-tracker/internal/dates"
	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/geo"
)

// View is everything a map renderer needs, recomputed from the trip list.
type View struct {
	Itinerary []domain.Trip   `json:"itinerary"`
	Path      []Waypoint      `json:"path"`
	Center    domain.GeoPoint `json:"center"`
	Bounds    *geo.Bounds     `json:"bounds,omitempty"`
	Legs      []geo.Leg       `json:"legs"`
	TotalKm   float64         `json:"total_km"`
	NextTrip  string          `json:"next_trip"`
}

// Build runs the whole derivation: sort, project, frame and measure.
func Build(trips []domain.Trip, table geo.CoordinateTable) View {
	sorted := Sort(trips)
	path := Project(sorted, table)
	points := Points(path)

	v := View{
		Itinerary: sorted,
		Path:      path,
		Center:    geo.Center(points),
		NextTrip:  NoUpcomingTrips,
	}
	if b, ok := geo.BoundsOf(points); ok {
		v.Bounds = &b
	}
	v.Legs, v.TotalKm = geo.Legs(points)
	if v.Legs == nil {
		v.Legs = []geo.Leg{}
	}
	if len(sorted) > 0 {
		v.NextTrip = dates.Display(sorted[0].StartDate)
	}
	return v
}

// Markers numbers the path stops 1..n for the map.
func (v View) Markers() []geo.Marker {
	out := make([]geo.Marker, len(v.Path))
	for i, w := range v.Path {
		out[i] = geo.Marker{
			Order:       i + 1,
			TripID:      w.TripID,
			Destination: v.Itinerary[w.Index].Destination,
			Lat:         w.Point.Lat,
			Lng:         w.Point.Lng,
		}
	}
	return out
}
