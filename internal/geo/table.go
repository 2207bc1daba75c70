// Package geo holds the static coordinate table and the geometry derived from
// an itinerary path: its bounding-box center, bounds, leg distances and GeoJSON.
package geo

import (
	"sort"

	"github.com/you/go-trip-tracker/internal/domain"
)

// CoordinateTable maps an exact destination name to its location.
// Lookups are case and whitespace sensitive.
type CoordinateTable map[string]domain.GeoPoint

// DefaultTable returns the destinations offered by the add-trip form.
func DefaultTable() CoordinateTable {
	return CoordinateTable{
		"Chicago, IL":                {Lat: 41.8781, Lng: -87.6298},
		"Miami, FL":                  {Lat: 25.7617, Lng: -80.1918},
		"Vancouver, Canada":          {Lat: 49.2827, Lng: -123.1207},
		"Los Angeles, CA (hometown)": {Lat: 34.0522, Lng: -118.2437},
		"Wroclaw, Poland":            {Lat: 51.1079, Lng: 17.0385},
		"Berlin, Germany":            {Lat: 52.5200, Lng: 13.4050},
	}
}

func (t CoordinateTable) Lookup(destination string) (domain.GeoPoint, bool) {
	p, ok := t[destination]
	return p, ok
}

// Destinations returns the known destination names in alphabetical order.
func (t CoordinateTable) Destinations() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
