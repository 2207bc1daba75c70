package geo

import (
	"strconv"

	geojson "github.com/paulmach/go.geojson"
)

// Marker is one numbered stop on the rendered route.
type Marker struct {
	Order       int
	TripID      string
	Destination string
	Lat, Lng    float64
}

// FeatureCollection renders markers as numbered points joined by a single
// LineString in marker order. GeoJSON positions are [lng, lat].
func FeatureCollection(markers []Marker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(markers) == 0 {
		return fc
	}

	line := make([][]float64, 0, len(markers))
	for _, m := range markers {
		line = append(line, []float64{m.Lng, m.Lat})
	}
	if len(line) > 1 {
		route := geojson.NewLineStringFeature(line)
		route.SetProperty("kind", "route")
		fc.AddFeature(route)
	}

	for _, m := range markers {
		f := geojson.NewPointFeature([]float64{m.Lng, m.Lat})
		f.SetProperty("kind", "stop")
		f.SetProperty("order", m.Order)
		f.SetProperty("label", strconv.Itoa(m.Order))
		f.SetProperty("trip_id", m.TripID)
		f.SetProperty("destination", m.Destination)
		fc.AddFeature(f)
	}
	return fc
}
