package geo

import "github.com/you/go-trip-tracker/internal/domain"

// Bounds is the axis-aligned box enclosing a set of points.
type Bounds struct {
	SouthWest domain.GeoPoint `json:"south_west"`
	NorthEast domain.GeoPoint `json:"north_east"`
}

// BoundsOf returns the extremes of points. ok is false when points is empty.
func BoundsOf(points []domain.GeoPoint) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b.SouthWest, b.NorthEast = points[0], points[0]
	for _, p := range points[1:] {
		b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	}
	return b, true
}

// Center returns the midpoint of the bounding box of points, or (0,0) when
// there are none. It is a framing hint for the map, not a geodesic centroid:
// paths crossing the antimeridian are not special-cased.
func Center(points []domain.GeoPoint) domain.GeoPoint {
	b, ok := BoundsOf(points)
	if !ok {
		return domain.GeoPoint{}
	}
	return domain.GeoPoint{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
