package geo

import (
	"math"

	"github.com/jftuga/geodist"

	"github.com/you/go-trip-tracker/internal/domain"
)

// Leg is the hop between two consecutive path points.
type Leg struct {
	From domain.GeoPoint `json:"from"`
	To   domain.GeoPoint `json:"to"`
	Km   float64         `json:"km"`
}

// Legs measures every consecutive pair of points and returns the hops and
// their total length in kilometres. Fewer than two points yields no legs.
func Legs(points []domain.GeoPoint) ([]Leg, float64) {
	if len(points) < 2 {
		return nil, 0
	}
	legs := make([]Leg, 0, len(points)-1)
	var total float64
	for i := 1; i < len(points); i++ {
		km := Distance(points[i-1], points[i])
		legs = append(legs, Leg{From: points[i-1], To: points[i], Km: km})
		total += km
	}
	return legs, round1(total)
}

// Distance returns the ellipsoidal distance in km, rounded to 0.1 km.
// Vincenty does not converge for nearly antipodal points; haversine is used then.
func Distance(a, b domain.GeoPoint) float64 {
	from := geodist.Coord{Lat: a.Lat, Lon: a.Lng}
	to := geodist.Coord{Lat: b.Lat, Lon: b.Lng}
	_, km, err := geodist.VincentyDistance(from, to)
	if err != nil {
		_, km = geodist.HaversineDistance(from, to)
	}
	return round1(km)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
