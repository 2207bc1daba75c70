package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/go-trip-tracker/internal/domain"
)

var (
	chicago = domain.GeoPoint{Lat: 41.8781, Lng: -87.6298}
	miami   = domain.GeoPoint{Lat: 25.7617, Lng: -80.1918}
)

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()

	p, ok := tbl.Lookup("Chicago, IL")
	require.True(t, ok)
	require.Equal(t, chicago, p)

	_, ok = tbl.Lookup("chicago, il")
	require.False(t, ok, "lookup is exact")
	_, ok = tbl.Lookup("Nowhere, XX")
	require.False(t, ok)

	names := tbl.Destinations()
	require.Len(t, names, 6)
	require.Equal(t, "Berlin, Germany", names[0])
}

func TestCenter_Empty(t *testing.T) {
	require.Equal(t, domain.GeoPoint{Lat: 0, Lng: 0}, Center(nil))
	require.Equal(t, domain.GeoPoint{}, Center([]domain.GeoPoint{}))
}

func TestCenter_SinglePoint(t *testing.T) {
	require.Equal(t, miami, Center([]domain.GeoPoint{miami}))
}

func TestCenter_Square(t *testing.T) {
	got := Center([]domain.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 10, Lng: 10}})
	require.Equal(t, domain.GeoPoint{Lat: 5, Lng: 5}, got)
}

func TestCenter_UsesExtremesNotMean(t *testing.T) {
	got := Center([]domain.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 10, Lng: 10}, {Lat: 2, Lng: -10}})
	assert.InDelta(t, 5.0, got.Lat, 1e-9)
	assert.InDelta(t, 0.0, got.Lng, 1e-9)
}

func TestCenter_ChicagoMiami(t *testing.T) {
	got := Center([]domain.GeoPoint{chicago, miami})
	assert.InDelta(t, 33.8199, got.Lat, 1e-9)
	assert.InDelta(t, -83.9108, got.Lng, 1e-9)
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	require.False(t, ok)

	b, ok := BoundsOf([]domain.GeoPoint{chicago, miami})
	require.True(t, ok)
	require.Equal(t, domain.GeoPoint{Lat: 25.7617, Lng: -87.6298}, b.SouthWest)
	require.Equal(t, domain.GeoPoint{Lat: 41.8781, Lng: -80.1918}, b.NorthEast)
}

func TestLegs(t *testing.T) {
	legs, total := Legs([]domain.GeoPoint{chicago})
	require.Empty(t, legs)
	require.Zero(t, total)

	legs, total = Legs([]domain.GeoPoint{chicago, miami, chicago})
	require.Len(t, legs, 2)
	require.Equal(t, chicago, legs[0].From)
	require.Equal(t, miami, legs[0].To)
	assert.InDelta(t, 1910, legs[0].Km, 30)
	assert.InDelta(t, legs[0].Km, legs[1].Km, 0.2)
	assert.InDelta(t, legs[0].Km+legs[1].Km, total, 0.2)
}

func TestDistance_SamePoint(t *testing.T) {
	require.Zero(t, Distance(miami, miami))
}

func TestFeatureCollection(t *testing.T) {
	fc := FeatureCollection([]Marker{
		{Order: 1, TripID: "a", Destination: "Chicago, IL", Lat: chicago.Lat, Lng: chicago.Lng},
		{Order: 2, TripID: "b", Destination: "Miami, FL", Lat: miami.Lat, Lng: miami.Lng},
	})
	require.Len(t, fc.Features, 3)

	route := fc.Features[0]
	require.True(t, route.Geometry.IsLineString())
	require.Equal(t, [][]float64{{chicago.Lng, chicago.Lat}, {miami.Lng, miami.Lat}}, route.Geometry.LineString)

	stop := fc.Features[2]
	require.True(t, stop.Geometry.IsPoint())
	require.Equal(t, "b", stop.Properties["trip_id"])
	require.Equal(t, "2", stop.Properties["label"])

	raw, err := fc.MarshalJSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "FeatureCollection", decoded["type"])
}

func TestFeatureCollection_SingleStopHasNoRoute(t *testing.T) {
	fc := FeatureCollection([]Marker{{Order: 1, TripID: "a", Lat: 1, Lng: 2}})
	require.Len(t, fc.Features, 1)
	require.True(t, fc.Features[0].Geometry.IsPoint())

	require.Empty(t, FeatureCollection(nil).Features)
}
