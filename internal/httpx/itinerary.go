package httpx

import (
	"net/http"
	"time"

	"github.com/you/go-trip-tracker/internal/calendar"
	"github.com/you/go-trip-tracker/internal/geo"
	"github.com/you/go-trip-tracker/internal/session"
)

func Itinerary(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.View(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// ItineraryGeoJSON renders the path as a route line plus numbered stops.
func ItineraryGeoJSON(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.View(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		body, err := geo.FeatureCollection(v.Markers()).MarshalJSON()
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write(body)
	}
}

func ItineraryICS(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.View(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		body, err := calendar.Encode(v.Itinerary, time.Now())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
		_, _ = w.Write(body)
	}
}
