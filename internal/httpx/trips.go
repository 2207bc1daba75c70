package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/session"
)

// ListTrips returns the trip cards in insertion order.
func ListTrips(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := s.Cards(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, cards)
	}
}

func CreateTrip(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.Trip
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		in.ID = ""
		created, err := s.AddTrip(r.Context(), in)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func DeleteTrip(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteTrip(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListDestinations returns the destinations that have coordinates.
func ListDestinations(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Table().Destinations())
	}
}
