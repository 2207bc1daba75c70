package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/you/go-trip-tracker/internal/session"
)

type selectRequest struct {
	TripID string `json:"trip_id"`
}

func GetSession(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.Snapshot(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// SelectTrip starts a price lookup for the chosen trip and answers 202 with
// the loading snapshot; GET /session reports how it ends.
func SelectTrip(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(req.TripID) == "" {
			writeError(w, http.StatusBadRequest, "trip_id required")
			return
		}
		if _, err := s.Select(r.Context(), req.TripID); err != nil {
			writeDomainError(w, r, err)
			return
		}
		snap, err := s.Snapshot(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, snap)
	}
}

func ClearSelection(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.ClearSelection()
		w.WriteHeader(http.StatusNoContent)
	}
}
