// Package httpx exposes the trip tracker and the mock price endpoint over HTTP.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/you/go-trip-tracker/internal/auth"
	"github.com/you/go-trip-tracker/internal/config"
	"github.com/you/go-trip-tracker/internal/middleware"
	"github.com/you/go-trip-tracker/internal/session"
)

type Deps struct {
	Config  *config.Config
	Log     *slog.Logger
	Session *session.Session
	Quotes  QuoteSource
}

// NewRouter wires every route. Trip and session routes are open; the price
// endpoint and the price watch require a bearer token.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(d.Log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", Health)
	r.Post("/auth/login", auth.LoginHandler(d.Config))

	r.Get("/trips", ListTrips(d.Session))
	r.Post("/trips", CreateTrip(d.Session))
	r.Delete("/trips/{id}", DeleteTrip(d.Session))
	r.Get("/destinations", ListDestinations(d.Session))

	r.Get("/itinerary", Itinerary(d.Session))
	r.Get("/itinerary.geojson", ItineraryGeoJSON(d.Session))
	r.Get("/itinerary.ics", ItineraryICS(d.Session))

	r.Get("/session", GetSession(d.Session))
	r.Put("/session/selection", SelectTrip(d.Session))
	r.Delete("/session/selection", ClearSelection(d.Session))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewOpenCORS(middleware.PriceCORSHeaders))
		r.Options("/flight-prices", PricePreflight)
		r.With(auth.RequireBearer(d.Config)).Get("/flight-prices", PriceHandler(d.Quotes))
	})
	r.With(auth.RequireBearer(d.Config)).Get("/ws/prices", WatchHandler(d.Quotes, d.Config.WatchInterval))

	return r
}
