package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/you/go-trip-tracker/internal/domain"
)

type watchUpdate struct {
	From   string              `json:"from"`
	To     string              `json:"to"`
	Date   string              `json:"date"`
	Quotes []domain.PriceQuote `json:"quotes"`
	At     time.Time           `json:"at"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the price endpoint is open to any origin
	},
}

// WatchHandler upgrades GET /ws/prices?from=&to=&date= and pushes a fresh set
// of quotes right away and then once per interval, until the client goes away
// or a lookup fails.
func WatchHandler(src QuoteSource, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from := strings.TrimSpace(q.Get("from"))
		to := strings.TrimSpace(q.Get("to"))
		date := strings.TrimSpace(q.Get("date"))
		if from == "" || to == "" || date == "" {
			writeError(w, http.StatusBadRequest, missingParams)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		// a hijacked connection never cancels r.Context; reading is how we
		// notice the client leaving
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			quotes, err := src.Quotes(ctx, from, to, date)
			if err != nil {
				if ctx.Err() == nil {
					_ = conn.WriteJSON(errorResponse{Error: err.Error()})
				}
				return
			}
			upd := watchUpdate{From: from, To: to, Date: date, Quotes: quotes, At: time.Now().UTC()}
			if err := conn.WriteJSON(upd); err != nil {
				slog.DebugContext(ctx, "websocket write failed", "error", err)
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}
}
