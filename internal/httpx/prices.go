package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/middleware"
)

// QuoteSource produces quotes for one route and date.
type QuoteSource interface {
	Quotes(ctx context.Context, origin, dest, date string) ([]domain.PriceQuote, error)
}

const missingParams = "Missing required parameters"

var priceAllowHeaders = strings.Join(middleware.PriceCORSHeaders, ", ")

// setPriceCORS stamps the open CORS headers on every price response, including
// requests that carry no Origin.
func setPriceCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", priceAllowHeaders)
}

// PriceHandler serves GET /flight-prices?from=&to=&date=.
func PriceHandler(src QuoteSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setPriceCORS(w)
		q := r.URL.Query()
		from := strings.TrimSpace(q.Get("from"))
		to := strings.TrimSpace(q.Get("to"))
		date := strings.TrimSpace(q.Get("date"))
		if from == "" || to == "" || date == "" {
			writeError(w, http.StatusBadRequest, missingParams)
			return
		}

		quotes, err := src.Quotes(r.Context(), from, to, date)
		if err != nil {
			slog.ErrorContext(r.Context(), "quote lookup failed",
				"from", from, "to", to, "date", date, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, quotes)
	}
}

// PricePreflight answers OPTIONS /flight-prices with 200 and no body.
func PricePreflight(w http.ResponseWriter, _ *http.Request) {
	setPriceCORS(w)
	w.WriteHeader(http.StatusOK)
}
