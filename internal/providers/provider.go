package providers

import (
	"context"

	"github.com/you/go-trip-tracker/internal/domain"
)

// QuoteProvider prices one route on one date for a single airline.
type QuoteProvider interface {
	Name() string
	Quote(ctx context.Context, origin, destination, date string) ([]domain.PriceQuote, error)
}
