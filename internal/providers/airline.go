package providers

import (
	"context"
	"math/rand/v2"

	"github.com/you/go-trip-tracker/internal/domain"
)

// Airlines quoted by the mock price endpoint, in response order.
var Airlines = []string{"United", "American Airlines", "Delta", "Southwest"}

const (
	basePrice   = 300
	priceSpread = 200
)

// MockAirline fabricates a single quote with a price in [300, 499].
// There is no real fare source behind it.
type MockAirline struct {
	name string
}

func NewMockAirline(name string) *MockAirline {
	return &MockAirline{name: name}
}

// MockAirlines returns one provider per entry in Airlines.
func MockAirlines() []QuoteProvider {
	out := make([]QuoteProvider, 0, len(Airlines))
	for _, a := range Airlines {
		out = append(out, NewMockAirline(a))
	}
	return out
}

func (m *MockAirline) Name() string { return m.name }

func (m *MockAirline) Quote(ctx context.Context, origin, destination, date string) ([]domain.PriceQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []domain.PriceQuote{{
		Airline:   m.name,
		Price:     basePrice + rand.IntN(priceSpread),
		Departure: origin,
		Arrival:   destination,
		Date:      date,
	}}, nil
}
