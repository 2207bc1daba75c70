// Package trend produces the price-trend badge shown on each trip card.
//
// The only implementation is Random, a placeholder until a real pricing-trend
// feed exists. Its output is not seeded and two calls for the same destination
// will usually differ.
package trend

import (
	"math/rand/v2"

	"github.com/you/go-trip-tracker/internal/domain"
)

const (
	MinPercentage = 5
	MaxPercentage = 24
	MinPrice      = 200
	MaxPrice      = 499
)

// Synthesizer yields a trend for a destination label.
type Synthesizer interface {
	Trend(destination string) domain.TrendInfo
}

// Random draws direction, percentage and price independently and uniformly.
// The destination is accepted for display only.
type Random struct {
	// intn returns a value in [0,n). Nil means math/rand/v2.IntN.
	intn func(n int) int
}

func NewRandom() *Random {
	return &Random{}
}

func (r *Random) Trend(_ string) domain.TrendInfo {
	intn := r.intn
	if intn == nil {
		intn = rand.IntN
	}
	dir := domain.TrendDown
	if intn(2) == 1 {
		dir = domain.TrendUp
	}
	return domain.TrendInfo{
		Direction:  dir,
		Percentage: MinPercentage + intn(MaxPercentage-MinPercentage+1),
		Price:      MinPrice + intn(MaxPrice-MinPrice+1),
	}
}
