package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/providers"
)

var ErrNoQuotes = errors.New("no quotes found")

// QuoteService asks every provider for the same route at once and returns
// their quotes in provider order. Nothing is kept between calls.
type QuoteService struct {
	providers []providers.QuoteProvider
	timeout   time.Duration
}

func NewQuoteService(prov []providers.QuoteProvider, timeout time.Duration) *QuoteService {
	return &QuoteService{providers: prov, timeout: timeout}
}

func (s *QuoteService) Quotes(ctx context.Context, origin, dest, date string) ([]domain.PriceQuote, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// one slot per provider keeps the response order stable without a lock
	slots := make([][]domain.PriceQuote, len(s.providers))
	g, ctx := errgroup.WithContext(ctx)

	for i, p := range s.providers {
		g.Go(func() error {
			qs, err := p.Quote(ctx, origin, dest, date)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
			slots[i] = qs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.PriceQuote
	for _, qs := range slots {
		all = append(all, qs...)
	}
	if len(all) == 0 {
		return nil, ErrNoQuotes
	}
	return all, nil
}
