package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/you/go-trip-tracker/internal/domain"
)

type ProviderMock struct {
	name            string
	quotes          []domain.PriceQuote
	delay           time.Duration
	errorOutMessage *string
	callCount       *int32
}

func (p ProviderMock) Name() string {
	return p.name
}

func (p ProviderMock) Quote(ctx context.Context, o, d, dt string) ([]domain.PriceQuote, error) {
	if p.callCount != nil {
		atomic.AddInt32(p.callCount, 1)
	}
	if p.errorOutMessage != nil {
		return nil, errors.New(*p.errorOutMessage)
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return p.quotes, nil
}
