package pricefetch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/you/go-trip-tracker/internal/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a snapshot of the tracker. Quotes is set only in StatusSuccess and
// Error only in StatusError.
type State struct {
	Status Status              `json:"status"`
	Query  *Query              `json:"query,omitempty"`
	Quotes []domain.PriceQuote `json:"quotes,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Fetcher is satisfied by *Client.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]domain.PriceQuote, error)
}

// Tracker holds the state of the latest quote request. Every Select starts a
// new generation; a request that finishes after a newer Select or Clear is
// dropped, so a stale answer never overwrites the current one.
type Tracker struct {
	fetcher Fetcher
	log     *slog.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State
}

func NewTracker(f Fetcher, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{fetcher: f, log: log, state: State{Status: StatusIdle}}
}

// Select moves to StatusLoading for q and fetches in the background. The
// returned channel is closed once this request has finished, whether its
// result was applied or discarded.
func (t *Tracker) Select(ctx context.Context, q Query) <-chan struct{} {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.state = State{Status: StatusLoading, Query: &q}
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		quotes, err := t.fetcher.Fetch(ctx, q)
		t.finish(gen, q, quotes, err)
	}()
	return done
}

// Clear drops any request in flight and returns to StatusIdle.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.state = State{Status: StatusIdle}
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.state
	if s.Quotes != nil {
		s.Quotes = append([]domain.PriceQuote(nil), s.Quotes...)
	}
	if s.Query != nil {
		q := *s.Query
		s.Query = &q
	}
	return s
}

func (t *Tracker) finish(gen uint64, q Query, quotes []domain.PriceQuote, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		t.log.Debug("discarding superseded price result", "to", q.To, "date", q.Date)
		return
	}
	t.cancel = nil
	if err != nil {
		t.log.Warn("price fetch failed", "to", q.To, "date", q.Date, "error", err)
		t.state = State{Status: StatusError, Query: &q, Error: err.Error()}
		return
	}
	t.state = State{Status: StatusSuccess, Query: &q, Quotes: quotes}
}
