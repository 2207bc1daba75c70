package pricefetch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/go-trip-tracker/internal/domain"
	"github.com/you/go-trip-tracker/internal/pricefetch"
)

// gatedFetcher blocks each Fetch until the test releases it for that destination.
type gatedFetcher struct {
	mu    sync.Mutex
	gates map[string]chan result
}

type result struct {
	quotes []domain.PriceQuote
	err    error
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{gates: map[string]chan result{}}
}

func (g *gatedFetcher) gate(to string) chan result {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[to]
	if !ok {
		ch = make(chan result, 1)
		g.gates[to] = ch
	}
	return ch
}

// Fetch ignores cancellation so the test controls exactly when a stale
// result arrives.
func (g *gatedFetcher) Fetch(_ context.Context, q pricefetch.Query) ([]domain.PriceQuote, error) {
	r := <-g.gate(q.To)
	return r.quotes, r.err
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not finish")
	}
}

func TestTracker_InitiallyIdle(t *testing.T) {
	tr := pricefetch.NewTracker(newGatedFetcher(), nil)
	assert.Equal(t, pricefetch.StatusIdle, tr.State().Status)
}

func TestTracker_LoadingThenSuccess(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)
	q := pricefetch.Query{From: "LA", To: "Miami, FL", Date: "2024-06-17"}

	done := tr.Select(context.Background(), q)

	st := tr.State()
	require.Equal(t, pricefetch.StatusLoading, st.Status)
	require.Equal(t, q, *st.Query)
	require.Empty(t, st.Quotes)
	require.Empty(t, st.Error)

	f.gate("Miami, FL") <- result{quotes: []domain.PriceQuote{{Airline: "Delta", Price: 300}}}
	waitDone(t, done)

	st = tr.State()
	require.Equal(t, pricefetch.StatusSuccess, st.Status)
	require.Len(t, st.Quotes, 1)
	require.Empty(t, st.Error)
}

func TestTracker_LoadingThenError(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)

	done := tr.Select(context.Background(), pricefetch.Query{From: "A", To: "B", Date: "D"})
	f.gate("B") <- result{err: errors.New("failed to fetch flight prices: 400 Bad Request")}
	waitDone(t, done)

	st := tr.State()
	require.Equal(t, pricefetch.StatusError, st.Status)
	require.NotEmpty(t, st.Error)
	require.Empty(t, st.Quotes)
}

func TestTracker_StaleResultDiscarded(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)

	first := tr.Select(context.Background(), pricefetch.Query{From: "LA", To: "Miami, FL", Date: "2024-06-17"})
	second := tr.Select(context.Background(), pricefetch.Query{From: "LA", To: "Berlin, Germany", Date: "2024-08-25"})

	// newer request resolves first
	f.gate("Berlin, Germany") <- result{quotes: []domain.PriceQuote{{Airline: "United", Arrival: "Berlin, Germany"}}}
	waitDone(t, second)

	// then the superseded one arrives late
	f.gate("Miami, FL") <- result{quotes: []domain.PriceQuote{{Airline: "Delta", Arrival: "Miami, FL"}}}
	waitDone(t, first)

	st := tr.State()
	require.Equal(t, pricefetch.StatusSuccess, st.Status)
	require.Equal(t, "Berlin, Germany", st.Query.To)
	require.Equal(t, "Berlin, Germany", st.Quotes[0].Arrival)
}

func TestTracker_StaleResultWhileNewerPending(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)

	first := tr.Select(context.Background(), pricefetch.Query{To: "Miami, FL"})
	second := tr.Select(context.Background(), pricefetch.Query{To: "Berlin, Germany"})

	f.gate("Miami, FL") <- result{err: errors.New("late failure")}
	waitDone(t, first)

	st := tr.State()
	require.Equal(t, pricefetch.StatusLoading, st.Status)
	require.Equal(t, "Berlin, Germany", st.Query.To)

	f.gate("Berlin, Germany") <- result{quotes: []domain.PriceQuote{{Airline: "United"}}}
	waitDone(t, second)
	require.Equal(t, pricefetch.StatusSuccess, tr.State().Status)
}

func TestTracker_ClearDropsInFlight(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)

	done := tr.Select(context.Background(), pricefetch.Query{To: "Miami, FL"})
	tr.Clear()
	require.Equal(t, pricefetch.StatusIdle, tr.State().Status)

	f.gate("Miami, FL") <- result{quotes: []domain.PriceQuote{{Airline: "Delta"}}}
	waitDone(t, done)

	st := tr.State()
	require.Equal(t, pricefetch.StatusIdle, st.Status)
	require.Nil(t, st.Query)
}

func TestTracker_StateIsACopy(t *testing.T) {
	f := newGatedFetcher()
	tr := pricefetch.NewTracker(f, nil)

	done := tr.Select(context.Background(), pricefetch.Query{To: "X"})
	f.gate("X") <- result{quotes: []domain.PriceQuote{{Airline: "Delta"}}}
	waitDone(t, done)

	st := tr.State()
	st.Quotes[0].Airline = "changed"
	st.Query.To = "changed"

	again := tr.State()
	require.Equal(t, "Delta", again.Quotes[0].Airline)
	require.Equal(t, "X", again.Query.To)
}
