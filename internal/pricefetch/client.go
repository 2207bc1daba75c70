// Package pricefetch requests price quotes for a route and tracks the state of
// the most recent request on behalf of the currently selected trip.
package pricefetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/you/go-trip-tracker/internal/domain"
)

// maxResponseSize caps how much of a quote response is read.
const maxResponseSize = 1 << 20

// Query identifies one quote request.
type Query struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// Client calls the flight-prices endpoint. It makes exactly one request per
// Fetch and never retries.
type Client struct {
	endpoint   string
	credential string
	http       *http.Client
}

func NewClient(endpoint, credential string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		credential: credential,
		http:       &http.Client{Timeout: timeout},
	}
}

func (c *Client) Fetch(ctx context.Context, q Query) ([]domain.PriceQuote, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid price endpoint: %w", err)
	}
	params := u.Query()
	params.Set("from", q.From)
	params.Set("to", q.To)
	params.Set("date", q.Date)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.credential)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch flight prices: %s", resp.Status)
	}

	var quotes []domain.PriceQuote
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to read flight prices: %w", err)
	}
	if quotes == nil {
		quotes = []domain.PriceQuote{}
	}
	return quotes, nil
}
