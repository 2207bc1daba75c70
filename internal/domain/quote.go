package domain

// PriceQuote is one airline's offer for a route on a date.
type PriceQuote struct {
	Airline   string `json:"airline"`
	Price     int    `json:"price"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Date      string `json:"date"`
}
