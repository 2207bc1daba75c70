package domain

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

// TrendInfo is a synthetic price-trend signal for a destination.
// It carries no history and is regenerated on every render.
type TrendInfo struct {
	Direction  TrendDirection `json:"trend"`
	Percentage int            `json:"percentage"`
	Price      int            `json:"current_price"`
}
