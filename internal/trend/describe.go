package trend

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/you/go-trip-tracker/internal/domain"
)

// Badge is the display text of a trend.
type Badge struct {
	Headline string `json:"headline"`
	Advice   string `json:"advice"`
	Price    string `json:"price"`
}

var printer = message.NewPrinter(language.AmericanEnglish)

func Describe(destination string, info domain.TrendInfo) Badge {
	if info.Direction == domain.TrendUp {
		return Badge{
			Headline: printer.Sprintf("%d%% above average", info.Percentage),
			Advice:   "Prices are rising for " + destination,
			Price:    printer.Sprintf("$%d", info.Price),
		}
	}
	return Badge{
		Headline: printer.Sprintf("%d%% below average", info.Percentage),
		Advice:   "Good time to book for " + destination,
		Price:    printer.Sprintf("$%d", info.Price),
	}
}
