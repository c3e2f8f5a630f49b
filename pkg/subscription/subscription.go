package subscription

import "github.com/shopspring/decimal"

// Icons is the fixed glyph palette a subscription can carry. The icon is
// purely presentational and passed through opaquely everywhere else.
var Icons = []string{"🎬", "🎵", "☁️", "📺", "🎮", "📱", "💻", "📚", "🏋️", "🍕"}

type Subscription struct {
	ID     int64
	Name   string
	Amount decimal.Decimal
	// RenewalDay is the day of month (1-31) the subscription renews on.
	RenewalDay int
	Icon       string
}

func ValidIcon(icon string) bool {
	for _, known := range Icons {
		if icon == known {
			return true
		}
	}
	return false
}
