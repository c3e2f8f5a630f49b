package settings

import "github.com/shopspring/decimal"

// DefaultTheme matches the presentation layer's initial theme.
const DefaultTheme = "light"

type Settings struct {
	// MonthlyLimit is the budget ceiling for the current calendar month.
	// Always positive; a non-positive limit is rejected at the boundary.
	MonthlyLimit decimal.Decimal
	// Theme is an opaque presentation token, persisted alongside the records
	// but never interpreted by the engines.
	Theme string
}
