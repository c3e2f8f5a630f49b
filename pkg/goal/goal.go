package goal

import "github.com/shopspring/decimal"

// Goal is a savings goal. Target is fixed at creation; Saved only grows, via
// contributions, and never exceeds Target.
type Goal struct {
	ID     int64
	Name   string
	Target decimal.Decimal
	Saved  decimal.Decimal
}

// Progress returns saved/target as a percentage. Target is positive by
// construction, but a zero target reports zero progress rather than dividing.
func (g Goal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	return g.Saved.Div(g.Target).Mul(decimal.NewFromInt(100))
}

// Remaining returns the amount still missing to reach the target.
func (g Goal) Remaining() decimal.Decimal {
	return g.Target.Sub(g.Saved)
}
