package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill has no paid state; it exists until deleted.
type Bill struct {
	ID     int64
	Name   string
	Amount decimal.Decimal
	// DueDate is a calendar date. Bills past their due date stay in the
	// collection and report negative days until due.
	DueDate time.Time
}
