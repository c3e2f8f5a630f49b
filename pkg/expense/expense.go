package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed closed set of expense tags. Unknown categories
// are rejected at the service boundary and never reach the engines.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryGroceries Category = "Groceries"
	CategoryTravel    Category = "Travel"
	CategoryFun       Category = "Fun"
	CategoryShopping  Category = "Shopping"
	CategoryEducation Category = "Education"
)

// Categories returns all categories in declaration order. Rule evaluation and
// presentation iterate in this order to stay deterministic.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryGroceries,
		CategoryTravel,
		CategoryFun,
		CategoryShopping,
		CategoryEducation,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryGroceries, CategoryTravel, CategoryFun, CategoryShopping, CategoryEducation:
		return true
	}
	return false
}

// Expense is immutable once created; corrections are delete and recreate.
type Expense struct {
	ID       int64
	Amount   decimal.Decimal
	Category Category
	// Date is the calendar day the expense belongs to. Only its year, month,
	// and day fields are meaningful.
	Date      time.Time
	Notes     string
	Timestamp time.Time
}
