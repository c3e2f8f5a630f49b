package metrics

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/fintrack/fintrack/pkg/bill"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/subscription"
	"github.com/shopspring/decimal"
)

// ErrInvalidConfiguration is returned when the monthly limit is not usable as
// a divisor.
var ErrInvalidConfiguration = errors.New("monthly limit must be positive")

// UrgencyThresholdDays is the horizon before a due date within which a bill
// counts as urgent.
const UrgencyThresholdDays = 3

var hundred = decimal.NewFromInt(100)

// TotalExpenses sums all expense amounts over the full history.
func TotalExpenses(expenses []expense.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// MonthlyExpenses sums amounts of expenses dated in the same calendar month
// and year as ref. The comparison is by calendar fields, not elapsed-day
// windows: Jan 31 and Feb 1 are different months however close they are.
func MonthlyExpenses(expenses []expense.Expense, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CategoryTotals groups expense amounts by category. Categories without any
// expense are absent from the result, never zero-valued entries.
func CategoryTotals(expenses []expense.Expense) map[expense.Category]decimal.Decimal {
	totals := make(map[expense.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// BudgetUsagePercent returns monthlyExpenses/monthlyLimit as a percentage.
// A non-positive limit yields ErrInvalidConfiguration instead of a division.
func BudgetUsagePercent(monthlyExpenses, monthlyLimit decimal.Decimal) (decimal.Decimal, error) {
	if !monthlyLimit.IsPositive() {
		return decimal.Zero, ErrInvalidConfiguration
	}
	return monthlyExpenses.Div(monthlyLimit).Mul(hundred), nil
}

// SubscriptionMonthlyCost sums all subscription amounts.
func SubscriptionMonthlyCost(subscriptions []subscription.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subscriptions {
		total = total.Add(s.Amount)
	}
	return total
}

// DaysUntilDue returns the ceiling of dueDate-today in whole days. Overdue
// bills report negative values; they are not filtered here.
func DaysUntilDue(dueDate, today time.Time) int {
	return int(math.Ceil(dueDate.Sub(today).Hours() / 24))
}

// UrgentBills returns the bills due within thresholdDays from today (overdue
// bills excluded), soonest first. The sort is stable so bills due the same
// day keep their insertion order.
func UrgentBills(bills []bill.Bill, today time.Time, thresholdDays int) []bill.Bill {
	urgent := make([]bill.Bill, 0)
	for _, b := range bills {
		days := DaysUntilDue(b.DueDate, today)
		if days >= 0 && days <= thresholdDays {
			urgent = append(urgent, b)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return DaysUntilDue(urgent[i].DueDate, today) < DaysUntilDue(urgent[j].DueDate, today)
	})
	return urgent
}
