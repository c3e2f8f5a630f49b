package insight

import (
	"fmt"
	"time"

	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/metrics"
	"github.com/shopspring/decimal"
)

// maxAdvisories caps the generated feed: only the first five advisories in
// rule order are kept, never re-sorted by severity.
const maxAdvisories = 5

var (
	usageCritical    = decimal.NewFromInt(90)
	usageWarning     = decimal.NewFromInt(75)
	usageComfortable = decimal.NewFromInt(50)
	usageSavingsRoom = decimal.NewFromInt(70)

	overspendFactor   = decimal.NewFromFloat(1.5)
	overspendCut      = decimal.NewFromFloat(0.2)
	goalAlmostThere   = decimal.NewFromInt(90)
	goalSlowProgress  = decimal.NewFromInt(30)
	goalMonthlyShare  = decimal.NewFromFloat(0.1)
	subscriptionShare = decimal.NewFromFloat(0.15)
	savingsSplit      = decimal.NewFromFloat(0.5)

	hundred = decimal.NewFromInt(100)
)

// Rule is one independent heuristic: it inspects the input and contributes
// zero or more advisories. Rules never short-circuit each other.
type Rule struct {
	Name     string
	Evaluate func(Input) []Advisory
}

// battery is the fixed evaluation order. Changing this order changes which
// advisories survive the cap, so it is part of the output contract.
var battery = []Rule{
	{Name: "budget-level", Evaluate: budgetLevel},
	{Name: "category-overspend", Evaluate: categoryOverspend},
	{Name: "spending-pace", Evaluate: spendingPace},
	{Name: "urgent-bills", Evaluate: urgentBills},
	{Name: "goal-progress", Evaluate: goalProgress},
	{Name: "subscription-load", Evaluate: subscriptionLoad},
	{Name: "savings-suggestion", Evaluate: savingsSuggestion},
}

// Generate evaluates the whole battery in order and returns at most
// maxAdvisories advisories. When no rule fires it returns exactly one
// all-clear message.
func Generate(in Input) []Advisory {
	advisories := make([]Advisory, 0)
	for _, rule := range battery {
		advisories = append(advisories, rule.Evaluate(in)...)
	}
	if len(advisories) == 0 {
		return []Advisory{{
			Severity: SeveritySuccess,
			Title:    "All Good!",
			Message:  "Your finances look healthy. Keep tracking your expenses and stay on budget!",
			Color:    colorSuccess,
		}}
	}
	if len(advisories) > maxAdvisories {
		advisories = advisories[:maxAdvisories]
	}
	return advisories
}

// budgetLevel emits at most one advisory: critical at >=90% usage, warning at
// >=75%, an encouragement below 50%, nothing in between.
func budgetLevel(in Input) []Advisory {
	if !in.Metrics.LimitValid {
		return nil
	}
	usage := in.Metrics.BudgetUsagePercent

	switch {
	case usage.GreaterThanOrEqual(usageCritical):
		return []Advisory{{
			Severity: SeverityCritical,
			Title:    "Budget Alert!",
			Message: fmt.Sprintf("You've used %s%% of your monthly budget. Consider reducing spending.",
				usage.StringFixed(0)),
			Color: colorCritical,
		}}
	case usage.GreaterThanOrEqual(usageWarning):
		remaining := in.Metrics.MonthlyLimit.Sub(in.Metrics.MonthlyExpenses)
		return []Advisory{{
			Severity: SeverityWarning,
			Title:    "Approaching Limit",
			Message: fmt.Sprintf("You've spent %s%% of your budget. You have ₹%s left.",
				usage.StringFixed(0), remaining.StringFixed(0)),
			Color: colorWarning,
		}}
	case usage.LessThan(usageComfortable):
		return []Advisory{{
			Severity: SeveritySuccess,
			Title:    "Great Job!",
			Message: fmt.Sprintf("You're doing well! Only %s%% of budget used. Keep it up!",
				usage.StringFixed(0)),
			Color: colorSuccess,
		}}
	}
	return nil
}

// categoryOverspend warns for every category spending more than 1.5x the
// average across categories with any spend. Categories are walked in
// declaration order so the output is deterministic.
func categoryOverspend(in Input) []Advisory {
	totals := in.Metrics.CategoryTotals
	if len(totals) == 0 {
		return nil
	}
	average := in.Metrics.MonthlyExpenses.Div(decimal.NewFromInt(int64(len(totals))))
	threshold := average.Mul(overspendFactor)

	var advisories []Advisory
	for _, category := range expense.Categories() {
		amount, ok := totals[category]
		if !ok || !amount.GreaterThan(threshold) {
			continue
		}
		advisories = append(advisories, Advisory{
			Severity: SeverityWarning,
			Title:    fmt.Sprintf("High %s Spending", category),
			Message: fmt.Sprintf("You're spending ₹%s on %s. Consider reducing by 20%% to save ₹%s.",
				amount.StringFixed(0), category, amount.Mul(overspendCut).StringFixed(0)),
			Color: colorWarning,
		})
	}
	return advisories
}

// spendingPace projects the month's spend from the daily average so far and
// flags a projected overshoot of the limit.
func spendingPace(in Input) []Advisory {
	if !in.Metrics.LimitValid {
		return nil
	}
	day := in.Now.Day()
	if day < 1 {
		return nil
	}
	daysInMonth := time.Date(in.Now.Year(), in.Now.Month()+1, 0, 0, 0, 0, 0, in.Now.Location()).Day()

	dailyAverage := in.Metrics.MonthlyExpenses.Div(decimal.NewFromInt(int64(day)))
	projected := dailyAverage.Mul(decimal.NewFromInt(int64(daysInMonth)))
	if !projected.GreaterThan(in.Metrics.MonthlyLimit) {
		return nil
	}

	overshoot := projected.Sub(in.Metrics.MonthlyLimit)
	return []Advisory{{
		Severity: SeverityCritical,
		Title:    "Spending Pace Warning",
		Message: fmt.Sprintf("At current pace, you'll spend ₹%s this month, exceeding your limit by ₹%s.",
			projected.StringFixed(0), overshoot.StringFixed(0)),
		Color: colorCritical,
	}}
}

// urgentBills summarizes all bills due within the urgency window in a single
// warning.
func urgentBills(in Input) []Advisory {
	urgent := in.Metrics.UrgentBills
	if len(urgent) == 0 {
		return nil
	}
	total := decimal.Zero
	for _, b := range urgent {
		total = total.Add(b.Amount)
	}
	return []Advisory{{
		Severity: SeverityWarning,
		Title:    "Urgent Bills",
		Message: fmt.Sprintf("%d bill(s) due in %d days. Total: ₹%s. Don't forget to pay!",
			len(urgent), metrics.UrgencyThresholdDays, total.StringFixed(0)),
		Color: colorWarning,
	}}
}

// goalProgress emits per goal, in goal list order: a cheer at >=90% progress,
// or a months-to-completion projection below 30% once saving has started.
func goalProgress(in Input) []Advisory {
	var advisories []Advisory
	for _, g := range in.Goals {
		progress := g.Progress()

		if progress.GreaterThanOrEqual(goalAlmostThere) {
			advisories = append(advisories, Advisory{
				Severity: SeveritySuccess,
				Title:    fmt.Sprintf("Almost There: %s", g.Name),
				Message: fmt.Sprintf("Only ₹%s more to reach your goal! You're %s%% there.",
					g.Remaining().StringFixed(0), progress.StringFixed(0)),
				Color: colorSuccess,
			})
			continue
		}

		if progress.LessThan(goalSlowProgress) && g.Saved.IsPositive() && in.Metrics.LimitValid {
			monthlySaving := in.Metrics.MonthlyLimit.Mul(goalMonthlyShare)
			if !monthlySaving.IsPositive() {
				continue
			}
			months := g.Remaining().Div(monthlySaving).Ceil().IntPart()
			advisories = append(advisories, Advisory{
				Severity: SeverityInfo,
				Title:    fmt.Sprintf("%s Progress", g.Name),
				Message: fmt.Sprintf("Save ₹%s/month to reach your goal in %d months.",
					monthlySaving.StringFixed(0), months),
				Color: colorInfo,
			})
		}
	}
	return advisories
}

// subscriptionLoad warns when subscriptions eat more than 15% of the limit.
func subscriptionLoad(in Input) []Advisory {
	if !in.Metrics.LimitValid {
		return nil
	}
	cost := in.Metrics.SubscriptionCost
	if !cost.GreaterThan(in.Metrics.MonthlyLimit.Mul(subscriptionShare)) {
		return nil
	}
	share := cost.Div(in.Metrics.MonthlyLimit).Mul(hundred)
	return []Advisory{{
		Severity: SeverityWarning,
		Title:    "High Subscription Costs",
		Message: fmt.Sprintf("Subscriptions cost ₹%s/month (%s%% of budget). Review and cancel unused ones.",
			cost.StringFixed(0), share.StringFixed(0)),
		Color: colorWarning,
	}}
}

// savingsSuggestion proposes moving half the remaining budget into goals when
// usage is comfortable and at least one goal exists.
func savingsSuggestion(in Input) []Advisory {
	if !in.Metrics.LimitValid || len(in.Goals) == 0 {
		return nil
	}
	if !in.Metrics.BudgetUsagePercent.LessThan(usageSavingsRoom) {
		return nil
	}
	available := in.Metrics.MonthlyLimit.Sub(in.Metrics.MonthlyExpenses).Mul(savingsSplit)
	return []Advisory{{
		Severity: SeveritySuccess,
		Title:    "Smart Savings Tip",
		Message: fmt.Sprintf("You have room to save! Consider adding ₹%s to your savings goals this month.",
			available.StringFixed(0)),
		Color: colorSuccess,
	}}
}
