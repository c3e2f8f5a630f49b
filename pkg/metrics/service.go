package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/bill"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/settings"
	"github.com/fintrack/fintrack/pkg/subscription"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Summary is the full set of derived values for one point in time.
type Summary struct {
	GeneratedAt     time.Time
	TotalExpenses   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	CategoryTotals  map[expense.Category]decimal.Decimal
	MonthlyLimit    decimal.Decimal
	// LimitValid is false when the monthly limit cannot serve as a divisor;
	// BudgetUsagePercent is zero in that case and limit-dependent advisory
	// rules are skipped.
	LimitValid         bool
	BudgetUsagePercent decimal.Decimal
	SubscriptionCost   decimal.Decimal
	UrgentBills        []bill.Bill
}

type Service interface {
	GetSummary(ctx context.Context) (Summary, error)
}

// ServiceImpl recomputes the summary on read and caches it until the next
// record mutation invalidates it through the event bus.
type ServiceImpl struct {
	expenses      expense.Service
	bills         bill.Service
	subscriptions subscription.Service
	settings      settings.Service
	clock         utils.Clock

	mu     sync.Mutex
	cached *Summary
}

func NewServiceImpl(
	expenses expense.Service,
	bills bill.Service,
	subscriptions subscription.Service,
	settingsService settings.Service,
	clock utils.Clock,
	bus *eventbus.Bus,
) *ServiceImpl {
	s := &ServiceImpl{
		expenses:      expenses,
		bills:         bills,
		subscriptions: subscriptions,
		settings:      settingsService,
		clock:         clock,
	}
	for _, eventType := range eventbus.RecordTypes() {
		bus.Subscribe(eventType, func(eventbus.Event) { s.invalidate() })
	}
	return s
}

func (s *ServiceImpl) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (s *ServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	cached := s.cached
	s.mu.Unlock()
	// A snapshot from a previous calendar day is stale even without record
	// mutations: the monthly window and the bill urgency horizon moved.
	if cached != nil && sameDay(cached.GeneratedAt, s.clock.Now()) {
		return *cached, nil
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return Summary{}, err
	}

	s.mu.Lock()
	s.cached = &summary
	s.mu.Unlock()
	return summary, nil
}

func (s *ServiceImpl) compute(ctx context.Context) (Summary, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	bills, err := s.bills.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load bills: %w", err)
	}
	subscriptions, err := s.subscriptions.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load settings: %w", err)
	}

	now := s.clock.Now()
	monthly := MonthlyExpenses(expenses, now)

	summary := Summary{
		GeneratedAt:      now,
		TotalExpenses:    TotalExpenses(expenses),
		MonthlyExpenses:  monthly,
		CategoryTotals:   CategoryTotals(expenses),
		MonthlyLimit:     current.MonthlyLimit,
		SubscriptionCost: SubscriptionMonthlyCost(subscriptions),
		UrgentBills:      UrgentBills(bills, now, UrgencyThresholdDays),
	}

	usage, err := BudgetUsagePercent(monthly, current.MonthlyLimit)
	if err != nil {
		if !errors.Is(err, ErrInvalidConfiguration) {
			return Summary{}, err
		}
		// The settings service rejects non-positive limits, but a stored
		// value may still predate that check.
		log.Warnf("monthly limit %s is not usable, budget usage unavailable", current.MonthlyLimit)
	} else {
		summary.LimitValid = true
		summary.BudgetUsagePercent = usage
	}

	return summary, nil
}
