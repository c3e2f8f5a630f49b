package app

import (
	"context"

	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/fintrack/fintrack/internal/storage"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/bill"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/goal"
	"github.com/fintrack/fintrack/pkg/insight"
	"github.com/fintrack/fintrack/pkg/metrics"
	"github.com/fintrack/fintrack/pkg/settings"
	"github.com/fintrack/fintrack/pkg/subscription"
	"github.com/shopspring/decimal"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *eventbus.Bus
	Clock utils.Clock

	ExpenseRepo    expense.Repository
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	BillRepo    bill.Repository
	BillService bill.Service
	BillHandler *bill.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	SubscriptionRepo    subscription.Repository
	SubscriptionService subscription.Service
	SubscriptionHandler *subscription.Handler

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	MetricsService metrics.Service
	MetricsHandler *metrics.Handler

	InsightService insight.Service
	InsightHandler *insight.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// Repositories hydrate their collections from the store during construction.
func BuildDependencies(store storage.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}
	ctx := context.Background()

	deps.Bus = eventbus.New()
	deps.Clock = &utils.SystemClock{}

	deps.ExpenseRepo = expense.NewKVRepository(ctx, store)
	deps.ExpenseService = expense.NewServiceImpl(deps.ExpenseRepo, deps.Bus, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.BillRepo = bill.NewKVRepository(ctx, store)
	deps.BillService = bill.NewServiceImpl(deps.BillRepo, deps.Bus)
	deps.BillHandler = bill.NewHandler(deps.BillService)

	deps.GoalRepo = goal.NewKVRepository(ctx, store)
	deps.GoalService = goal.NewServiceImpl(deps.GoalRepo, deps.Bus)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.SubscriptionRepo = subscription.NewKVRepository(ctx, store)
	deps.SubscriptionService = subscription.NewServiceImpl(deps.SubscriptionRepo, deps.Bus)
	deps.SubscriptionHandler = subscription.NewHandler(deps.SubscriptionService)

	deps.SettingsRepo = settings.NewKVRepository(ctx, store, settings.Settings{
		MonthlyLimit: decimal.NewFromInt(cfg.Budget.DefaultMonthlyLimit),
		Theme:        settings.DefaultTheme,
	})
	deps.SettingsService = settings.NewServiceImpl(deps.SettingsRepo, deps.Bus)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.MetricsService = metrics.NewServiceImpl(
		deps.ExpenseService,
		deps.BillService,
		deps.SubscriptionService,
		deps.SettingsService,
		deps.Clock,
		deps.Bus,
	)
	deps.MetricsHandler = metrics.NewHandler(deps.MetricsService)

	deps.InsightService = insight.NewServiceImpl(deps.MetricsService, deps.GoalService, deps.Clock)
	deps.InsightHandler = insight.NewHandler(deps.InsightService)

	return deps
}
