package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/goal"
	"github.com/fintrack/fintrack/pkg/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type stubMetricsService struct {
	summary metrics.Summary
	err     error
}

func (s *stubMetricsService) GetSummary(ctx context.Context) (metrics.Summary, error) {
	return s.summary, s.err
}

func TestServiceImpl_Generate(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)}

	t.Run("should evaluate the battery against current metrics and goals", func(t *testing.T) {
		// given a month ending today, at sixty percent usage, with a goal
		// close to completion
		monthEnd := &utils.MockClock{FixedNow: time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)}
		goals := goal.NewServiceImpl(goal.NewStubRepository(), eventbus.New())
		created, err := goals.Add(ctx, goal.Goal{Name: "Vacation", Target: decimal.NewFromInt(500)})
		require.NoError(t, err)
		_, err = goals.Contribute(ctx, created.ID, decimal.NewFromInt(450))
		require.NoError(t, err)

		limit := decimal.NewFromInt(1000)
		monthly := decimal.NewFromInt(600)
		service := NewServiceImpl(&stubMetricsService{summary: metrics.Summary{
			MonthlyExpenses:    monthly,
			MonthlyLimit:       limit,
			LimitValid:         true,
			BudgetUsagePercent: monthly.Div(limit).Mul(decimal.NewFromInt(100)),
		}}, goals, monthEnd)

		// when
		advisories, err := service.Generate(ctx)

		// then the goal cheer comes before the savings tip
		assert.NoError(t, err)
		require.Len(t, advisories, 2)
		assert.Equal(t, "Almost There: Vacation", advisories[0].Title)
		assert.Equal(t, "Smart Savings Tip", advisories[1].Title)
	})

	t.Run("should fall back to the all-clear message", func(t *testing.T) {
		// given
		goals := goal.NewServiceImpl(goal.NewStubRepository(), eventbus.New())
		service := NewServiceImpl(&stubMetricsService{}, goals, clock)

		// when
		advisories, err := service.Generate(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, advisories, 1)
		assert.Equal(t, "All Good!", advisories[0].Title)
	})

	t.Run("should propagate a metrics failure", func(t *testing.T) {
		// given
		goals := goal.NewServiceImpl(goal.NewStubRepository(), eventbus.New())
		service := NewServiceImpl(&stubMetricsService{err: errors.New("store unavailable")}, goals, clock)

		// when
		_, err := service.Generate(ctx)

		// then
		assert.Error(t, err)
	})
}
