package insight

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/goal"
	"github.com/fintrack/fintrack/pkg/metrics"
)

type Service interface {
	Generate(ctx context.Context) ([]Advisory, error)
}

type ServiceImpl struct {
	metrics metrics.Service
	goals   goal.Service
	clock   utils.Clock
}

func NewServiceImpl(metricsService metrics.Service, goals goal.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{metrics: metricsService, goals: goals, clock: clock}
}

func (s *ServiceImpl) Generate(ctx context.Context) ([]Advisory, error) {
	summary, err := s.metrics.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics summary: %w", err)
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	return Generate(Input{
		Now:     s.clock.Now(),
		Metrics: summary,
		Goals:   goals,
	}), nil
}
