package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName     = errors.New("goal name must not be empty")
	ErrInvalidTarget = errors.New("goal target must be positive")
	ErrInvalidAmount = errors.New("contribution amount must be positive")
	ErrGoalNotFound  = errors.New("goal not found")
)

type Service interface {
	// List returns goals in insertion order, the order the advisory rules
	// evaluate them in.
	List(ctx context.Context) ([]Goal, error)
	Add(ctx context.Context, goal Goal) (Goal, error)
	// Contribute adds amount to the goal's saved value, clamped at the target.
	// Unlike deletes, contributing to an unknown goal fails visibly.
	Contribute(ctx context.Context, id int64, amount decimal.Decimal) (Goal, error)
	// Delete is an idempotent no-op for unknown identifiers.
	Delete(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	repo Repository
	bus  *eventbus.Bus
}

func NewServiceImpl(repo Repository, bus *eventbus.Bus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *ServiceImpl) Add(ctx context.Context, goal Goal) (Goal, error) {
	if goal.Name == "" {
		return Goal{}, ErrEmptyName
	}
	if !goal.Target.IsPositive() {
		return Goal{}, ErrInvalidTarget
	}
	goal.Saved = decimal.Zero

	id, err := s.repo.Store(ctx, goal)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to store goal: %w", err)
	}
	goal.ID = id

	s.bus.Publish(eventbus.NewEvent(eventbus.GoalsChanged, goal.ID))
	return goal, nil
}

func (s *ServiceImpl) Contribute(ctx context.Context, id int64, amount decimal.Decimal) (Goal, error) {
	if !amount.IsPositive() {
		return Goal{}, ErrInvalidAmount
	}

	goal, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to load goal: %w", err)
	}
	if !found {
		return Goal{}, ErrGoalNotFound
	}

	saved := goal.Saved.Add(amount)
	if saved.GreaterThan(goal.Target) {
		saved = goal.Target
	}

	updated, err := s.repo.UpdateSaved(ctx, id, saved)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	if !updated {
		return Goal{}, ErrGoalNotFound
	}
	goal.Saved = saved

	s.bus.Publish(eventbus.NewEvent(eventbus.GoalsChanged, id))
	return goal, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if !deleted {
		log.Debugf("goal %d not found, delete is a no-op", id)
		return nil
	}
	s.bus.Publish(eventbus.NewEvent(eventbus.GoalsChanged, id))
	return nil
}
