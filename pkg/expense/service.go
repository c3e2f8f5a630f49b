package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/fintrack/fintrack/internal/utils"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNegativeAmount  = errors.New("expense amount must not be negative")
	ErrUnknownCategory = errors.New("unknown expense category")
)

type Service interface {
	// List returns expenses newest-first. This is a display policy of the
	// service; the repository keeps insertion order.
	List(ctx context.Context) ([]Expense, error)
	Add(ctx context.Context, expense Expense) (Expense, error)
	// Delete is an idempotent no-op for unknown identifiers.
	Delete(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	repo  Repository
	bus   *eventbus.Bus
	clock utils.Clock
}

func NewServiceImpl(repo Repository, bus *eventbus.Bus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	for i, j := 0, len(expenses)-1; i < j; i, j = i+1, j-1 {
		expenses[i], expenses[j] = expenses[j], expenses[i]
	}
	return expenses, nil
}

func (s *ServiceImpl) Add(ctx context.Context, expense Expense) (Expense, error) {
	if expense.Amount.IsNegative() {
		return Expense{}, ErrNegativeAmount
	}
	if !expense.Category.IsValid() {
		return Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, expense.Category)
	}
	if expense.Date.IsZero() {
		expense.Date = s.clock.Now()
	}
	expense.Timestamp = s.clock.Now()

	id, err := s.repo.Store(ctx, expense)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to store expense: %w", err)
	}
	expense.ID = id

	s.bus.Publish(eventbus.NewEvent(eventbus.ExpensesChanged, expense.ID))
	return expense, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		log.Debugf("expense %d not found, delete is a no-op", id)
		return nil
	}
	s.bus.Publish(eventbus.NewEvent(eventbus.ExpensesChanged, id))
	return nil
}
