package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/eventbus"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName      = errors.New("bill name must not be empty")
	ErrNegativeAmount = errors.New("bill amount must not be negative")
	ErrMissingDueDate = errors.New("bill due date is required")
)

type Service interface {
	// List returns bills in insertion order.
	List(ctx context.Context) ([]Bill, error)
	Add(ctx context.Context, bill Bill) (Bill, error)
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

func (s *ServiceImpl) List(ctx context.Context) ([]Bill, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (s *ServiceImpl) Add(ctx context.Context, bill Bill) (Bill, error) {
	if bill.Name == "" {
		return Bill{}, ErrEmptyName
	}
	if bill.Amount.IsNegative() {
		return Bill{}, ErrNegativeAmount
	}
	if bill.DueDate.IsZero() {
		return Bill{}, ErrMissingDueDate
	}

	id, err := s.repo.Store(ctx, bill)
	if err != nil {
		return Bill{}, fmt.Errorf("failed to store bill: %w", err)
	}
	bill.ID = id

	s.bus.Publish(eventbus.NewEvent(eventbus.BillsChanged, bill.ID))
	return bill, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if !deleted {
		log.Debugf("bill %d not found, delete is a no-op", id)
		return nil
	}
	s.bus.Publish(eventbus.NewEvent(eventbus.BillsChanged, id))
	return nil
}
