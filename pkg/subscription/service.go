package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/eventbus"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName         = errors.New("subscription name must not be empty")
	ErrNegativeAmount    = errors.New("subscription amount must not be negative")
	ErrInvalidRenewalDay = errors.New("renewal day must be between 1 and 31")
	ErrUnknownIcon       = errors.New("unknown subscription icon")
)

type Service interface {
	// List returns subscriptions in insertion order.
	List(ctx context.Context) ([]Subscription, error)
	Add(ctx context.Context, subscription Subscription) (Subscription, error)
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

func (s *ServiceImpl) List(ctx context.Context) ([]Subscription, error) {
	subscriptions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subscriptions, nil
}

func (s *ServiceImpl) Add(ctx context.Context, subscription Subscription) (Subscription, error) {
	if subscription.Name == "" {
		return Subscription{}, ErrEmptyName
	}
	if subscription.Amount.IsNegative() {
		return Subscription{}, ErrNegativeAmount
	}
	if subscription.RenewalDay < 1 || subscription.RenewalDay > 31 {
		return Subscription{}, ErrInvalidRenewalDay
	}
	if !ValidIcon(subscription.Icon) {
		return Subscription{}, fmt.Errorf("%w: %q", ErrUnknownIcon, subscription.Icon)
	}

	id, err := s.repo.Store(ctx, subscription)
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to store subscription: %w", err)
	}
	subscription.ID = id

	s.bus.Publish(eventbus.NewEvent(eventbus.SubscriptionsChanged, subscription.ID))
	return subscription, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if !deleted {
		log.Debugf("subscription %d not found, delete is a no-op", id)
		return nil
	}
	s.bus.Publish(eventbus.NewEvent(eventbus.SubscriptionsChanged, id))
	return nil
}
