package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/eventbus"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidLimit = errors.New("monthly limit must be positive")

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, settings Settings) (Settings, error)
}

type ServiceImpl struct {
	repo Repository
	bus  *eventbus.Bus
}

func NewServiceImpl(repo Repository, bus *eventbus.Bus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *ServiceImpl) Update(ctx context.Context, settings Settings) (Settings, error) {
	if !settings.MonthlyLimit.IsPositive() {
		return Settings{}, ErrInvalidLimit
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}

	// Persistence is fire-and-forget: a failed write leaves stale data on
	// disk, not a failed update.
	if err := s.repo.Save(ctx, settings); err != nil {
		log.Warnf("could not persist settings: %v", err)
	}

	s.bus.Publish(eventbus.NewEvent(eventbus.SettingsChanged, nil))
	return settings, nil
}
