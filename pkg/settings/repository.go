package settings

import (
	"context"
	"sync"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	limitKey = "monthlyLimit"
	themeKey = "theme"
)

type Repository interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// KVRepository persists the monthly limit as a stringified decimal and the
// theme as a plain string, one storage key each. Like the record
// repositories, it hydrates once and keeps the in-memory copy authoritative.
type KVRepository struct {
	store storage.Store

	mu      sync.Mutex
	current Settings
}

func NewKVRepository(ctx context.Context, store storage.Store, defaults Settings) *KVRepository {
	repo := &KVRepository{store: store, current: defaults}
	repo.hydrate(ctx)
	return repo
}

func (r *KVRepository) hydrate(ctx context.Context) {
	if raw, found, err := r.store.Get(ctx, limitKey); err != nil {
		log.Warnf("could not read stored monthly limit, using default: %v", err)
	} else if found {
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			log.Warnf("stored monthly limit %q is not a decimal, using default: %v", raw, err)
		} else {
			r.current.MonthlyLimit = limit
		}
	}

	if raw, found, err := r.store.Get(ctx, themeKey); err != nil {
		log.Warnf("could not read stored theme, using default: %v", err)
	} else if found {
		r.current.Theme = raw
	}
}

func (r *KVRepository) Load(ctx context.Context) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, nil
}

func (r *KVRepository) Save(ctx context.Context, settings Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = settings
	if err := r.store.Set(ctx, limitKey, settings.MonthlyLimit.String()); err != nil {
		return err
	}
	return r.store.Set(ctx, themeKey, settings.Theme)
}
