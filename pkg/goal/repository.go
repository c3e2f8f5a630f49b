package goal

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const storageKey = "savingsGoals"

type Repository interface {
	FindAll(ctx context.Context) ([]Goal, error)
	FindByID(ctx context.Context, id int64) (Goal, bool, error)
	Store(ctx context.Context, goal Goal) (int64, error)
	// UpdateSaved replaces the saved amount of the goal with the given
	// identifier. It reports whether the goal exists.
	UpdateSaved(ctx context.Context, id int64, saved decimal.Decimal) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type goalRecord struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
}

type KVRepository struct {
	store storage.Store

	mu     sync.Mutex
	goals  []Goal
	nextID int64
}

func NewKVRepository(ctx context.Context, store storage.Store) *KVRepository {
	repo := &KVRepository{store: store, nextID: 1}
	repo.hydrate(ctx)
	return repo
}

func (r *KVRepository) hydrate(ctx context.Context) {
	raw, found, err := r.store.Get(ctx, storageKey)
	if err != nil {
		log.Warnf("could not read stored savings goals, starting empty: %v", err)
		return
	}
	if !found {
		return
	}

	var records []goalRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warnf("stored savings goals are not valid JSON, starting empty: %v", err)
		return
	}

	goals := make([]Goal, 0, len(records))
	for _, record := range records {
		goals = append(goals, Goal{
			ID:     record.ID,
			Name:   record.Name,
			Target: record.Target,
			Saved:  record.Saved,
		})
		if record.ID >= r.nextID {
			r.nextID = record.ID + 1
		}
	}
	r.goals = goals
}

func (r *KVRepository) FindAll(ctx context.Context) ([]Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goals := make([]Goal, len(r.goals))
	copy(goals, r.goals)
	return goals, nil
}

func (r *KVRepository) FindByID(ctx context.Context, id int64) (Goal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, goal := range r.goals {
		if goal.ID == id {
			return goal, true, nil
		}
	}
	return Goal{}, false, nil
}

func (r *KVRepository) Store(ctx context.Context, goal Goal) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goal.ID = r.nextID
	r.nextID++
	r.goals = append(r.goals, goal)
	r.persist(ctx)
	return goal.ID, nil
}

func (r *KVRepository) UpdateSaved(ctx context.Context, id int64, saved decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, goal := range r.goals {
		if goal.ID == id {
			r.goals[i].Saved = saved
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, goal := range r.goals {
		if goal.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) persist(ctx context.Context) {
	records := make([]goalRecord, 0, len(r.goals))
	for _, goal := range r.goals {
		records = append(records, goalRecord{
			ID:     goal.ID,
			Name:   goal.Name,
			Target: goal.Target,
			Saved:  goal.Saved,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Warnf("could not serialize savings goals: %v", err)
		return
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		log.Warnf("could not persist savings goals: %v", err)
	}
}
