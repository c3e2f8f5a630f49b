package subscription

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const storageKey = "subscriptions"

type Repository interface {
	FindAll(ctx context.Context) ([]Subscription, error)
	Store(ctx context.Context, subscription Subscription) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type subscriptionRecord struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	RenewalDay int             `json:"renewalDay"`
	Icon       string          `json:"icon"`
}

type KVRepository struct {
	store storage.Store

	mu            sync.Mutex
	subscriptions []Subscription
	nextID        int64
}

func NewKVRepository(ctx context.Context, store storage.Store) *KVRepository {
	repo := &KVRepository{store: store, nextID: 1}
	repo.hydrate(ctx)
	return repo
}

func (r *KVRepository) hydrate(ctx context.Context) {
	raw, found, err := r.store.Get(ctx, storageKey)
	if err != nil {
		log.Warnf("could not read stored subscriptions, starting empty: %v", err)
		return
	}
	if !found {
		return
	}

	var records []subscriptionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warnf("stored subscriptions are not valid JSON, starting empty: %v", err)
		return
	}

	subscriptions := make([]Subscription, 0, len(records))
	for _, record := range records {
		subscriptions = append(subscriptions, Subscription{
			ID:         record.ID,
			Name:       record.Name,
			Amount:     record.Amount,
			RenewalDay: record.RenewalDay,
			Icon:       record.Icon,
		})
		if record.ID >= r.nextID {
			r.nextID = record.ID + 1
		}
	}
	r.subscriptions = subscriptions
}

func (r *KVRepository) FindAll(ctx context.Context) ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subscriptions := make([]Subscription, len(r.subscriptions))
	copy(subscriptions, r.subscriptions)
	return subscriptions, nil
}

func (r *KVRepository) Store(ctx context.Context, subscription Subscription) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subscription.ID = r.nextID
	r.nextID++
	r.subscriptions = append(r.subscriptions, subscription)
	r.persist(ctx)
	return subscription.ID, nil
}

func (r *KVRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, subscription := range r.subscriptions {
		if subscription.ID == id {
			r.subscriptions = append(r.subscriptions[:i], r.subscriptions[i+1:]...)
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) persist(ctx context.Context) {
	records := make([]subscriptionRecord, 0, len(r.subscriptions))
	for _, subscription := range r.subscriptions {
		records = append(records, subscriptionRecord{
			ID:         subscription.ID,
			Name:       subscription.Name,
			Amount:     subscription.Amount,
			RenewalDay: subscription.RenewalDay,
			Icon:       subscription.Icon,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Warnf("could not serialize subscriptions: %v", err)
		return
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		log.Warnf("could not persist subscriptions: %v", err)
	}
}
