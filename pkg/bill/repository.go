package bill

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const storageKey = "bills"

const dateLayout = "2006-01-02"

type Repository interface {
	FindAll(ctx context.Context) ([]Bill, error)
	Store(ctx context.Context, bill Bill) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type billRecord struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate"`
}

type KVRepository struct {
	store storage.Store

	mu     sync.Mutex
	bills  []Bill
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
		log.Warnf("could not read stored bills, starting empty: %v", err)
		return
	}
	if !found {
		return
	}

	var records []billRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warnf("stored bills are not valid JSON, starting empty: %v", err)
		return
	}

	bills := make([]Bill, 0, len(records))
	for _, record := range records {
		dueDate, err := time.Parse(dateLayout, record.DueDate)
		if err != nil {
			log.Warnf("skipping stored bill %d: could not parse due date %q: %v", record.ID, record.DueDate, err)
			continue
		}
		bills = append(bills, Bill{
			ID:      record.ID,
			Name:    record.Name,
			Amount:  record.Amount,
			DueDate: dueDate,
		})
		if record.ID >= r.nextID {
			r.nextID = record.ID + 1
		}
	}
	r.bills = bills
}

func (r *KVRepository) FindAll(ctx context.Context) ([]Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bills := make([]Bill, len(r.bills))
	copy(bills, r.bills)
	return bills, nil
}

func (r *KVRepository) Store(ctx context.Context, bill Bill) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bill.ID = r.nextID
	r.nextID++
	r.bills = append(r.bills, bill)
	r.persist(ctx)
	return bill.ID, nil
}

func (r *KVRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, bill := range r.bills {
		if bill.ID == id {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) persist(ctx context.Context) {
	records := make([]billRecord, 0, len(r.bills))
	for _, bill := range r.bills {
		records = append(records, billRecord{
			ID:      bill.ID,
			Name:    bill.Name,
			Amount:  bill.Amount,
			DueDate: bill.DueDate.Format(dateLayout),
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Warnf("could not serialize bills: %v", err)
		return
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		log.Warnf("could not persist bills: %v", err)
	}
}
