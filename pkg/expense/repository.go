package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const storageKey = "expenses"

const dateLayout = "2006-01-02"

type Repository interface {
	// FindAll returns all expenses in insertion order.
	FindAll(ctx context.Context) ([]Expense, error)
	// Store assigns a fresh identifier, appends the expense, and persists the
	// collection. It returns the assigned identifier.
	Store(ctx context.Context, expense Expense) (int64, error)
	// Delete removes the expense with the given identifier. It reports whether
	// a record was removed; deleting an unknown identifier is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

// expenseRecord is the persisted shape of an expense, matching the external
// key-value layout: {id, amount, category, date, notes?, timestamp}.
type expenseRecord struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// KVRepository keeps the collection in memory and mirrors it to the key-value
// store on every mutation. The in-memory state stays authoritative when a
// write fails; the only consequence is stale data after a restart. The mutex
// serializes access from concurrent handler goroutines.
type KVRepository struct {
	store storage.Store

	mu       sync.Mutex
	expenses []Expense
	nextID   int64
}

func NewKVRepository(ctx context.Context, store storage.Store) *KVRepository {
	repo := &KVRepository{store: store, nextID: 1}
	repo.hydrate(ctx)
	return repo
}

func (r *KVRepository) hydrate(ctx context.Context) {
	raw, found, err := r.store.Get(ctx, storageKey)
	if err != nil {
		log.Warnf("could not read stored expenses, starting empty: %v", err)
		return
	}
	if !found {
		return
	}

	var records []expenseRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warnf("stored expenses are not valid JSON, starting empty: %v", err)
		return
	}

	expenses := make([]Expense, 0, len(records))
	for _, record := range records {
		expense, err := recordToExpense(record)
		if err != nil {
			log.Warnf("skipping stored expense %d: %v", record.ID, err)
			continue
		}
		expenses = append(expenses, expense)
		if expense.ID >= r.nextID {
			r.nextID = expense.ID + 1
		}
	}
	r.expenses = expenses
}

func (r *KVRepository) FindAll(ctx context.Context) ([]Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expenses := make([]Expense, len(r.expenses))
	copy(expenses, r.expenses)
	return expenses, nil
}

func (r *KVRepository) Store(ctx context.Context, expense Expense) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense.ID = r.nextID
	r.nextID++
	r.expenses = append(r.expenses, expense)
	r.persist(ctx)
	return expense.ID, nil
}

func (r *KVRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, expense := range r.expenses {
		if expense.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

// persist mirrors the full collection to the external store. Failures are
// logged and swallowed: the in-memory state remains authoritative.
func (r *KVRepository) persist(ctx context.Context) {
	records := make([]expenseRecord, 0, len(r.expenses))
	for _, expense := range r.expenses {
		records = append(records, expenseToRecord(expense))
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Warnf("could not serialize expenses: %v", err)
		return
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		log.Warnf("could not persist expenses: %v", err)
	}
}

func expenseToRecord(expense Expense) expenseRecord {
	return expenseRecord{
		ID:        expense.ID,
		Amount:    expense.Amount,
		Category:  string(expense.Category),
		Date:      expense.Date.Format(dateLayout),
		Notes:     expense.Notes,
		Timestamp: expense.Timestamp,
	}
}

func recordToExpense(record expenseRecord) (Expense, error) {
	date, err := time.Parse(dateLayout, record.Date)
	if err != nil {
		return Expense{}, fmt.Errorf("could not parse date %q: %w", record.Date, err)
	}
	return Expense{
		ID:        record.ID,
		Amount:    record.Amount,
		Category:  Category(record.Category),
		Date:      date,
		Notes:     record.Notes,
		Timestamp: record.Timestamp,
	}, nil
}
