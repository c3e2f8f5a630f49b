package expense

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepository_Hydration(t *testing.T) {
	t.Run("should restore stored expenses and keep insertion order", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		repo := NewKVRepository(context.Background(), store)
		_, err := repo.Store(context.Background(), Expense{
			Amount:    decimal.NewFromInt(100),
			Category:  CategoryFood,
			Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Timestamp: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		_, err = repo.Store(context.Background(), Expense{
			Amount:    decimal.NewFromInt(200),
			Category:  CategoryTravel,
			Date:      time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			Timestamp: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		// when
		restored := NewKVRepository(context.Background(), store)
		expenses, err := restored.FindAll(context.Background())

		// then
		assert.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, int64(1), expenses[0].ID)
		assert.Equal(t, CategoryFood, expenses[0].Category)
		assert.Equal(t, int64(2), expenses[1].ID)
		assert.True(t, expenses[1].Amount.Equal(decimal.NewFromInt(200)))
	})

	t.Run("should continue identifiers after the stored maximum", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		repo := NewKVRepository(context.Background(), store)
		_, err := repo.Store(context.Background(), Expense{Amount: decimal.NewFromInt(1), Category: CategoryFood, Date: time.Now()})
		require.NoError(t, err)
		_, err = repo.Store(context.Background(), Expense{Amount: decimal.NewFromInt(2), Category: CategoryFood, Date: time.Now()})
		require.NoError(t, err)

		// when
		restored := NewKVRepository(context.Background(), store)
		id, err := restored.Store(context.Background(), Expense{Amount: decimal.NewFromInt(3), Category: CategoryFood, Date: time.Now()})

		// then
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("should start empty when the stored payload is not valid JSON", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(context.Background(), "expenses", "not json"))

		// when
		repo := NewKVRepository(context.Background(), store)
		expenses, err := repo.FindAll(context.Background())

		// then
		assert.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestKVRepository_ConcurrentStore(t *testing.T) {
	t.Run("should assign unique identifiers under concurrent stores", func(t *testing.T) {
		// given
		repo := NewKVRepository(context.Background(), storage.NewMemoryStore())
		const writers = 64
		ids := make(chan int64, writers)

		// when
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := repo.Store(context.Background(), Expense{
					Amount: decimal.NewFromInt(1), Category: CategoryFood, Date: time.Now(),
				})
				assert.NoError(t, err)
				ids <- id
			}()
		}
		wg.Wait()
		close(ids)

		// then every identifier is distinct
		seen := make(map[int64]bool, writers)
		for id := range ids {
			assert.False(t, seen[id], "identifier %d assigned twice", id)
			seen[id] = true
		}
		require.Len(t, seen, writers)

		expenses, err := repo.FindAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, expenses, writers)
	})
}

func TestKVRepository_Delete(t *testing.T) {
	t.Run("should remove the expense and persist the collection", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		repo := NewKVRepository(context.Background(), store)
		id, err := repo.Store(context.Background(), Expense{Amount: decimal.NewFromInt(1), Category: CategoryFood, Date: time.Now()})
		require.NoError(t, err)

		// when
		deleted, err := repo.Delete(context.Background(), id)

		// then
		assert.NoError(t, err)
		assert.True(t, deleted)
		restored := NewKVRepository(context.Background(), store)
		expenses, _ := restored.FindAll(context.Background())
		assert.Empty(t, expenses)
	})

	t.Run("should report false for an unknown identifier", func(t *testing.T) {
		// given
		repo := NewKVRepository(context.Background(), storage.NewMemoryStore())

		// when
		deleted, err := repo.Delete(context.Background(), 7)

		// then
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
