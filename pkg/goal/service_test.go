package goal

import (
	"context"
	"testing"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var repoStub = NewStubRepository()

var bus *eventbus.Bus

var service Service

func setup(t *testing.T) func() {
	bus = eventbus.New()
	service = NewServiceImpl(repoStub, bus)
	return func() {
		repoStub.Reset()
	}
}

func TestServiceImpl_Add(t *testing.T) {
	t.Run("should add a goal with zero saved regardless of input", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Add(ctx, Goal{
			Name:   "Vacation",
			Target: decimal.NewFromInt(5000),
			Saved:  decimal.NewFromInt(999),
		})

		// then
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.True(t, created.Saved.IsZero())
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, Goal{Target: decimal.NewFromInt(100)})

		// then
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("should reject a non-positive target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, Goal{Name: "Vacation", Target: decimal.Zero})

		// then
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

func TestServiceImpl_Contribute(t *testing.T) {
	t.Run("should accumulate contributions", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Add(ctx, Goal{Name: "Vacation", Target: decimal.NewFromInt(500)})
		require.NoError(t, err)

		// when
		_, err = service.Contribute(ctx, created.ID, decimal.NewFromInt(100))
		require.NoError(t, err)
		updated, err := service.Contribute(ctx, created.ID, decimal.NewFromInt(50))

		// then
		assert.NoError(t, err)
		assert.True(t, updated.Saved.Equal(decimal.NewFromInt(150)))
	})

	t.Run("should clamp the saved amount at the target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Add(ctx, Goal{Name: "Vacation", Target: decimal.NewFromInt(500)})
		require.NoError(t, err)

		// when
		updated, err := service.Contribute(ctx, created.ID, decimal.NewFromInt(600))

		// then
		assert.NoError(t, err)
		assert.True(t, updated.Saved.Equal(decimal.NewFromInt(500)))
	})

	t.Run("should reject a non-positive contribution", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Add(ctx, Goal{Name: "Vacation", Target: decimal.NewFromInt(500)})
		require.NoError(t, err)

		// when
		_, err = service.Contribute(ctx, created.ID, decimal.Zero)

		// then
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("should fail for an unknown goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Contribute(ctx, 42, decimal.NewFromInt(10))

		// then
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete an existing goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Add(ctx, Goal{Name: "Vacation", Target: decimal.NewFromInt(500)})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.ID)

		// then
		assert.NoError(t, err)
		goals, _ := service.List(ctx)
		assert.Empty(t, goals)
	})

	t.Run("should treat an unknown identifier as a no-op", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Delete(ctx, 42)

		// then
		assert.NoError(t, err)
	})
}

func TestGoal_Progress(t *testing.T) {
	t.Run("should report saved over target as a percentage", func(t *testing.T) {
		g := Goal{Target: decimal.NewFromInt(500), Saved: decimal.NewFromInt(450)}
		assert.True(t, g.Progress().Equal(decimal.NewFromInt(90)))
	})

	t.Run("should report zero progress for a zero target", func(t *testing.T) {
		g := Goal{Target: decimal.Zero, Saved: decimal.Zero}
		assert.True(t, g.Progress().IsZero())
	})
}
