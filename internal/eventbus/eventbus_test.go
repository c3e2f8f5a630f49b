package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_Publish(t *testing.T) {
	t.Run("should deliver events to subscribers in registration order", func(t *testing.T) {
		// given
		bus := New()
		var order []int
		bus.Subscribe(ExpensesChanged, func(Event) { order = append(order, 1) })
		bus.Subscribe(ExpensesChanged, func(Event) { order = append(order, 2) })

		// when
		bus.Publish(NewEvent(ExpensesChanged, nil))

		// then
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("should not deliver events of other types", func(t *testing.T) {
		// given
		bus := New()
		delivered := 0
		bus.Subscribe(BillsChanged, func(Event) { delivered++ })

		// when
		bus.Publish(NewEvent(ExpensesChanged, nil))

		// then
		assert.Equal(t, 0, delivered)
	})

	t.Run("should survive a panicking handler and keep delivering", func(t *testing.T) {
		// given
		bus := New()
		delivered := 0
		bus.Subscribe(GoalsChanged, func(Event) { panic("boom") })
		bus.Subscribe(GoalsChanged, func(Event) { delivered++ })

		// when
		bus.Publish(NewEvent(GoalsChanged, nil))

		// then
		assert.Equal(t, 1, delivered)
	})

	t.Run("should do nothing without subscribers", func(t *testing.T) {
		bus := New()
		bus.Publish(NewEvent(SettingsChanged, nil))
	})

	t.Run("should carry the payload to the handler", func(t *testing.T) {
		// given
		bus := New()
		var got any
		bus.Subscribe(ExpensesChanged, func(e Event) { got = e.Data })

		// when
		bus.Publish(NewEvent(ExpensesChanged, int64(7)))

		// then
		assert.Equal(t, int64(7), got)
	})
}
