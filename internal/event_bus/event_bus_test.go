package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	t.Run("should deliver events to subscribers in registration order", func(t *testing.T) {
		bus := NewEventBus()
		var order []string
		bus.Subscribe(ExpenseRecordedEvent, func(e Event) error {
			order = append(order, "first")
			return nil
		})
		bus.Subscribe(ExpenseRecordedEvent, func(e Event) error {
			order = append(order, "second")
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), ExpenseRecordedEvent, ExpenseRecorded{ID: 1}))

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("should not deliver events of other types", func(t *testing.T) {
		bus := NewEventBus()
		called := false
		bus.Subscribe(ExpenseDeletedEvent, func(e Event) error {
			called = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), ExpenseRecordedEvent, ExpenseRecorded{ID: 1}))

		// then
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("should keep delivering after a handler fails", func(t *testing.T) {
		bus := NewEventBus()
		delivered := false
		bus.Subscribe(ExpenseRecordedEvent, func(e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(ExpenseRecordedEvent, func(e Event) error {
			delivered = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), ExpenseRecordedEvent, ExpenseRecorded{ID: 1}))

		// then
		assert.Error(t, err)
		assert.True(t, delivered)
	})

	t.Run("should recover from a panicking handler", func(t *testing.T) {
		bus := NewEventBus()
		bus.Subscribe(ExpenseRecordedEvent, func(e Event) error {
			panic("boom")
		})

		// when / then
		assert.Error(t, bus.Publish(NewEvent(context.Background(), ExpenseRecordedEvent, ExpenseRecorded{ID: 1})))
	})
}
