package events

import (
	"context"
	"testing"

	"lotto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	var order []int
	bus.Subscribe(EventTypeTicketsPurchased, func(ctx context.Context, event Event) {
		order = append(order, 1)
	})
	bus.Subscribe(EventTypeTicketsPurchased, func(ctx context.Context, event Event) {
		purchased, ok := event.(TicketsPurchasedEvent)
		require.True(t, ok, "expected TicketsPurchasedEvent, got %T", event)
		assert.Equal(t, 8, purchased.TicketCount)
		assert.Equal(t, int64(8000), purchased.SpendAmount)
		order = append(order, 2)
	})

	bus.Emit(ctx, TicketsPurchasedEvent{SpendAmount: 8000, TicketCount: 8})

	assert.Equal(t, []int{1, 2}, order)
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(EventTypeDrawScored, func(ctx context.Context, event Event) {
		called = true
	})

	bus.Emit(context.Background(), TicketsPurchasedEvent{SpendAmount: 1000, TicketCount: 1})
	assert.False(t, called)

	bus.Emit(context.Background(), DrawScoredEvent{
		WinningNumbers: []int{1, 2, 3, 4, 5, 6},
		BonusNumber:    7,
		Stats:          models.WinningStats{TierCounts: models.NewTierCounts()},
	})
	assert.True(t, called)
}

func TestBus_HandlerPanicDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	reached := false
	bus.Subscribe(EventTypeDrawScored, func(ctx context.Context, event Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypeDrawScored, func(ctx context.Context, event Event) {
		reached = true
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), DrawScoredEvent{})
	})
	assert.True(t, reached)
}

func TestNoopPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopPublisher{}.Emit(context.Background(), DrawScoredEvent{})
	})
}
