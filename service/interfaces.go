package service

import (
	"context"

	"lotto/events"
	"lotto/models"
)

// NumberPicker supplies uniformly random numbers without replacement
type NumberPicker interface {
	// PickUniqueNumbersInRange returns count distinct integers from [start, end]
	PickUniqueNumbersInRange(start, end, count int) ([]int, error)
}

// TicketIssuer defines the interface for selling tickets
type TicketIssuer interface {
	// Issue validates the spend amount and returns one random ticket per TicketPrice
	Issue(spendAmount int64) ([]models.Ticket, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}
