package service

import (
	"context"

	"lotto/events"
	"lotto/models"

	"github.com/stretchr/testify/mock"
)

// MockNumberPicker is a mock implementation of NumberPicker
type MockNumberPicker struct {
	mock.Mock
}

func (m *MockNumberPicker) PickUniqueNumbersInRange(start, end, count int) ([]int, error) {
	args := m.Called(start, end, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockTicketIssuer is a mock implementation of TicketIssuer
type MockTicketIssuer struct {
	mock.Mock
}

func (m *MockTicketIssuer) Issue(spendAmount int64) ([]models.Ticket, error) {
	args := m.Called(spendAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
