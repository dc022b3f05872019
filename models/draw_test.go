package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTicket(t *testing.T, numbers ...int) Ticket {
	t.Helper()
	ticket, err := NewTicket(numbers)
	require.NoError(t, err)
	return ticket
}

func TestNewDraw_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		winning     []int
		bonus       int
		wantReason  ValidationReason
		wantMessage string
	}{
		{
			name:        "bonus duplicates a winning number",
			winning:     []int{1, 2, 3, 4, 5, 6},
			bonus:       5,
			wantReason:  ReasonDuplication,
			wantMessage: DuplicationErrorMessage,
		},
		{
			name:        "five winning numbers",
			winning:     []int{1, 2, 3, 4, 5},
			bonus:       7,
			wantReason:  ReasonCount,
			wantMessage: CountErrorMessage,
		},
		{
			name:        "winning number out of range",
			winning:     []int{1, 2, 3, 4, 5, 46},
			bonus:       7,
			wantReason:  ReasonRange,
			wantMessage: RangeErrorMessage,
		},
		{
			name:        "bonus out of range",
			winning:     []int{1, 2, 3, 4, 5, 6},
			bonus:       0,
			wantReason:  ReasonRange,
			wantMessage: RangeErrorMessage,
		},
		{
			name:        "repeated winning number",
			winning:     []int{1, 1, 3, 4, 5, 6},
			bonus:       7,
			wantReason:  ReasonDuplication,
			wantMessage: TicketDuplicateMessage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draw, err := NewDraw(tt.winning, tt.bonus)
			assert.Nil(t, draw)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantReason, validationErr.Reason)
			assert.Equal(t, tt.wantMessage, validationErr.UserMessage)
		})
	}
}

func TestDraw_Evaluate(t *testing.T) {
	t.Parallel()

	draw, err := NewDraw([]int{1, 2, 3, 4, 5, 6}, 7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		ticket Ticket
		want   PrizeTier
	}{
		{name: "jackpot", ticket: mustTicket(t, 1, 2, 3, 4, 5, 6), want: TierFirst},
		{name: "five plus bonus", ticket: mustTicket(t, 1, 2, 3, 4, 5, 7), want: TierSecond},
		{name: "five without bonus", ticket: mustTicket(t, 1, 2, 3, 4, 5, 8), want: TierThird},
		{name: "four with bonus stays fourth", ticket: mustTicket(t, 1, 2, 3, 4, 7, 8), want: TierFourth},
		{name: "three", ticket: mustTicket(t, 1, 2, 3, 40, 41, 42), want: TierFifth},
		{name: "two with bonus is nothing", ticket: mustTicket(t, 1, 2, 7, 40, 41, 42), want: TierNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, draw.Evaluate(tt.ticket))
		})
	}
}

func TestDraw_WinningNumbersIsCopy(t *testing.T) {
	t.Parallel()

	draw, err := NewDraw([]int{6, 5, 4, 3, 2, 1}, 7)
	require.NoError(t, err)

	numbers := draw.WinningNumbers()
	numbers[0] = 45

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, draw.WinningNumbers())
	assert.Equal(t, 7, draw.Bonus())
}
