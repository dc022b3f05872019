package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Domain constants for a 6/45 lottery
const (
	MinNumber          = 1
	MaxNumber          = 45
	TicketSize         = 6
	TicketPrice        = 1000
	MinReportableMatch = 3
)

// Ticket is one purchased combination of TicketSize unique numbers.
// The zero value is not a valid ticket; use NewTicket.
type Ticket struct {
	numbers [TicketSize]int
}

// NewTicket validates the numbers and returns a sorted ticket
func NewTicket(numbers []int) (Ticket, error) {
	if len(numbers) != TicketSize {
		return Ticket{}, NewValidationError(ReasonCount, CountErrorMessage, "got %d numbers", len(numbers))
	}

	var t Ticket
	seen := make(map[int]struct{}, TicketSize)
	for i, n := range numbers {
		if n < MinNumber || n > MaxNumber {
			return Ticket{}, NewValidationError(ReasonRange, RangeErrorMessage, "number %d out of range", n)
		}
		if _, dup := seen[n]; dup {
			return Ticket{}, NewValidationError(ReasonDuplication, TicketDuplicateMessage, "number %d repeated", n)
		}
		seen[n] = struct{}{}
		t.numbers[i] = n
	}
	slices.Sort(t.numbers[:])
	return t, nil
}

// ParseTicket parses the String form of a ticket, e.g. "[1, 2, 3, 4, 5, 6]"
func ParseTicket(text string) (Ticket, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")

	parts := strings.Split(body, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Ticket{}, NewValidationError(ReasonNumeric, NumericErrorMessage, "ticket token %q", part)
		}
		numbers = append(numbers, n)
	}
	return NewTicket(numbers)
}

// Numbers returns a copy of the ticket numbers in ascending order
func (t Ticket) Numbers() []int {
	out := make([]int, TicketSize)
	copy(out, t.numbers[:])
	return out
}

// MatchCount returns how many of the ticket numbers appear in drawNumbers
func (t Ticket) MatchCount(drawNumbers []int) int {
	count := 0
	for _, n := range t.numbers {
		if slices.Contains(drawNumbers, n) {
			count++
		}
	}
	return count
}

// HasBonus reports whether the bonus number is on the ticket
func (t Ticket) HasBonus(bonus int) bool {
	_, found := slices.BinarySearch(t.numbers[:], bonus)
	return found
}

func (t Ticket) String() string {
	parts := make([]string, TicketSize)
	for i, n := range t.numbers {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
