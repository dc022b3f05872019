package models

import "slices"

// Draw holds the announced winning numbers and the bonus number
type Draw struct {
	winning []int
	bonus   int
}

// NewDraw validates winning numbers and bonus number together
func NewDraw(winning []int, bonus int) (*Draw, error) {
	if len(winning) != TicketSize {
		return nil, NewValidationError(ReasonCount, CountErrorMessage, "got %d winning numbers", len(winning))
	}

	seen := make(map[int]struct{}, TicketSize)
	for _, n := range winning {
		if n < MinNumber || n > MaxNumber {
			return nil, NewValidationError(ReasonRange, RangeErrorMessage, "winning number %d out of range", n)
		}
		if _, dup := seen[n]; dup {
			return nil, NewValidationError(ReasonDuplication, TicketDuplicateMessage, "winning number %d repeated", n)
		}
		seen[n] = struct{}{}
	}

	if bonus < MinNumber || bonus > MaxNumber {
		return nil, NewValidationError(ReasonRange, RangeErrorMessage, "bonus number %d out of range", bonus)
	}
	if _, dup := seen[bonus]; dup {
		return nil, NewValidationError(ReasonDuplication, DuplicationErrorMessage, "bonus number %d is a winning number", bonus)
	}

	sorted := slices.Clone(winning)
	slices.Sort(sorted)
	return &Draw{winning: sorted, bonus: bonus}, nil
}

// WinningNumbers returns a sorted copy of the winning numbers
func (d *Draw) WinningNumbers() []int {
	return slices.Clone(d.winning)
}

// Bonus returns the bonus number
func (d *Draw) Bonus() int {
	return d.bonus
}

// Evaluate classifies a ticket against this draw. The bonus ball is only
// consulted when exactly five numbers match.
func (d *Draw) Evaluate(ticket Ticket) PrizeTier {
	matched := ticket.MatchCount(d.winning)
	bonusMatched := false
	if matched == 5 {
		bonusMatched = ticket.HasBonus(d.bonus)
	}
	return TierFor(matched, bonusMatched)
}
