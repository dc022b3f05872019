package service

import (
	"fmt"

	"lotto/models"

	log "github.com/sirupsen/logrus"
)

// maxPreallocatedTickets caps the up-front allocation; spend has no upper bound
const maxPreallocatedTickets = 1 << 16

type ticketIssuer struct {
	picker NumberPicker
}

// NewTicketIssuer creates a new ticket issuer
func NewTicketIssuer(picker NumberPicker) TicketIssuer {
	return &ticketIssuer{
		picker: picker,
	}
}

func (s *ticketIssuer) Issue(spendAmount int64) ([]models.Ticket, error) {
	if err := ValidateSpendAmount(spendAmount); err != nil {
		return nil, err
	}

	count := spendAmount / models.TicketPrice
	tickets := make([]models.Ticket, 0, min(count, maxPreallocatedTickets))
	for i := int64(0); i < count; i++ {
		numbers, err := s.picker.PickUniqueNumbersInRange(models.MinNumber, models.MaxNumber, models.TicketSize)
		if err != nil {
			return nil, fmt.Errorf("failed to pick numbers for ticket %d: %w", i+1, err)
		}

		ticket, err := models.NewTicket(numbers)
		if err != nil {
			return nil, fmt.Errorf("number picker returned an invalid ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	log.WithFields(log.Fields{
		"spend_amount": spendAmount,
		"ticket_count": count,
	}).Debug("Issued tickets")

	return tickets, nil
}

// ValidateSpendAmount checks that the amount buys a whole, non-zero number of tickets
func ValidateSpendAmount(spendAmount int64) error {
	if spendAmount <= 0 || spendAmount%models.TicketPrice != 0 {
		return models.NewValidationError(models.ReasonUnit, models.UnitErrorMessage,
			"spend amount %d is not a positive multiple of %d", spendAmount, models.TicketPrice)
	}
	return nil
}
