package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lotto/common"
	"lotto/events"
	"lotto/models"

	log "github.com/sirupsen/logrus"
)

const (
	purchaseCountPhrase = "개를 구매했습니다."
	resultHeader        = "당첨 통계\n---"
)

// ErrAlreadyScored is returned when Score is called more than once
var ErrAlreadyScored = errors.New("tickets have already been scored")

// Customer owns the tickets bought in one run and keeps score against a draw
type Customer struct {
	spendAmount int64
	tickets     []models.Ticket
	rankings    map[models.PrizeTier]int
	scored      bool
	publisher   EventPublisher
}

// NewCustomer validates the spend amount and buys tickets through the issuer
func NewCustomer(ctx context.Context, issuer TicketIssuer, publisher EventPublisher, spendAmount int64) (*Customer, error) {
	tickets, err := issuer.Issue(spendAmount)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	publisher.Emit(ctx, events.TicketsPurchasedEvent{
		SpendAmount: spendAmount,
		TicketCount: len(tickets),
	})

	return &Customer{
		spendAmount: spendAmount,
		tickets:     tickets,
		rankings:    models.NewTierCounts(),
		publisher:   publisher,
	}, nil
}

// Score matches every ticket against the draw and records one tier per ticket
func (c *Customer) Score(ctx context.Context, draw *models.Draw) (*models.WinningStats, error) {
	if c.scored {
		return nil, ErrAlreadyScored
	}
	if draw == nil {
		return nil, fmt.Errorf("draw is required")
	}

	for _, ticket := range c.tickets {
		c.rankings[draw.Evaluate(ticket)]++
	}
	c.scored = true

	stats := c.Stats()
	log.WithFields(log.Fields{
		"ticket_count":   stats.TicketCount,
		"total_winnings": stats.TotalWinnings,
		"earning_rate":   stats.EarningRate,
	}).Debug("Scored tickets against draw")

	c.publisher.Emit(ctx, events.DrawScoredEvent{
		WinningNumbers: draw.WinningNumbers(),
		BonusNumber:    draw.Bonus(),
		Stats:          *stats,
	})

	return stats, nil
}

// TierCount returns how many tickets landed in a tier
func (c *Customer) TierCount(tier models.PrizeTier) int {
	return c.rankings[tier]
}

// TotalWinnings sums the prize money over every tier
func (c *Customer) TotalWinnings() int64 {
	return models.TotalWinnings(c.rankings)
}

// EarningRate returns winnings as a percentage of spend, one decimal place
func (c *Customer) EarningRate() float64 {
	return models.EarningRate(c.TotalWinnings(), c.spendAmount)
}

// Stats returns a snapshot of the current score
func (c *Customer) Stats() *models.WinningStats {
	counts := make(map[models.PrizeTier]int, len(c.rankings))
	for tier, count := range c.rankings {
		counts[tier] = count
	}
	return &models.WinningStats{
		TicketCount:   len(c.tickets),
		SpendAmount:   c.spendAmount,
		TierCounts:    counts,
		TotalWinnings: c.TotalWinnings(),
		EarningRate:   c.EarningRate(),
	}
}

// TicketReport lists the purchased tickets under a count header
func (c *Customer) TicketReport() string {
	lines := make([]string, 0, len(c.tickets)+1)
	lines = append(lines, fmt.Sprintf("%d%s", len(c.tickets), purchaseCountPhrase))
	for _, ticket := range c.tickets {
		lines = append(lines, ticket.String())
	}
	return strings.Join(lines, "\n")
}

// ResultReport renders per-tier counts and the earning rate
func (c *Customer) ResultReport() string {
	lines := []string{resultHeader}
	for _, rule := range models.ReportableRules() {
		lines = append(lines, common.FormatPrizeLine(rule, c.rankings[rule.Tier]))
	}
	lines = append(lines, common.FormatEarningRate(c.EarningRate()))
	return strings.Join(lines, "\n")
}
