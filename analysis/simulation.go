package analysis

import (
	"context"
	"fmt"
	"io"
	"math"

	"lotto/common"
	"lotto/models"
	"lotto/service"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// batchTickets bounds how many tickets are held in memory at once
const batchTickets = 10_000

// chiSquaredMinExpected is the usual floor on expected counts for a chi-squared term
const chiSquaredMinExpected = 5.0

// TierResult compares observed and expected counts for one tier
type TierResult struct {
	Tier          models.PrizeTier `yaml:"tier"`
	Prize         int64            `yaml:"prize"`
	Observed      int64            `yaml:"observed"`
	Expected      float64          `yaml:"expected"`
	ObservedShare float64          `yaml:"observed_share"`
	ExpectedShare float64          `yaml:"expected_share"`
}

// Report is the outcome of one simulation run
type Report struct {
	Tickets             int64        `yaml:"tickets"`
	WinningNumbers      []int        `yaml:"winning_numbers"`
	BonusNumber         int          `yaml:"bonus_number"`
	Tiers               []TierResult `yaml:"tiers"`
	TotalWinnings       int64        `yaml:"total_winnings"`
	EarningRate         float64      `yaml:"earning_rate"`
	ExpectedEarningRate float64      `yaml:"expected_earning_rate"`
	ChiSquared          float64      `yaml:"chi_squared"`
	DegreesOfFreedom    int          `yaml:"degrees_of_freedom"`
}

// Simulator buys tickets in batches and scores them against a random draw
type Simulator struct {
	issuer service.TicketIssuer
	picker service.NumberPicker
}

// NewSimulator creates a simulator. The picker draws the winning numbers;
// the issuer produces the tickets.
func NewSimulator(issuer service.TicketIssuer, picker service.NumberPicker) *Simulator {
	return &Simulator{
		issuer: issuer,
		picker: picker,
	}
}

// RandomDraw picks six winning numbers and a distinct bonus number
func RandomDraw(picker service.NumberPicker) (*models.Draw, error) {
	numbers, err := picker.PickUniqueNumbersInRange(models.MinNumber, models.MaxNumber, models.TicketSize+1)
	if err != nil {
		return nil, fmt.Errorf("failed to pick draw numbers: %w", err)
	}
	return models.NewDraw(numbers[:models.TicketSize], numbers[models.TicketSize])
}

// Run simulates buying the given number of tickets against one random draw
func (s *Simulator) Run(ctx context.Context, tickets int64) (*Report, error) {
	if tickets <= 0 {
		return nil, fmt.Errorf("ticket count must be positive")
	}

	draw, err := RandomDraw(s.picker)
	if err != nil {
		return nil, err
	}

	counts := models.NewTierCounts()
	for remaining := tickets; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch := min(remaining, batchTickets)
		customer, err := service.NewCustomer(ctx, s.issuer, nil, batch*models.TicketPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to buy simulation batch: %w", err)
		}
		stats, err := customer.Score(ctx, draw)
		if err != nil {
			return nil, fmt.Errorf("failed to score simulation batch: %w", err)
		}
		for tier, n := range stats.TierCounts {
			counts[tier] += n
		}
		remaining -= batch
	}

	report := buildReport(tickets, draw, counts)

	log.WithFields(log.Fields{
		"tickets":      tickets,
		"earning_rate": report.EarningRate,
		"chi_squared":  report.ChiSquared,
	}).Info("Simulation finished")

	return report, nil
}

func buildReport(tickets int64, draw *models.Draw, counts map[models.PrizeTier]int) *Report {
	report := &Report{
		Tickets:             tickets,
		WinningNumbers:      draw.WinningNumbers(),
		BonusNumber:         draw.Bonus(),
		TotalWinnings:       models.TotalWinnings(counts),
		ExpectedEarningRate: math.Round(ExpectedEarningRate()*10) / 10,
	}
	report.EarningRate = models.EarningRate(report.TotalWinnings, tickets*models.TicketPrice)

	terms := 0
	for _, odds := range TheoreticalOdds() {
		observed := int64(counts[odds.Tier])
		expected := odds.Probability * float64(tickets)
		report.Tiers = append(report.Tiers, TierResult{
			Tier:          odds.Tier,
			Prize:         models.RuleFor(odds.Tier).Prize,
			Observed:      observed,
			Expected:      expected,
			ObservedShare: float64(observed) / float64(tickets),
			ExpectedShare: odds.Probability,
		})

		if expected >= chiSquaredMinExpected {
			report.ChiSquared += math.Pow(float64(observed)-expected, 2) / expected
			terms++
		}
	}
	if terms > 0 {
		report.DegreesOfFreedom = terms - 1
	}

	return report
}

// WriteText renders the report for a terminal
func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "=== Lotto Simulation: %s tickets ===\n", common.FormatBalance(r.Tickets))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Draw: %v + bonus %d\n\n", r.WinningNumbers, r.BonusNumber)

	for _, tier := range r.Tiers {
		fmt.Fprintf(w, "%-7s %15s원 | observed %10d (%.6f%%) | expected %14.2f (%.6f%%)\n",
			tier.Tier, common.FormatBalance(tier.Prize),
			tier.Observed, tier.ObservedShare*100,
			tier.Expected, tier.ExpectedShare*100)
	}

	fmt.Fprintf(w, "\nTotal winnings:    %s원\n", common.FormatBalance(r.TotalWinnings))
	fmt.Fprintf(w, "Earning rate:      %.1f%%\n", r.EarningRate)
	fmt.Fprintf(w, "Expected rate:     %.1f%%\n", r.ExpectedEarningRate)
	_, err = fmt.Fprintf(w, "χ² (tiers with expected >= %.0f): %.2f, %d df\n", chiSquaredMinExpected, r.ChiSquared, r.DegreesOfFreedom)
	return err
}

// WriteYAML renders the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode simulation report: %w", err)
	}
	return enc.Close()
}
