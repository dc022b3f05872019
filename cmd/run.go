package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"lotto/analysis"
	"lotto/config"
	"lotto/console"
	"lotto/events"
	"lotto/service"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Output formats for the simulate command
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Runtime bundles the collaborators for one program run
type Runtime struct {
	RunID    string
	Picker   service.NumberPicker
	Issuer   service.TicketIssuer
	EventBus *events.Bus
	logger   *log.Entry
}

// ConfigureLogging applies the configured level and format. Logs go to
// stderr so stdout only carries the game transcript.
func ConfigureLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// NewRuntime wires the picker, issuer and event bus for a run
func NewRuntime(cfg *config.Config) *Runtime {
	runID := uuid.NewString()
	logger := log.WithField("run_id", runID)

	var picker service.NumberPicker
	if cfg.RandomSeed != nil {
		logger.WithField("seed", *cfg.RandomSeed).Info("Using seeded number picker")
		picker = service.NewSeededPicker(*cfg.RandomSeed)
	} else {
		picker = service.NewCryptoPicker()
	}

	rt := &Runtime{
		RunID:    runID,
		Picker:   picker,
		Issuer:   service.NewTicketIssuer(picker),
		EventBus: events.NewBus(),
		logger:   logger,
	}
	rt.subscribeAudit()
	return rt
}

func (rt *Runtime) subscribeAudit() {
	rt.EventBus.Subscribe(events.EventTypeTicketsPurchased, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.TicketsPurchasedEvent)
		if !ok {
			return
		}
		rt.logger.WithFields(log.Fields{
			"spend_amount": e.SpendAmount,
			"ticket_count": e.TicketCount,
		}).Info("Tickets purchased")
	})

	rt.EventBus.Subscribe(events.EventTypeDrawScored, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.DrawScoredEvent)
		if !ok {
			return
		}
		rt.logger.WithFields(log.Fields{
			"winning_numbers": e.WinningNumbers,
			"bonus_number":    e.BonusNumber,
			"total_winnings":  e.Stats.TotalWinnings,
			"earning_rate":    e.Stats.EarningRate,
		}).Info("Draw scored")
	})
}

// Play runs one interactive purchase-and-score session
func Play(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	rt := NewRuntime(cfg)
	rt.logger.WithField("environment", cfg.Environment).Debug("Starting lotto session")

	session := console.New(in, out, rt.Issuer, rt.EventBus)
	if err := session.Run(ctx); err != nil {
		return err
	}

	rt.logger.Debug("Lotto session completed")
	return nil
}

// Simulate buys tickets against one random draw and writes the comparison report
func Simulate(ctx context.Context, cfg *config.Config, tickets int64, format string, out io.Writer) error {
	if tickets <= 0 {
		tickets = cfg.SimulationTickets
	}
	if format != FormatText && format != FormatYAML {
		return fmt.Errorf("unknown output format %q", format)
	}

	rt := NewRuntime(cfg)
	rt.logger.WithFields(log.Fields{
		"tickets": tickets,
		"format":  format,
	}).Info("Starting simulation")

	report, err := analysis.NewSimulator(rt.Issuer, rt.Picker).Run(ctx, tickets)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if format == FormatYAML {
		return report.WriteYAML(out)
	}
	return report.WriteText(out)
}
