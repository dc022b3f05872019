package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lotto/cmd"
	"lotto/config"
	"lotto/console"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	cmd.ConfigureLogging(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupts
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, stopping...")
		cancel()
	}()

	app := newApp(ctx, cfg)
	if err := app.Run(os.Args); err != nil {
		cancel()
		os.Exit(console.HandleError(os.Stderr, err))
	}
}

func newApp(ctx context.Context, cfg *config.Config) *cli.App {
	play := func(c *cli.Context) error {
		return cmd.Play(ctx, cfg, os.Stdin, os.Stdout)
	}

	app := cli.NewApp()
	app.Name = "lotto"
	app.Usage = "buy 6/45 lottery tickets and score them against a draw"
	app.Action = play
	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "buy tickets interactively and score them (default)",
			Action: play,
		},
		{
			Name:  "simulate",
			Usage: "buy many tickets against one random draw and compare with the exact odds",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "tickets, n",
					Usage: "number of tickets to buy (defaults to LOTTO_SIMULATION_TICKETS)",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: cmd.FormatText,
					Usage: "output format: text or yaml",
				},
			},
			Action: func(c *cli.Context) error {
				return cmd.Simulate(ctx, cfg, c.Int64("tickets"), c.String("format"), os.Stdout)
			},
		},
	}
	return app
}
