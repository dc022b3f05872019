package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// Logging configuration
	LogLevel log.Level

	// Randomness: when set, tickets and simulated draws are reproducible
	RandomSeed *int64

	// Default ticket count for the simulate command
	SimulationTickets int64

	// Environment
	Environment string // "development", "production" or "test"
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a configuration from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	config := &Config{
		LogLevel:          log.WarnLevel,
		SimulationTickets: 100000,
		Environment:       getenv("ENVIRONMENT"),
	}

	if level := getenv("LOTTO_LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOTTO_LOG_LEVEL %q: %w", level, err)
		}
		config.LogLevel = parsed
	}

	if seed := strings.TrimSpace(getenv("LOTTO_RANDOM_SEED")); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LOTTO_RANDOM_SEED %q: %w", seed, err)
		}
		config.RandomSeed = &parsed
	}

	if tickets := getenv("LOTTO_SIMULATION_TICKETS"); tickets != "" {
		if parsed, err := strconv.ParseInt(tickets, 10, 64); err == nil && parsed > 0 {
			config.SimulationTickets = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	return config, nil
}

// IsProduction reports whether logs should be machine readable
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
