package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, log.WarnLevel, cfg.LogLevel)
	assert.Nil(t, cfg.RandomSeed)
	assert.Equal(t, int64(100000), cfg.SimulationTickets)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(envFrom(map[string]string{
		"ENVIRONMENT":              "production",
		"LOTTO_LOG_LEVEL":          "debug",
		"LOTTO_RANDOM_SEED":        " 42 ",
		"LOTTO_SIMULATION_TICKETS": "5000",
	}))
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(42), *cfg.RandomSeed)
	assert.Equal(t, int64(5000), cfg.SimulationTickets)
	assert.True(t, cfg.IsProduction())
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Parallel()

	_, err := FromEnv(envFrom(map[string]string{"LOTTO_LOG_LEVEL": "loud"}))
	assert.Error(t, err)

	_, err = FromEnv(envFrom(map[string]string{"LOTTO_RANDOM_SEED": "abc"}))
	assert.Error(t, err)

	// Bad simulation sizes fall back to the default
	cfg, err := FromEnv(envFrom(map[string]string{"LOTTO_SIMULATION_TICKETS": "-3"}))
	require.NoError(t, err)
	assert.Equal(t, int64(100000), cfg.SimulationTickets)
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("LOTTO_RANDOM_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(7), *cfg.RandomSeed)
}
