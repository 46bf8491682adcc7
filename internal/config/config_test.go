package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TOTAL_ROUNDS", "MAX_STRIKES", "TURN_DURATION", "HTTP_ADDR"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, DefaultGame(), cfg.Game)
	assert.Equal(t, 30*time.Second, cfg.Game.TurnDuration)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOTAL_ROUNDS", "3")
	t.Setenv("TURN_DURATION", "10s")
	t.Setenv("PUBLIC_URL", "https://play.example.com/")
	t.Setenv("LOG_PRETTY", "false")

	cfg := Load()

	assert.Equal(t, 3, cfg.Game.TotalRounds)
	assert.Equal(t, 10*time.Second, cfg.Game.TurnDuration)
	assert.Equal(t, "https://play.example.com", cfg.PublicURL)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_IgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_STRIKES", "lots")
	t.Setenv("TURN_DURATION", "-5s")

	cfg := Load()

	assert.Equal(t, 6, cfg.Game.MaxStrikes)
	assert.Equal(t, 30*time.Second, cfg.Game.TurnDuration)
}
