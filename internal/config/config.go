package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Game holds the rules every room is created with.
type Game struct {
	TotalRounds       int           `json:"totalRounds"`
	MaxStrikes        int           `json:"maxStrikes"`
	TurnDuration      time.Duration `json:"turnDuration"`
	RoundSummaryDelay time.Duration `json:"roundSummaryDelay"`
	MinWordLength     int           `json:"minWordLength"`
	MaxWordLength     int           `json:"maxWordLength"`
	MaxNameLength     int           `json:"maxNameLength"`
	MaxChatLength     int           `json:"maxChatLength"`
}

type Transport struct {
	RatePerSecond float64
	RateBurst     int
}

type Config struct {
	HTTPAddr       string
	GinMode        string
	LogLevel       string
	LogPretty      bool
	FrontendOrigin string
	PublicURL      string

	Game      Game
	Transport Transport
}

// DefaultGame mirrors classic hangman: five rounds, six strikes, thirty
// seconds per turn.
func DefaultGame() Game {
	return Game{
		TotalRounds:       5,
		MaxStrikes:        6,
		TurnDuration:      30 * time.Second,
		RoundSummaryDelay: 3 * time.Second,
		MinWordLength:     3,
		MaxWordLength:     24,
		MaxNameLength:     32,
		MaxChatLength:     280,
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// a missing .env is fine, real env vars still apply
	_ = godotenv.Load()

	def := DefaultGame()
	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":5000"),
		GinMode:        getenv("GIN_MODE", "release"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogPretty:      getenvBool("LOG_PRETTY", true),
		FrontendOrigin: getenv("FRONTEND_ORIGIN", "http://localhost:3000"),
		PublicURL:      strings.TrimRight(getenv("PUBLIC_URL", "http://localhost:3000"), "/"),
		Game: Game{
			TotalRounds:       getenvInt("TOTAL_ROUNDS", def.TotalRounds),
			MaxStrikes:        getenvInt("MAX_STRIKES", def.MaxStrikes),
			TurnDuration:      getenvDuration("TURN_DURATION", def.TurnDuration),
			RoundSummaryDelay: getenvDuration("ROUND_SUMMARY_DELAY", def.RoundSummaryDelay),
			MinWordLength:     getenvInt("MIN_WORD_LENGTH", def.MinWordLength),
			MaxWordLength:     getenvInt("MAX_WORD_LENGTH", def.MaxWordLength),
			MaxNameLength:     getenvInt("MAX_NAME_LENGTH", def.MaxNameLength),
			MaxChatLength:     getenvInt("MAX_CHAT_LENGTH", def.MaxChatLength),
		},
		Transport: Transport{
			RatePerSecond: getenvFloat("WS_RATE_PER_SEC", 5),
			RateBurst:     getenvInt("WS_RATE_BURST", 10),
		},
	}
	if cfg.Game.MaxWordLength < cfg.Game.MinWordLength {
		cfg.Game.MaxWordLength = cfg.Game.MinWordLength
	}
	return cfg
}
