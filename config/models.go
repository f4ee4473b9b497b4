package config

import "time"

// DeckLimit is the render concurrency for a single deck.
type DeckLimit struct {
	Size int `mapstructure:"size"`
}

// RenderConfig controls concurrent renders in the HTTP server.
type RenderConfig struct {
	DefaultSlots   int                  `mapstructure:"default_slots"`
	Decks          map[string]DeckLimit `mapstructure:"decks"`
	AcquireTimeout time.Duration        `mapstructure:"acquire_timeout"`
}

// RateLimitConfig throttles the HTTP server. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Config holds the application configuration.
type Config struct {
	Mode            string          `mapstructure:"mode"`
	ListenAddress   string          `mapstructure:"listen_address"`
	LogLevel        string          `mapstructure:"log_level"`
	LogFormat       string          `mapstructure:"log_format"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	Render          RenderConfig    `mapstructure:"render"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

const (
	ModeAuto   = "auto"
	ModeLambda = "lambda"
	ModeHTTP   = "http"
)
