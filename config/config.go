package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// AI
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	// Sources
	SlickdealsURL string `env:"SLICKDEALS_URL" envDefault:"https://slickdeals.net/deals/"`
	RedditURL     string `env:"REDDIT_URL" envDefault:"https://www.reddit.com/r/deals/new.json"`
	UserAgent     string `env:"USER_AGENT" envDefault:"DealFinder/1.0"`

	// Timing
	PageLoadTimeout time.Duration `env:"PAGE_LOAD_TIMEOUT" envDefault:"15s"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RateLimitDelay  time.Duration `env:"RATE_LIMIT_DELAY" envDefault:"4s"` // pause after each AI call

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// HasAIKey reports whether AI rating can run
func (c Config) HasAIKey() bool {
	return c.GeminiAPIKey != ""
}

// Load reads envFile (if present) into the process environment, then parses
// configuration from environment variables, falling back to defaults
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}
