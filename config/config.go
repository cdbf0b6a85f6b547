// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvProduction is the ENV value that disables .env loading
const EnvProduction = "production"

// Config holds every environment-driven setting
type Config struct {
	Env           string        `env:"ENV" envDefault:"development"`
	Port          string        `env:"PORT" envDefault:"8080"`
	BaseURL       string        `env:"BASE_URL"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"zoo.db"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	MockDelay     time.Duration `env:"MOCK_DELAY" envDefault:"500ms"`
	AssetsDir     string        `env:"ASSETS_DIR" envDefault:"static/images"`
	ImageCacheDir string        `env:"IMAGE_CACHE_DIR" envDefault:"cache/images"`
	ChromePath    string        `env:"CHROME_PATH"`
	PricingConfig string        `env:"PRICING_CONFIG"`
}

// Load reads .env (outside production) and parses the environment.
// The returned note says which .env outcome happened, for the caller to log.
func Load(envPath string) (*Config, string, error) {
	note := ""
	if os.Getenv("ENV") != EnvProduction {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(envPath); err != nil {
			note = fmt.Sprintf(".env file not found at %s, using system environment variables", envPath)
		} else {
			note = fmt.Sprintf("loaded environment variables from %s", envPath)
		}
	}

	cfg, err := Parse()
	if err != nil {
		return nil, note, err
	}
	return cfg, note, nil
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Remove leading colon if present (some platforms pass ":8080")
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &cfg, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Addr is the listen address; 0.0.0.0 accepts connections on all interfaces
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
