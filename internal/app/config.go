package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Supported operator languages.
const (
	LangPortuguese = "pt-BR"
	LangEnglish    = "en"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Lang   string `envconfig:"APP_LANG" default:"pt-BR"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	SeedUsers bool `envconfig:"APP_SEED_USERS" default:"false"`

	// TestMode skips the interactive session so binaries can be smoke-run.
	TestMode bool `envconfig:"CHATCI_TEST_MODE" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	switch cfg.Lang {
	case LangPortuguese, LangEnglish:
	default:
		return nil, fmt.Errorf("unsupported language %q", cfg.Lang)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q", s)
	}
	return level, nil
}
