package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Token               string
	DatabaseURL         string
	MigrationsPath      string
	CommandPrefix       string
	CanonicalLang       string
	GoogleCredentials   string
	TranslateTimeout    time.Duration
	TranslateRatePerSec float64
	LogLevel            string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:             os.Getenv("TOKEN"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    envOr("MIGRATIONS_PATH", "migrations"),
		CommandPrefix:     envOr("COMMAND_PREFIX", "!"),
		CanonicalLang:     envOr("CANONICAL_LANG", "en"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.TranslateTimeout, err = envDuration("TRANSLATE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.TranslateRatePerSec, err = envFloat("TRANSLATE_RATE_PER_SEC", 5); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/annobot?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	c.CanonicalLang = strings.ToLower(strings.TrimSpace(c.CanonicalLang))
	if _, err := language.Parse(c.CanonicalLang); err != nil {
		return fmt.Errorf("config: CANONICAL_LANG %q is not a valid language code: %w", c.CanonicalLang, err)
	}

	if c.TranslateTimeout <= 0 {
		return fmt.Errorf("config: TRANSLATE_TIMEOUT must be positive")
	}
	if c.TranslateRatePerSec <= 0 {
		return fmt.Errorf("config: TRANSLATE_RATE_PER_SEC must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s (%q): %w", key, v, err)
	}
	return d, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s (%q): %w", key, v, err)
	}
	return f, nil
}
