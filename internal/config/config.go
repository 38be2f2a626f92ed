package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
)

const devSessionSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	SessionSecret  string
	SessionExpiry  time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	MetricsEnabled bool

	// DefaultLength is used when a request omits the length.
	DefaultLength int
	// MaxLength caps stateless generate requests.
	MaxLength int
	// WidgetMinLength and WidgetMaxLength bound the slider of widget sessions.
	WidgetMinLength int
	WidgetMaxLength int
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		SessionSecret:   getEnv("SESSION_SECRET", devSessionSecret),
		SessionExpiry:   getEnvDuration("SESSION_EXPIRY", 24*time.Hour),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		DefaultLength:   getEnvInt("DEFAULT_LENGTH", crypto.DefaultLength),
		MaxLength:       getEnvInt("MAX_LENGTH", crypto.DefaultMaxLength),
		WidgetMinLength: getEnvInt("MIN_LENGTH", 6),
		WidgetMaxLength: getEnvInt("WIDGET_MAX_LENGTH", 101),
	}

	if cfg.MaxLength < 1 {
		slog.Warn("ignoring non-positive MAX_LENGTH", "value", cfg.MaxLength)
		cfg.MaxLength = crypto.DefaultMaxLength
	}

	if cfg.Env == "production" && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate checks the length settings against each other.
func (c Config) Validate() error {
	var errs []error
	if c.DefaultLength < 1 {
		errs = append(errs, fmt.Errorf("DEFAULT_LENGTH must be at least 1, got %d", c.DefaultLength))
	}
	if c.MaxLength < c.DefaultLength {
		errs = append(errs, fmt.Errorf("MAX_LENGTH %d is below DEFAULT_LENGTH %d", c.MaxLength, c.DefaultLength))
	}
	if c.WidgetMinLength < 1 {
		errs = append(errs, fmt.Errorf("MIN_LENGTH must be at least 1, got %d", c.WidgetMinLength))
	}
	if c.WidgetMaxLength < c.WidgetMinLength {
		errs = append(errs, fmt.Errorf("WIDGET_MAX_LENGTH %d is below MIN_LENGTH %d", c.WidgetMaxLength, c.WidgetMinLength))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid boolean setting", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
