package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "SESSION_SECRET", "SESSION_EXPIRY", "DEFAULT_LENGTH", "MAX_LENGTH", "MIN_LENGTH", "WIDGET_MAX_LENGTH", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DefaultLength != 8 {
		t.Errorf("DefaultLength = %d, want 8", cfg.DefaultLength)
	}
	if cfg.WidgetMinLength != 6 || cfg.WidgetMaxLength != 101 {
		t.Errorf("widget bounds = %d..%d, want 6..101", cfg.WidgetMinLength, cfg.WidgetMaxLength)
	}
	if cfg.SessionExpiry != 24*time.Hour {
		t.Errorf("SessionExpiry = %v, want 24h", cfg.SessionExpiry)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_EXPIRY", "30m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MAX_LENGTH", "64")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.SessionExpiry != 30*time.Minute {
		t.Errorf("SessionExpiry = %v, want 30m", cfg.SessionExpiry)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
	}
	if cfg.MaxLength != 64 {
		t.Errorf("MaxLength = %d, want 64", cfg.MaxLength)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DEFAULT_LENGTH", "eight")
	t.Setenv("SESSION_EXPIRY", "soon")

	cfg := Load()

	if cfg.DefaultLength != 8 {
		t.Errorf("DefaultLength = %d, want fallback 8", cfg.DefaultLength)
	}
	if cfg.SessionExpiry != 24*time.Hour {
		t.Errorf("SessionExpiry = %v, want fallback 24h", cfg.SessionExpiry)
	}
}

func TestLoadNonPositiveMaxLengthFallsBack(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Setenv("MAX_LENGTH", v)

		cfg := Load()

		if cfg.MaxLength != 4096 {
			t.Errorf("MAX_LENGTH=%s: MaxLength = %d, want fallback 4096", v, cfg.MaxLength)
		}
	}
}

func validConfig() Config {
	return Config{
		DefaultLength:   8,
		MaxLength:       4096,
		WidgetMinLength: 6,
		WidgetMaxLength: 101,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "single length slider", modify: func(c *Config) { c.WidgetMinLength, c.WidgetMaxLength = 12, 12 }},
		{name: "zero widget minimum", modify: func(c *Config) { c.WidgetMinLength = 0 }, wantErr: "MIN_LENGTH must be at least 1"},
		{name: "inverted widget bounds", modify: func(c *Config) { c.WidgetMinLength, c.WidgetMaxLength = 20, 10 }, wantErr: "WIDGET_MAX_LENGTH 10 is below MIN_LENGTH 20"},
		{name: "zero default length", modify: func(c *Config) { c.DefaultLength = 0 }, wantErr: "DEFAULT_LENGTH must be at least 1"},
		{name: "default above cap", modify: func(c *Config) { c.MaxLength = 4 }, wantErr: "MAX_LENGTH 4 is below DEFAULT_LENGTH 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
