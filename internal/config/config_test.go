package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()

	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal defaults: %v", err)
	}
	return &cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig(t)

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Backend.BaseURL != "http://localhost:5000" {
		t.Errorf("backend.baseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("backend.timeout = %s", cfg.Backend.Timeout)
	}
	if !cfg.Backend.CircuitBreaker.Enabled {
		t.Error("circuit breaker disabled by default")
	}
	if cfg.App.LogLevel != "info" {
		t.Errorf("app.logLevel = %q", cfg.App.LogLevel)
	}
	if !cfg.Session.ReloadLimit.Enabled {
		t.Error("reload limit disabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.Backend.BaseURL = "" },
			wantErr: "baseURL",
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.Backend.BaseURL = "ftp://example.com" },
			wantErr: "http or https",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Backend.Timeout = 0 },
			wantErr: "timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Backend.MaxRetries = -1 },
			wantErr: "maxRetries",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.App.LogLevel = "verbose" },
			wantErr: "logLevel",
		},
		{
			name:    "default format not supported",
			mutate:  func(c *Config) { c.App.DefaultFormat = "xml" },
			wantErr: "defaultFormat",
		},
		{
			name:    "failure threshold out of range",
			mutate:  func(c *Config) { c.Backend.CircuitBreaker.FailureThreshold = 1.5 },
			wantErr: "failureThreshold",
		},
		{
			name:    "reload limit zero rate",
			mutate:  func(c *Config) { c.Session.ReloadLimit.PerSecond = 0 },
			wantErr: "perSecond",
		},
		{
			name:   "reload limit ignored when disabled",
			mutate: func(c *Config) { c.Session.ReloadLimit.Enabled = false; c.Session.ReloadLimit.PerSecond = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildClientTLSConfig(t *testing.T) {
	t.Run("empty settings return nil", func(t *testing.T) {
		c := ClientTLSConfig{}
		got, err := c.BuildClientTLSConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected nil tls config for empty settings")
		}
	})

	t.Run("insecure skip verify", func(t *testing.T) {
		c := ClientTLSConfig{InsecureSkipVerify: true}
		got, err := c.BuildClientTLSConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || !got.InsecureSkipVerify {
			t.Errorf("tls config = %+v, want InsecureSkipVerify", got)
		}
	})

	t.Run("missing CA file", func(t *testing.T) {
		c := ClientTLSConfig{CAFile: "/nonexistent/ca.pem"}
		if _, err := c.BuildClientTLSConfig(); err == nil {
			t.Error("expected error for missing CA file")
		}
	})
}
