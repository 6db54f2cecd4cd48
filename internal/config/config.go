package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Precedence order:
// 1. Config file values
// 2. Environment variables (CAREERPILOT_BACKEND_BASEURL, etc.)
// 3. Default values
type Config struct {
	Backend       BackendConfig       `mapstructure:"backend"`
	App           AppConfig           `mapstructure:"app"`
	Session       SessionConfig       `mapstructure:"session"`
	Observability ObservabilityConfig `mapstructure:"observability"`

	// configFile is the file the configuration was loaded from, empty
	// when only defaults and environment variables were used.
	configFile string
}

// BackendConfig holds the career-assistant backend connection settings
type BackendConfig struct {
	BaseURL        string               `mapstructure:"baseURL"`
	Timeout        time.Duration        `mapstructure:"timeout"`
	UploadTimeout  time.Duration        `mapstructure:"uploadTimeout"`
	MaxRetries     int                  `mapstructure:"maxRetries"`
	TLS            ClientTLSConfig      `mapstructure:"tls"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// ClientTLSConfig holds TLS settings for the backend connection
type ClientTLSConfig struct {
	CAFile             string `mapstructure:"caFile"`             // Extra CA bundle for private deployments (PEM)
	ServerName         string `mapstructure:"serverName"`         // Expected server name when it differs from the URL host
	InsecureSkipVerify bool   `mapstructure:"insecureSkipVerify"` // Skip certificate verification (dev only)
}

// CircuitBreakerConfig represents circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`          // Whether circuit breaker is enabled
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed when half-open
	Interval         time.Duration `mapstructure:"interval"`         // Interval to clear counts
	Timeout          time.Duration `mapstructure:"timeout"`          // Timeout for half-open to open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Minimum requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio threshold (0.0-1.0)
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxCVSize        int64    `mapstructure:"maxCVSize"`
	CVExtensions     []string `mapstructure:"cvExtensions"`
}

// SessionConfig holds session behavior configuration
type SessionConfig struct {
	ReloadLimit ReloadLimitConfig `mapstructure:"reloadLimit"`
}

// ReloadLimitConfig throttles recommendation reloads triggered by
// rapid filter edits
type ReloadLimitConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	PerSecond float64 `mapstructure:"perSecond"`
	Burst     int     `mapstructure:"burst"`
}

// ObservabilityConfig holds observability configuration
type ObservabilityConfig struct {
	Enabled         bool             `mapstructure:"enabled"`
	ServiceName     string           `mapstructure:"serviceName"`
	ServiceVersion  string           `mapstructure:"serviceVersion"`
	ServiceInstance string           `mapstructure:"serviceInstance"`
	ConsoleOutput   bool             `mapstructure:"consoleOutput"`
	SampleRate      float64          `mapstructure:"sampleRate"`
	Metrics         MetricsConfig    `mapstructure:"metrics"`
	Console         ConsoleConfig    `mapstructure:"console"`
	Prometheus      PrometheusConfig `mapstructure:"prometheus"`
	OTLP            OTLPConfig       `mapstructure:"otlp"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}

// ConsoleConfig holds console output configuration
type ConsoleConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"prettyPrint"`
}

// PrometheusConfig holds Prometheus configuration
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Port     string `mapstructure:"port"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	Enabled  bool              `mapstructure:"enabled"`
	Endpoint string            `mapstructure:"endpoint"`
	Insecure bool              `mapstructure:"insecure"`
	Headers  map[string]string `mapstructure:"headers"`
}

// LoadConfig loads configuration from environment variables and a config file
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CAREERPILOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/careerpilot/")
	v.AddConfigPath("$HOME/.careerpilot")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configFile = v.ConfigFileUsed()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// ConfigFileUsed returns the path of the config file that was read,
// empty when none was found.
func (c *Config) ConfigFileUsed() string {
	return c.configFile
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.baseURL must not be empty")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("backend.baseURL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.baseURL must use http or https, got %q", u.Scheme)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	if c.Backend.MaxRetries < 0 {
		return fmt.Errorf("backend.maxRetries must not be negative, got %d", c.Backend.MaxRetries)
	}

	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("app.logLevel must be one of debug, info, warn, error; got %q", c.App.LogLevel)
	}

	if c.App.DefaultFormat != "" && len(c.App.SupportedFormats) > 0 {
		if !slices.Contains(c.App.SupportedFormats, c.App.DefaultFormat) {
			return fmt.Errorf("app.defaultFormat %q is not among supported formats %v",
				c.App.DefaultFormat, c.App.SupportedFormats)
		}
	}

	if c.Backend.CircuitBreaker.Enabled {
		cb := c.Backend.CircuitBreaker
		if cb.FailureThreshold <= 0 || cb.FailureThreshold > 1 {
			return fmt.Errorf("backend.circuitBreaker.failureThreshold must be in (0, 1], got %v", cb.FailureThreshold)
		}
	}

	if c.Session.ReloadLimit.Enabled {
		rl := c.Session.ReloadLimit
		if rl.PerSecond <= 0 {
			return fmt.Errorf("session.reloadLimit.perSecond must be positive, got %v", rl.PerSecond)
		}
		if rl.Burst < 1 {
			return fmt.Errorf("session.reloadLimit.burst must be at least 1, got %d", rl.Burst)
		}
	}

	return nil
}
