package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded selects the address table compiled into the binary.
const SourceEmbedded = "embedded"

// Config holds the overall configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Registry  RegistryConfig  `yaml:"registry"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	ReadTimeout    int      `yaml:"readTimeout"`  // seconds
	WriteTimeout   int      `yaml:"writeTimeout"` // seconds
	IdleTimeout    int      `yaml:"idleTimeout"`  // seconds
	AllowedOrigins []string `yaml:"allowedOrigins"`
	EnableReload   bool     `yaml:"enableReload"` // exposes POST /api/v1/admin/reload
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // e.g., "debug", "info", "warn", "error"
	Encoding string `yaml:"encoding"` // "json" or "console"
}

// RegistryConfig selects where the address table comes from.
type RegistryConfig struct {
	// Source is "embedded", a path to a .yaml/.yml/.json file, or an http(s) URL.
	Source               string `yaml:"source"`
	ReloadIntervalSec    int    `yaml:"reloadIntervalSec"` // 0 disables periodic reload
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// RateLimitConfig holds per-client limits for the HTTP API.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"` // 0 disables limiting
	Burst             int     `yaml:"burst"`
	IdleMinutes       int     `yaml:"idleMinutes"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// GetConfig returns c itself so a *Config satisfies port.ConfigProvider.
func (c *Config) GetConfig() *Config {
	return c
}

// ReloadInterval returns the periodic reload interval; zero when disabled.
func (c RegistryConfig) ReloadInterval() time.Duration {
	return time.Duration(c.ReloadIntervalSec) * time.Second
}

// RequestTimeout returns the timeout for fetching remote tables.
func (c RegistryConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// LoadConfig loads configuration from a YAML file. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		logrus.Info("No configuration path given, using defaults")
		return Default(), nil
	}

	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Config file %s does not exist, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Debugf("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Encoding == "" {
		cfg.Logging.Encoding = "json"
	}

	if cfg.Registry.Source == "" {
		cfg.Registry.Source = SourceEmbedded
		logrus.Infof("Registry.Source not set, defaulting to %s", cfg.Registry.Source)
	}
	if cfg.Registry.RequestTimeoutMillis == 0 {
		cfg.Registry.RequestTimeoutMillis = 10000 // Default to 10 seconds
		logrus.Debugf("Registry.RequestTimeoutMillis not set, defaulting to %d ms", cfg.Registry.RequestTimeoutMillis)
	}

	if cfg.RateLimit.Burst == 0 && cfg.RateLimit.RequestsPerSecond > 0 {
		cfg.RateLimit.Burst = int(cfg.RateLimit.RequestsPerSecond)
		if cfg.RateLimit.Burst < 1 {
			cfg.RateLimit.Burst = 1
		}
		logrus.Infof("RateLimit.Burst not set, defaulting to %d", cfg.RateLimit.Burst)
	}
	if cfg.RateLimit.IdleMinutes == 0 {
		cfg.RateLimit.IdleMinutes = 10
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// Validate rejects values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Registry.ReloadIntervalSec < 0 {
		return fmt.Errorf("registry.reloadIntervalSec must not be negative, got %d", c.Registry.ReloadIntervalSec)
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rateLimit.requestsPerSecond must not be negative, got %v", c.RateLimit.RequestsPerSecond)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("logging.encoding must be json or console, got %q", c.Logging.Encoding)
	}
	return nil
}
