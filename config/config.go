package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"meteoroloji/datasource"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvBaseURL  = "METEOROLOJI_BASE_URL"
	EnvOrigin   = "METEOROLOJI_ORIGIN"
	EnvLogLevel = "METEOROLOJI_LOG_LEVEL"
)

// Config represents the CLI configuration
type Config struct {
	BaseURL  string `yaml:"baseURL"`
	Origin   string `yaml:"origin"`
	LogLevel string `yaml:"logLevel"`

	RateLimit struct {
		Enabled     bool    `yaml:"enabled"`
		LocationRPS float64 `yaml:"locationRPS"`
		WeatherRPS  float64 `yaml:"weatherRPS"`
		Burst       int     `yaml:"burst"`
	} `yaml:"rateLimit"`

	// CacheTTL is how long location lookups are cached. Zero disables caching.
	CacheTTL time.Duration `yaml:"cacheTTL"`

	Watch struct {
		Interval     time.Duration `yaml:"interval"`
		FetchTimeout time.Duration `yaml:"fetchTimeout"`
		MetricsAddr  string        `yaml:"metricsAddr"`
	} `yaml:"watch"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		BaseURL:  datasource.DefaultBaseURL,
		Origin:   datasource.DefaultOrigin,
		LogLevel: "INFO",
		CacheTTL: time.Hour,
	}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.LocationRPS = 2
	cfg.RateLimit.WeatherRPS = 1
	cfg.RateLimit.Burst = 3
	cfg.Watch.Interval = 10 * time.Minute
	cfg.Watch.FetchTimeout = 10 * time.Second
	return cfg
}

// LoadConfig loads configuration from a YAML file on top of the defaults
// and applies environment overrides. A missing file is not an error.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads variables from the given .env files, or ./.env when none
// are given. Variables already set in the environment win.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvOrigin); v != "" {
		c.Origin = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the values that would otherwise fail at first use.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("baseURL must not be empty")
	}
	if c.Origin == "" {
		return errors.New("origin must not be empty")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.LocationRPS <= 0 || c.RateLimit.WeatherRPS <= 0 {
			return errors.New("rateLimit rates must be positive")
		}
		if c.RateLimit.Burst < 1 {
			return errors.New("rateLimit.burst must be at least 1")
		}
	}
	if c.CacheTTL < 0 {
		return errors.New("cacheTTL must not be negative")
	}
	if c.Watch.Interval <= 0 {
		return errors.New("watch.interval must be positive")
	}
	if c.Watch.FetchTimeout <= 0 {
		return errors.New("watch.fetchTimeout must be positive")
	}
	return nil
}

// ClientOptions returns the datasource options described by c.
func (c *Config) ClientOptions() []datasource.Option {
	return []datasource.Option{
		datasource.WithBaseURL(c.BaseURL),
		datasource.WithOrigin(c.Origin),
	}
}
