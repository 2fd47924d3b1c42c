package main

import (
	"fmt"
	"os"

	"meteoroloji/cache"
	"meteoroloji/config"
	"meteoroloji/datasource"
	"meteoroloji/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds what every command needs, built once before the command runs.
type app struct {
	cfg       *config.Config
	registry  *prometheus.Registry
	provider  datasource.Provider
	locations datasource.LocationSource
}

var (
	configFile string
	current    *app
)

var rootCmd = &cobra.Command{
	Use:   "meteoroloji",
	Short: "Weather observations and forecasts for Turkish cities and districts",
	Long: `meteoroloji queries the MGM (Meteoroloji Genel Müdürlüğü) service for
cities, districts, latest observations and daily or hourly forecasts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configFile)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "meteoroloji.yaml", "Path to configuration file")
}

func newApp(configPath string) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		logger.Warnf("Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.SetLogLevel(cfg.LogLevel)

	registry := prometheus.NewRegistry()
	metrics, err := datasource.NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	opts := append(cfg.ClientOptions(), datasource.WithMetrics(metrics))
	var provider datasource.Provider = datasource.NewClient(opts...)
	if cfg.RateLimit.Enabled {
		provider = datasource.NewRateLimitedProvider(provider,
			cfg.RateLimit.LocationRPS, cfg.RateLimit.WeatherRPS, cfg.RateLimit.Burst)
		logger.Debugf("Applied rate limiting to %s", provider.Name())
	}

	var locations datasource.LocationSource = provider
	if cfg.CacheTTL > 0 {
		locations = cache.NewCachedLocationSource(provider, cfg.CacheTTL)
	}

	return &app{
		cfg:       cfg,
		registry:  registry,
		provider:  provider,
		locations: locations,
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
