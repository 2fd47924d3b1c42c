package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meteoroloji/collector"
	"meteoroloji/logger"
	"meteoroloji/models"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List all cities",
	Args:  cobra.NoArgs,
	RunE:  runCities,
}

var districtsCmd = &cobra.Command{
	Use:   "districts <city>",
	Short: "List the districts of a city",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistricts,
}

var situationCmd = &cobra.Command{
	Use:   "situation <city> [district]",
	Short: "Show the latest observation",
	Long:  `Show the latest observation of a district, or of the city centre when no district is given.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSituation,
}

var dailyCmd = &cobra.Command{
	Use:   "daily <city> [district]",
	Short: "Show the 5 day forecast",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDaily,
}

var hourlyCmd = &cobra.Command{
	Use:   "hourly <city> [district]",
	Short: "Show the 3-hourly forecast",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runHourly,
}

var watchCmd = &cobra.Command{
	Use:   "watch <city> [district...]",
	Short: "Poll latest observations until interrupted",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(citiesCmd, districtsCmd, situationCmd, dailyCmd, hourlyCmd, watchCmd)
}

// resolve looks up the district named by args, or the city centre.
func resolve(ctx context.Context, args []string) (models.Location, error) {
	district := ""
	if len(args) > 1 {
		district = args[1]
	}
	loc, err := current.locations.District(ctx, args[0], district)
	if err != nil {
		return models.Location{}, fmt.Errorf("could not find district %s-%s: %w", args[0], district, err)
	}
	return loc, nil
}

func runCities(cmd *cobra.Command, args []string) error {
	cities, err := current.locations.Cities(cmd.Context())
	if err != nil {
		return err
	}
	defer models.ReleaseLocations(cities)
	return printLocations(cmd.OutOrStdout(), cities)
}

func runDistricts(cmd *cobra.Command, args []string) error {
	districts, err := current.locations.DistrictsInCity(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer models.ReleaseLocations(districts)
	return printLocations(cmd.OutOrStdout(), districts)
}

func runSituation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	loc, err := resolve(ctx, args)
	if err != nil {
		return err
	}
	defer loc.Release()

	obs, err := current.provider.LatestObservation(ctx, loc)
	if err != nil {
		return fmt.Errorf("could not get latest situation for %s: %w", loc.DisplayName(), err)
	}
	defer obs.Release()

	printObservation(cmd.OutOrStdout(), loc, obs)
	return nil
}

func runDaily(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	loc, err := resolve(ctx, args)
	if err != nil {
		return err
	}
	defer loc.Release()

	forecasts, err := current.provider.DailyForecasts(ctx, loc)
	if err != nil {
		return fmt.Errorf("could not get daily forecast for %s: %w", loc.DisplayName(), err)
	}
	defer models.ReleaseDailyForecasts(forecasts)

	return printDaily(cmd.OutOrStdout(), loc, forecasts)
}

func runHourly(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	loc, err := resolve(ctx, args)
	if err != nil {
		return err
	}
	defer loc.Release()

	forecasts, err := current.provider.HourlyForecasts(ctx, loc)
	if err != nil {
		return fmt.Errorf("could not get hourly forecast for %s: %w", loc.DisplayName(), err)
	}
	defer models.ReleaseHourlyForecasts(forecasts)

	return printHourly(cmd.OutOrStdout(), loc, forecasts)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	city := args[0]
	districts := args[1:]
	if len(districts) == 0 {
		districts = []string{""}
	}

	locs := make([]models.Location, 0, len(districts))
	for _, d := range districts {
		loc, err := resolve(ctx, []string{city, d})
		if err != nil {
			return err
		}
		locs = append(locs, loc)
	}
	defer models.ReleaseLocations(locs)

	if addr := current.cfg.Watch.MetricsAddr; addr != "" {
		srv := &http.Server{
			Addr:    addr,
			Handler: promhttp.HandlerFor(current.registry, promhttp.HandlerOpts{}),
		}
		go func() {
			logger.Infof("Serving metrics on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("Metrics server stopped: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warnf("Metrics server shutdown: %v", err)
			}
		}()
	}

	oc := collector.NewObservationCollector(current.provider, locs)
	oc.SetInterval(current.cfg.Watch.Interval)
	oc.SetFetchTimeout(current.cfg.Watch.FetchTimeout)
	stop := oc.Start(ctx)
	defer stop()

	logger.Infof("Watching %d location(s) every %s", len(locs), current.cfg.Watch.Interval)
	out := cmd.OutOrStdout()
	readings, errs := oc.OutputChannel(), oc.ErrorChannel()
	for readings != nil || errs != nil {
		select {
		case r, ok := <-readings:
			if !ok {
				readings = nil
				continue
			}
			printObservation(out, r.Location, r.Observation)
			fmt.Fprintln(out)
			r.Observation.Release()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Errorf("%v", err)
		}
	}

	fmt.Fprintln(os.Stderr, "Shutdown complete")
	return nil
}
