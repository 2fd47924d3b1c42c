package datasource

import (
	"context"
	"fmt"

	"meteoroloji/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with rate limiting. Location lookups
// and weather fetches draw from separate token buckets.
type RateLimitedProvider struct {
	provider        Provider
	locationLimiter *rate.Limiter
	weatherLimiter  *rate.Limiter
	name            string
}

// NewRateLimitedProvider creates a provider that waits for a token before every call.
// locationRPS and weatherRPS are the maximum requests per second for each kind of call,
// and can be fractional for less than 1 request per second.
func NewRateLimitedProvider(provider Provider, locationRPS, weatherRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		locationLimiter: rate.NewLimiter(rate.Limit(locationRPS), burst),
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// wait blocks until limiter allows a call. A cancelled or expired context is
// reported as a failed request for op.
func wait(ctx context.Context, limiter *rate.Limiter, op string) error {
	if err := limiter.Wait(ctx); err != nil {
		return requestFailed(op, fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return nil
}

func (r *RateLimitedProvider) Cities(ctx context.Context) ([]models.Location, error) {
	if err := wait(ctx, r.locationLimiter, "cities"); err != nil {
		return nil, err
	}
	return r.provider.Cities(ctx)
}

func (r *RateLimitedProvider) District(ctx context.Context, city, district string) (models.Location, error) {
	if err := wait(ctx, r.locationLimiter, "district"); err != nil {
		return models.Location{}, err
	}
	return r.provider.District(ctx, city, district)
}

func (r *RateLimitedProvider) DistrictsInCity(ctx context.Context, city string) ([]models.Location, error) {
	if err := wait(ctx, r.locationLimiter, "districts in city"); err != nil {
		return nil, err
	}
	return r.provider.DistrictsInCity(ctx, city)
}

func (r *RateLimitedProvider) LatestObservation(ctx context.Context, loc models.Location) (models.Observation, error) {
	if err := wait(ctx, r.weatherLimiter, "latest observation"); err != nil {
		return models.Observation{}, err
	}
	return r.provider.LatestObservation(ctx, loc)
}

func (r *RateLimitedProvider) DailyForecasts(ctx context.Context, loc models.Location) ([]models.DailyForecast, error) {
	if err := wait(ctx, r.weatherLimiter, "daily forecast"); err != nil {
		return nil, err
	}
	return r.provider.DailyForecasts(ctx, loc)
}

func (r *RateLimitedProvider) HourlyForecasts(ctx context.Context, loc models.Location) ([]models.HourlyForecast, error) {
	if err := wait(ctx, r.weatherLimiter, "hourly forecast"); err != nil {
		return nil, err
	}
	return r.provider.HourlyForecasts(ctx, loc)
}

// Verify that the rate limited provider implements the required interfaces
var _ Provider = (*RateLimitedProvider)(nil)
