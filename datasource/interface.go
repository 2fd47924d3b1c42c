package datasource

import (
	"context"

	"meteoroloji/models"
)

// LocationSource resolves cities and districts.
type LocationSource interface {
	Name() string
	Cities(ctx context.Context) ([]models.Location, error)
	// District resolves a district of city. An empty district name resolves
	// the city's own central point.
	District(ctx context.Context, city, district string) (models.Location, error)
	DistrictsInCity(ctx context.Context, city string) ([]models.Location, error)
}

// WeatherSource fetches observations and forecasts for a resolved location.
type WeatherSource interface {
	Name() string
	LatestObservation(ctx context.Context, loc models.Location) (models.Observation, error)
	DailyForecasts(ctx context.Context, loc models.Location) ([]models.DailyForecast, error)
	HourlyForecasts(ctx context.Context, loc models.Location) ([]models.HourlyForecast, error)
}

// Provider is a source of both locations and weather data.
type Provider interface {
	LocationSource
	WeatherSource
}
