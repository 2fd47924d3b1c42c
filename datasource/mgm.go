package datasource

import (
	"context"
	"net/url"
	"strconv"

	"meteoroloji/models"
)

const (
	pathCities          = "/merkezler/iller"
	pathDistrict        = "/merkezler"
	pathDistrictsInCity = "/merkezler/ililcesi"
	pathLatest          = "/sondurumlar"
	pathDaily           = "/tahminler/gunluk"
	pathHourly          = "/tahminler/saatlik"
)

// Name returns the provider name
func (c *Client) Name() string {
	return "MGM"
}

// query fetches path and decodes the top-level JSON array.
func (c *Client) query(ctx context.Context, op, path string, params url.Values) ([]any, error) {
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, requestFailed(op, err)
	}
	records, err := decodeArray(body)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return records, nil
}

// querySingle is query for endpoints that answer with exactly one object.
func (c *Client) querySingle(ctx context.Context, op, path string, params url.Values) (object, error) {
	records, err := c.query(ctx, op, path, params)
	if err != nil {
		return nil, err
	}
	obj, err := single(records)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return obj, nil
}

// Cities lists every city centre.
func (c *Client) Cities(ctx context.Context) ([]models.Location, error) {
	const op = "cities"
	records, err := c.query(ctx, op, pathCities, nil)
	if err != nil {
		return nil, err
	}
	locs, err := mapLocations(records)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return locs, nil
}

// District resolves district in city. An empty district resolves the
// city's own central point.
func (c *Client) District(ctx context.Context, city, district string) (models.Location, error) {
	const op = "district"
	params := url.Values{}
	params.Set("il", city)
	params.Set("ilce", district)

	obj, err := c.querySingle(ctx, op, pathDistrict, params)
	if err != nil {
		return models.Location{}, err
	}
	loc, err := mapLocation(obj)
	if err != nil {
		return models.Location{}, parsingFailed(op, err)
	}
	return loc, nil
}

// DistrictsInCity lists the districts of city.
func (c *Client) DistrictsInCity(ctx context.Context, city string) ([]models.Location, error) {
	const op = "districts in city"
	params := url.Values{}
	params.Set("il", city)

	records, err := c.query(ctx, op, pathDistrictsInCity, params)
	if err != nil {
		return nil, err
	}
	locs, err := mapLocations(records)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return locs, nil
}

// LatestObservation fetches the latest observation for loc.ID.
func (c *Client) LatestObservation(ctx context.Context, loc models.Location) (models.Observation, error) {
	const op = "latest observation"
	params := url.Values{}
	params.Set("merkezid", strconv.Itoa(loc.ID))

	obj, err := c.querySingle(ctx, op, pathLatest, params)
	if err != nil {
		return models.Observation{}, err
	}
	obs, err := mapObservation(obj)
	if err != nil {
		return models.Observation{}, parsingFailed(op, err)
	}
	return obs, nil
}

// DailyForecasts fetches the 5 day forecast of loc.DailyForecastStation.
func (c *Client) DailyForecasts(ctx context.Context, loc models.Location) ([]models.DailyForecast, error) {
	const op = "daily forecast"
	params := url.Values{}
	params.Set("istno", strconv.Itoa(loc.DailyForecastStation))

	obj, err := c.querySingle(ctx, op, pathDaily, params)
	if err != nil {
		return nil, err
	}
	forecasts, err := mapDailyForecasts(obj)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return forecasts, nil
}

// HourlyForecasts fetches the 3-hourly forecast of loc.HourlyForecastStation.
// The number of slots is decided by the service.
func (c *Client) HourlyForecasts(ctx context.Context, loc models.Location) ([]models.HourlyForecast, error) {
	const op = "hourly forecast"
	params := url.Values{}
	params.Set("istno", strconv.Itoa(loc.HourlyForecastStation))

	obj, err := c.querySingle(ctx, op, pathHourly, params)
	if err != nil {
		return nil, err
	}
	forecasts, err := mapHourlyForecasts(obj)
	if err != nil {
		return nil, parsingFailed(op, err)
	}
	return forecasts, nil
}

// Ensure Client implements Provider
var _ Provider = (*Client)(nil)
