package models

import (
	"time"
)

// ForecastDays is the number of days in a daily forecast.
const ForecastDays = 5

// HourlyWindow is the span covered by a single hourly forecast slot.
const HourlyWindow = 3 * time.Hour

// DailyForecast is the forecast for one day.
type DailyForecast struct {
	Condition      Condition `json:"condition"`
	TemperatureMin float64   `json:"temperatureMin"` // in Celsius
	TemperatureMax float64   `json:"temperatureMax"`
	HumidityMin    float64   `json:"humidityMin"` // percentage
	HumidityMax    float64   `json:"humidityMax"`
	WindSpeed      float64   `json:"windSpeed"`     // in km/h
	WindDirection  float64   `json:"windDirection"` // in degrees

	// Historical values are not provided yet and are always Unavailable.
	PastPeakTemperatureMin    float64 `json:"pastPeakTemperatureMin"`
	PastPeakTemperatureMax    float64 `json:"pastPeakTemperatureMax"`
	PastAverageTemperatureMin float64 `json:"pastAverageTemperatureMin"`
	PastAverageTemperatureMax float64 `json:"pastAverageTemperatureMax"`

	Time string `json:"time"`
}

// HourlyForecast is the forecast for a 3 hour window starting at Time.
type HourlyForecast struct {
	Condition        Condition `json:"condition"`
	Temperature      float64   `json:"temperature"`     // in Celsius
	FeltTemperature  float64   `json:"feltTemperature"` // in Celsius
	Humidity         float64   `json:"humidity"`        // percentage
	WindDirection    float64   `json:"windDirection"`   // in degrees
	AverageWindSpeed float64   `json:"averageWindSpeed"`
	MaxWindSpeed     float64   `json:"maxWindSpeed"`
	Time             string    `json:"time"`
}

// Window parses Time and returns the start and end of the slot.
func (f HourlyForecast) Window() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339Nano, f.Time)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(HourlyWindow), nil
}
