package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"meteoroloji/models"
)

// directionText names the compass direction wind blows from.
func directionText(degrees float64) string {
	switch {
	case (degrees >= 0 && degrees < 22.5) || (degrees > 337.5 && degrees <= 360):
		return "North"
	case degrees >= 22.5 && degrees < 67.5:
		return "Northeast"
	case degrees >= 67.5 && degrees < 112.5:
		return "East"
	case degrees >= 112.5 && degrees < 157.5:
		return "Southeast"
	case degrees >= 157.5 && degrees < 202.5:
		return "South"
	case degrees >= 202.5 && degrees < 247.5:
		return "Southwest"
	case degrees >= 247.5 && degrees < 292.5:
		return "West"
	case degrees >= 292.5 && degrees <= 337.5:
		return "Northwest"
	}
	return ""
}

// value formats v, or "-" when it is a sentinel.
func value(format string, v float64) string {
	if !models.Available(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

func printLocations(w io.Writer, locs []models.Location) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATE\tCITY\tDISTRICT\tID\tDAILY\tHOURLY")
	for _, l := range locs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			l.CityPlateCode, l.CityName, l.Name, l.ID, l.DailyForecastStation, l.HourlyForecastStation)
	}
	return tw.Flush()
}

func printObservation(w io.Writer, loc models.Location, obs models.Observation) {
	fmt.Fprintf(w, "City: %s\n", loc.CityName)
	fmt.Fprintf(w, "District: %s\n", loc.Name)
	fmt.Fprintf(w, "Time: %s\n", obs.Time)
	if obs.Condition.Valid() {
		fmt.Fprintf(w, "Condition: %s\n", obs.Condition)
	}

	if models.Available(obs.Temperature) {
		fmt.Fprintf(w, "Temperature: %.2f°C\n", obs.Temperature)
	}
	if models.Available(obs.HumidityPercent) {
		fmt.Fprintf(w, "Humidity: %%%d\n", int(obs.HumidityPercent))
	}
	if models.Available(obs.CloudinessPercent) {
		fmt.Fprintf(w, "Cloudiness: %%%d\n", int(obs.CloudinessPercent))
	}
	if models.Available(obs.WindSpeed) && models.Available(obs.WindDirection) {
		fmt.Fprintf(w, "Wind: %.2f kmh from %s\n", obs.WindSpeed, directionText(obs.WindDirection))
	}
	if models.Available(obs.Rainfall) {
		fmt.Fprintf(w, "Rainfall: %d mm\n", int(obs.Rainfall))
	}
	if models.Available(obs.ActualPressure) {
		fmt.Fprintf(w, "Pressure: %.2f hPa\n", obs.ActualPressure)
	}
	if models.Available(obs.ReducedPressureAtSea) {
		fmt.Fprintf(w, "Pressure (sea): %.2f hPa\n", obs.ReducedPressureAtSea)
	}
	if models.Available(obs.SeaTemperature) {
		fmt.Fprintf(w, "Temperature (sea): %.2f°C\n", obs.SeaTemperature)
	}
	if models.Available(obs.SnowHeight) {
		fmt.Fprintf(w, "Snow Height: %d m\n", int(obs.SnowHeight))
	}
}

func printDaily(w io.Writer, loc models.Location, forecasts []models.DailyForecast) error {
	fmt.Fprintf(w, "%s\n", loc.DisplayName())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCONDITION\tMIN\tMAX\tHUMIDITY\tWIND")
	for _, f := range forecasts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s-%s\t%s %s\n",
			f.Time, f.Condition,
			value("%.0f°C", f.TemperatureMin), value("%.0f°C", f.TemperatureMax),
			value("%.0f", f.HumidityMin), value("%.0f%%", f.HumidityMax),
			value("%.0f kmh", f.WindSpeed), directionText(f.WindDirection))
	}
	return tw.Flush()
}

func printHourly(w io.Writer, loc models.Location, forecasts []models.HourlyForecast) error {
	fmt.Fprintf(w, "%s\n", loc.DisplayName())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tCONDITION\tTEMP\tFELT\tHUMIDITY\tWIND\tGUST")
	for _, f := range forecasts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s %s\t%s\n",
			f.Time, f.Condition,
			value("%.0f°C", f.Temperature), value("%.0f°C", f.FeltTemperature),
			value("%.0f%%", f.Humidity),
			value("%.0f kmh", f.AverageWindSpeed), directionText(f.WindDirection),
			value("%.0f kmh", f.MaxWindSpeed))
	}
	return tw.Flush()
}
