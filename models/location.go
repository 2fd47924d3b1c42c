package models

// Location is a city or district known to MGM. For a city's own central
// point Name is the city name.
type Location struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	CityName              string  `json:"cityName"`
	CityPlateCode         int     `json:"cityPlateCode"` // 1..81
	Height                int     `json:"height"`        // in metres
	Longitude             float64 `json:"longitude"`
	Latitude              float64 `json:"latitude"`
	DailyForecastStation  int     `json:"dailyForecastStation"`
	HourlyForecastStation int     `json:"hourlyForecastStation"`
}

const (
	MinPlateCode = 1
	MaxPlateCode = 81
)

// DisplayName returns "City" for a city centre and "City/District" otherwise.
// A zero Name, as in a hand-built Location, is treated as the city centre.
func (l Location) DisplayName() string {
	if l.Name == "" || l.Name == l.CityName {
		return l.CityName
	}
	return l.CityName + "/" + l.Name
}
