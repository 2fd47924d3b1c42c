package models

// Sentinel values MGM uses for measurements that are not available.
const (
	Unavailable      float64 = -9999
	UnavailableShort float64 = -99
)

// Available reports whether v is a real measurement rather than a sentinel.
func Available(v float64) bool {
	return v != Unavailable && v != UnavailableShort
}

// Observation is the latest measured situation at a district's station.
// Any measurement may hold a sentinel value, check it with Available.
type Observation struct {
	Condition            Condition `json:"condition"`
	ActualPressure       float64   `json:"actualPressure"`       // in hPa
	ReducedPressureAtSea float64   `json:"reducedPressureAtSea"` // in hPa
	SeaTemperature       float64   `json:"seaTemperature"`       // in Celsius
	SnowHeight           float64   `json:"snowHeight"`           // in metres
	HumidityPercent      float64   `json:"humidityPercent"`
	WindSpeed            float64   `json:"windSpeed"`     // in km/h
	WindDirection        float64   `json:"windDirection"` // in degrees
	CloudinessPercent    float64   `json:"cloudinessPercent"`
	Temperature          float64   `json:"temperature"` // in Celsius
	Rainfall             float64   `json:"rainfall"`    // in mm, all rainfall fields
	Rainfall10Mins       float64   `json:"rainfall10Mins"`
	Rainfall1Hour        float64   `json:"rainfall1Hour"`
	Rainfall6Hours       float64   `json:"rainfall6Hours"`
	Rainfall12Hours      float64   `json:"rainfall12Hours"`
	Rainfall24Hours      float64   `json:"rainfall24Hours"`
	// Time is the measurement time exactly as sent by MGM (ISO 8601, UTC).
	Time string `json:"time"`
}
