package models

// The Release functions drop everything an entity references so a caller
// can signal it is done with a result. They are safe to call more than once.

func (l *Location) Release() {
	if l != nil {
		*l = Location{}
	}
}

// ReleaseLocations releases every location in locs.
func ReleaseLocations(locs []Location) {
	for i := range locs {
		locs[i].Release()
	}
}

func (o *Observation) Release() {
	if o != nil {
		*o = Observation{}
	}
}

func ReleaseDailyForecasts(forecasts []DailyForecast) {
	for i := range forecasts {
		forecasts[i] = DailyForecast{}
	}
}

func ReleaseHourlyForecasts(forecasts []HourlyForecast) {
	for i := range forecasts {
		forecasts[i] = HourlyForecast{}
	}
}
