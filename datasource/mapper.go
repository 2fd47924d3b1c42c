package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"meteoroloji/models"
)

// object is a decoded JSON object.
type object = map[string]any

// fields reads typed values out of an object and remembers the first
// failure. Mappers read every field first and build the entity only when
// err is still nil, so a failed record never yields a partial entity.
type fields struct {
	obj object
	err error
}

func (f *fields) number(key string) float64 {
	if f.err != nil {
		return 0
	}
	v, ok := f.obj[key].(float64)
	if !ok {
		f.err = fieldError(key, "number", f.obj[key])
	}
	return v
}

// integer rejects numbers with a fractional part.
func (f *fields) integer(key string) int {
	v := f.number(key)
	if f.err == nil && v != math.Trunc(v) {
		f.err = fmt.Errorf("field %q: expected integer, got %v", key, v)
		return 0
	}
	return int(v)
}

// str rejects missing keys, null values and non-string values.
func (f *fields) str(key string) string {
	if f.err != nil {
		return ""
	}
	v, ok := f.obj[key].(string)
	if !ok {
		f.err = fieldError(key, "string", f.obj[key])
	}
	return v
}

func fieldError(key, want string, got any) error {
	if got == nil {
		return fmt.Errorf("field %q: expected %s, got null or missing", key, want)
	}
	return fmt.Errorf("field %q: expected %s, got %T", key, want, got)
}

// decodeArray parses body and requires a top-level JSON array.
func decodeArray(body []byte) ([]any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	records, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", doc)
	}
	return records, nil
}

// single unwraps an array that must contain exactly one object.
func single(records []any) (object, error) {
	if len(records) != 1 {
		return nil, fmt.Errorf("expected exactly 1 record, got %d", len(records))
	}
	return asObject(records[0])
}

func asObject(v any) (object, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return obj, nil
}

func mapLocation(obj object) (models.Location, error) {
	f := fields{obj: obj}
	id := f.integer("merkezId")
	height := f.integer("yukseklik")
	daily := f.integer("gunlukTahminIstNo")
	hourly := f.integer("saatlikTahminIstNo")
	lon := f.number("boylam")
	lat := f.number("enlem")
	plate := f.integer("ilPlaka")
	name := f.str("ilce")
	city := f.str("il")
	if f.err != nil {
		return models.Location{}, f.err
	}

	switch {
	case id <= 0:
		return models.Location{}, fmt.Errorf(`field "merkezId": invalid id %d`, id)
	case name == "":
		return models.Location{}, errors.New(`field "ilce": empty name`)
	case city == "":
		return models.Location{}, errors.New(`field "il": empty city name`)
	}
	if plate < models.MinPlateCode || plate > models.MaxPlateCode {
		return models.Location{}, fmt.Errorf(`field "ilPlaka": %d out of range %d..%d`,
			plate, models.MinPlateCode, models.MaxPlateCode)
	}

	return models.Location{
		ID:                    id,
		Name:                  name,
		CityName:              city,
		CityPlateCode:         plate,
		Height:                height,
		Longitude:             lon,
		Latitude:              lat,
		DailyForecastStation:  daily,
		HourlyForecastStation: hourly,
	}, nil
}

func mapLocations(records []any) ([]models.Location, error) {
	locs := make([]models.Location, 0, len(records))
	for i, rec := range records {
		obj, err := asObject(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		loc, err := mapLocation(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

func mapObservation(obj object) (models.Observation, error) {
	f := fields{obj: obj}
	actual := f.number("aktuelBasinc")
	reduced := f.number("denizeIndirgenmisBasinc")
	sea := f.number("denizSicaklik")
	cloudiness := f.number("kapalilik")
	snow := f.number("karYukseklik")
	humidity := f.number("nem")
	windSpeed := f.number("ruzgarHiz")
	windDir := f.number("ruzgarYon")
	temp := f.number("sicaklik")
	rain := f.number("yagis00Now")
	rain10m := f.number("yagis10Dk")
	rain1h := f.number("yagis1Saat")
	rain6h := f.number("yagis6Saat")
	rain12h := f.number("yagis12Saat")
	rain24h := f.number("yagis24Saat")
	ts := f.str("veriZamani")
	code := f.str("hadiseKodu")
	if f.err != nil {
		return models.Observation{}, f.err
	}

	return models.Observation{
		Condition:            models.DecodeCondition(code),
		ActualPressure:       actual,
		ReducedPressureAtSea: reduced,
		SeaTemperature:       sea,
		SnowHeight:           snow,
		HumidityPercent:      humidity,
		WindSpeed:            windSpeed,
		WindDirection:        windDir,
		CloudinessPercent:    cloudiness,
		Temperature:          temp,
		Rainfall:             rain,
		Rainfall10Mins:       rain10m,
		Rainfall1Hour:        rain1h,
		Rainfall6Hours:       rain6h,
		Rainfall12Hours:      rain12h,
		Rainfall24Hours:      rain24h,
		Time:                 ts,
	}, nil
}

// Per-day keys of the daily forecast object. %d is the day ordinal, 1..5.
const (
	keyDayCondition   = "hadiseGun%d"
	keyDayTempMin     = "enDusukGun%d"
	keyDayTempMax     = "enYuksekGun%d"
	keyDayHumidityMin = "enDusukNemGun%d"
	keyDayHumidityMax = "enYuksekNemGun%d"
	keyDayWindSpeed   = "ruzgarHizGun%d"
	keyDayWindDir     = "ruzgarYonGun%d"
	keyDayTime        = "tarihGun%d"
)

// dayKey returns the key of template for the given day ordinal.
func dayKey(template string, day int) string {
	return fmt.Sprintf(template, day)
}

// mapDailyForecasts reads all days from the single flattened object MGM
// returns for the daily forecast.
func mapDailyForecasts(obj object) ([]models.DailyForecast, error) {
	forecasts := make([]models.DailyForecast, models.ForecastDays)
	f := fields{obj: obj}
	for i := range forecasts {
		day := i + 1
		code := f.str(dayKey(keyDayCondition, day))
		tempMin := f.number(dayKey(keyDayTempMin, day))
		tempMax := f.number(dayKey(keyDayTempMax, day))
		humMin := f.number(dayKey(keyDayHumidityMin, day))
		humMax := f.number(dayKey(keyDayHumidityMax, day))
		windSpeed := f.number(dayKey(keyDayWindSpeed, day))
		windDir := f.number(dayKey(keyDayWindDir, day))
		ts := f.str(dayKey(keyDayTime, day))
		if f.err != nil {
			return nil, fmt.Errorf("day %d: %w", day, f.err)
		}

		forecasts[i] = models.DailyForecast{
			Condition:                 models.DecodeCondition(code),
			TemperatureMin:            tempMin,
			TemperatureMax:            tempMax,
			HumidityMin:               humMin,
			HumidityMax:               humMax,
			WindSpeed:                 windSpeed,
			WindDirection:             windDir,
			PastPeakTemperatureMin:    models.Unavailable,
			PastPeakTemperatureMax:    models.Unavailable,
			PastAverageTemperatureMin: models.Unavailable,
			PastAverageTemperatureMax: models.Unavailable,
			Time:                      ts,
		}
	}
	return forecasts, nil
}

func mapHourlyForecast(obj object) (models.HourlyForecast, error) {
	f := fields{obj: obj}
	ts := f.str("tarih")
	code := f.str("hadise")
	temp := f.number("sicaklik")
	felt := f.number("hissedilenSicaklik")
	humidity := f.number("nem")
	windDir := f.number("ruzgarYonu")
	windAvg := f.number("ruzgarHizi")
	windMax := f.number("maksimumRuzgarHizi")
	if f.err != nil {
		return models.HourlyForecast{}, f.err
	}

	return models.HourlyForecast{
		Condition:        models.DecodeCondition(code),
		Temperature:      temp,
		FeltTemperature:  felt,
		Humidity:         humidity,
		WindDirection:    windDir,
		AverageWindSpeed: windAvg,
		MaxWindSpeed:     windMax,
		Time:             ts,
	}, nil
}

// mapHourlyForecasts reads the "tahmin" slots of the hourly forecast object.
func mapHourlyForecasts(obj object) ([]models.HourlyForecast, error) {
	slots, ok := obj["tahmin"].([]any)
	if !ok {
		return nil, fieldError("tahmin", "array", obj["tahmin"])
	}

	forecasts := make([]models.HourlyForecast, 0, len(slots))
	for i, slot := range slots {
		slotObj, err := asObject(slot)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		fc, err := mapHourlyForecast(slotObj)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		forecasts = append(forecasts, fc)
	}
	return forecasts, nil
}
