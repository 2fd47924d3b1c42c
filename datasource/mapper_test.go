package datasource

import (
	"encoding/json"
	"strings"
	"testing"

	"meteoroloji/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip converts a fixture into the generic form produced by decodeArray.
func roundTrip(t *testing.T, v map[string]any) object {
	t.Helper()
	var obj object
	require.NoError(t, json.Unmarshal(mustJSON(t, v), &obj))
	return obj
}

func TestMapLocation(t *testing.T) {
	loc, err := mapLocation(roundTrip(t, locationJSON(90601, "Ankara", "Çankaya")))
	require.NoError(t, err)

	assert.Equal(t, models.Location{
		ID:                    90601,
		Name:                  "Çankaya",
		CityName:              "Ankara",
		CityPlateCode:         6,
		Height:                891,
		Longitude:             32.8597,
		Latitude:              39.9334,
		DailyForecastStation:  90601,
		HourlyForecastStation: 17130,
	}, loc)
}

func TestMapLocationMissingField(t *testing.T) {
	valid := locationJSON(90601, "Ankara", "Çankaya")
	for _, key := range []string{
		"merkezId", "yukseklik", "gunlukTahminIstNo", "saatlikTahminIstNo",
		"boylam", "enlem", "ilPlaka", "ilce", "il",
	} {
		loc, err := mapLocation(roundTrip(t, without(valid, key)))
		assert.ErrorContains(t, err, key)
		assert.Equal(t, models.Location{}, loc, key)
	}
}

func TestMapLocationWrongTypes(t *testing.T) {
	valid := locationJSON(90601, "Ankara", "Çankaya")

	_, err := mapLocation(roundTrip(t, with(valid, "merkezId", "90601")))
	assert.ErrorContains(t, err, `"merkezId": expected number, got string`)

	_, err = mapLocation(roundTrip(t, with(valid, "il", nil)))
	assert.ErrorContains(t, err, `"il": expected string, got null`)

	_, err = mapLocation(roundTrip(t, with(valid, "ilce", float64(3))))
	assert.ErrorContains(t, err, `"ilce"`)

	loc, err := mapLocation(roundTrip(t, with(valid, "merkezId", 90601.5)))
	assert.ErrorContains(t, err, `"merkezId": expected integer, got 90601.5`)
	assert.Equal(t, models.Location{}, loc)
}

func TestMapLocationRejectsIncompleteRecords(t *testing.T) {
	valid := locationJSON(90601, "Ankara", "Çankaya")

	for name, obj := range map[string]map[string]any{
		"zero id":       with(valid, "merkezId", float64(0)),
		"empty name":    with(valid, "ilce", ""),
		"empty city":    with(valid, "il", ""),
		"plate too low": with(valid, "ilPlaka", float64(0)),
		"plate too big": with(valid, "ilPlaka", float64(82)),
	} {
		loc, err := mapLocation(roundTrip(t, obj))
		assert.Error(t, err, name)
		assert.Equal(t, models.Location{}, loc, name)
	}

	loc, err := mapLocation(roundTrip(t, with(valid, "ilPlaka", float64(81))))
	require.NoError(t, err)
	assert.Equal(t, 81, loc.CityPlateCode)
}

func TestMapLocationsAbortsOnFirstFailure(t *testing.T) {
	records := []any{
		roundTrip(t, locationJSON(1, "Ankara", "Çankaya")),
		roundTrip(t, without(locationJSON(2, "Ankara", "Keçiören"), "enlem")),
		roundTrip(t, locationJSON(3, "Ankara", "Yenimahalle")),
	}
	locs, err := mapLocations(records)
	assert.Nil(t, locs)
	assert.ErrorContains(t, err, "record 1")

	locs, err = mapLocations([]any{"not an object"})
	assert.Nil(t, locs)
	assert.ErrorContains(t, err, "expected a JSON object")
}

func TestMapObservation(t *testing.T) {
	obs, err := mapObservation(roundTrip(t, observationJSON()))
	require.NoError(t, err)

	assert.Equal(t, models.ConditionPartlyCloudy, obs.Condition)
	assert.Equal(t, 912.4, obs.ActualPressure)
	assert.Equal(t, 1019.1, obs.ReducedPressureAtSea)
	assert.Equal(t, 61.0, obs.HumidityPercent)
	assert.Equal(t, 7.2, obs.WindSpeed)
	assert.Equal(t, 240.0, obs.WindDirection)
	assert.Equal(t, 4.0, obs.CloudinessPercent)
	assert.Equal(t, 12.6, obs.Temperature)
	assert.Equal(t, 0.4, obs.Rainfall24Hours)
	assert.Equal(t, "2025-03-01T09:00:00.000Z", obs.Time)

	// Sentinels pass through untouched.
	assert.Equal(t, -9999.0, obs.SeaTemperature)
	assert.Equal(t, -9999.0, obs.SnowHeight)
	assert.Equal(t, -99.0, obs.Rainfall10Mins)
	assert.False(t, models.Available(obs.SeaTemperature))
	assert.False(t, models.Available(obs.Rainfall10Mins))
}

func TestMapObservationMissingField(t *testing.T) {
	valid := observationJSON()
	for key := range valid {
		if key == "istNo" {
			continue
		}
		obs, err := mapObservation(roundTrip(t, without(valid, key)))
		assert.ErrorContains(t, err, key)
		assert.Equal(t, models.Observation{}, obs, key)
	}

	_, err := mapObservation(roundTrip(t, with(valid, "hadiseKodu", nil)))
	assert.Error(t, err)
	_, err = mapObservation(roundTrip(t, with(valid, "sicaklik", "12.6")))
	assert.Error(t, err)
}

func TestMapObservationUnknownCondition(t *testing.T) {
	obs, err := mapObservation(roundTrip(t, with(observationJSON(), "hadiseKodu", "XYZW")))
	require.NoError(t, err)
	assert.Equal(t, models.ConditionInvalid, obs.Condition)
}

func TestDayKey(t *testing.T) {
	templates := []string{
		keyDayCondition, keyDayTempMin, keyDayTempMax, keyDayHumidityMin,
		keyDayHumidityMax, keyDayWindSpeed, keyDayWindDir, keyDayTime,
	}
	for _, tmpl := range templates {
		prefix := strings.TrimSuffix(tmpl, "%d")
		first := dayKey(tmpl, 1)
		for day := 1; day <= models.ForecastDays; day++ {
			key := dayKey(tmpl, day)
			assert.Equal(t, len(first), len(key))
			assert.Equal(t, prefix, key[:len(key)-1])
			assert.Equal(t, byte('0'+day), key[len(key)-1])
		}
	}
	assert.Equal(t, "hadiseGun1", dayKey(keyDayCondition, 1))
	assert.Equal(t, "enYuksekNemGun5", dayKey(keyDayHumidityMax, 5))
	assert.Equal(t, "tarihGun3", dayKey(keyDayTime, 3))
}

func TestMapDailyForecasts(t *testing.T) {
	forecasts, err := mapDailyForecasts(roundTrip(t, dailyJSON()))
	require.NoError(t, err)
	require.Len(t, forecasts, models.ForecastDays)

	want := []models.Condition{
		models.ConditionClear,
		models.ConditionPartlyCloudy,
		models.ConditionHeavySnowy,
		models.ConditionHeavySnowy,
		models.ConditionFoggy,
	}
	for i, fc := range forecasts {
		day := float64(i + 1)
		assert.Equal(t, want[i], fc.Condition)
		assert.Equal(t, day, fc.TemperatureMin)
		assert.Equal(t, 10+day, fc.TemperatureMax)
		assert.Equal(t, 30+day, fc.HumidityMin)
		assert.Equal(t, 80+day, fc.HumidityMax)
		assert.Equal(t, 5*day, fc.WindSpeed)
		assert.Equal(t, 45*day, fc.WindDirection)
		assert.Equal(t, dailyJSON()[dayKey(keyDayTime, i+1)], fc.Time)

		assert.Equal(t, models.Unavailable, fc.PastPeakTemperatureMin)
		assert.Equal(t, models.Unavailable, fc.PastPeakTemperatureMax)
		assert.Equal(t, models.Unavailable, fc.PastAverageTemperatureMin)
		assert.Equal(t, models.Unavailable, fc.PastAverageTemperatureMax)
	}
}

func TestMapDailyForecastsMissingDayField(t *testing.T) {
	forecasts, err := mapDailyForecasts(roundTrip(t, without(dailyJSON(), "ruzgarYonGun4")))
	assert.Nil(t, forecasts)
	assert.ErrorContains(t, err, "day 4")
	assert.ErrorContains(t, err, "ruzgarYonGun4")

	forecasts, err = mapDailyForecasts(roundTrip(t, with(dailyJSON(), "tarihGun1", nil)))
	assert.Nil(t, forecasts)
	assert.ErrorContains(t, err, "day 1")
}

func TestMapHourlyForecasts(t *testing.T) {
	forecasts, err := mapHourlyForecasts(roundTrip(t, hourlyJSON(3)))
	require.NoError(t, err)
	require.Len(t, forecasts, 3)

	assert.Equal(t, models.HourlyForecast{
		Condition:        models.ConditionRainy,
		Temperature:      8,
		FeltTemperature:  6,
		Humidity:         75,
		WindDirection:    200,
		AverageWindSpeed: 12,
		MaxWindSpeed:     25,
		Time:             "2025-03-01T06:00:00.000Z",
	}, forecasts[2])

	forecasts, err = mapHourlyForecasts(roundTrip(t, hourlyJSON(0)))
	require.NoError(t, err)
	assert.Empty(t, forecasts)
}

func TestMapHourlyForecastsInvalid(t *testing.T) {
	_, err := mapHourlyForecasts(roundTrip(t, without(hourlyJSON(2), "tahmin")))
	assert.ErrorContains(t, err, `"tahmin"`)

	_, err = mapHourlyForecasts(roundTrip(t, with(hourlyJSON(2), "tahmin", "soon")))
	assert.ErrorContains(t, err, "expected array")

	obj := hourlyJSON(2)
	obj["tahmin"] = []any{hourlySlotJSON(0), without(hourlySlotJSON(3), "maksimumRuzgarHizi")}
	forecasts, err := mapHourlyForecasts(roundTrip(t, obj))
	assert.Nil(t, forecasts)
	assert.ErrorContains(t, err, "slot 1")
}

func TestDecodeArray(t *testing.T) {
	records, err := decodeArray([]byte(`[{"a":1},{"b":2}]`))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = decodeArray([]byte(`{"a":1}`))
	assert.ErrorContains(t, err, "expected a JSON array")

	_, err = decodeArray([]byte(`<html>blocked</html>`))
	assert.ErrorContains(t, err, "failed to parse response")

	_, err = decodeArray(nil)
	assert.Error(t, err)
}

func TestSingle(t *testing.T) {
	_, err := single(nil)
	assert.ErrorContains(t, err, "got 0")

	_, err = single([]any{map[string]any{}, map[string]any{}})
	assert.ErrorContains(t, err, "got 2")

	_, err = single([]any{float64(1)})
	assert.ErrorContains(t, err, "expected a JSON object")

	obj, err := single([]any{map[string]any{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, "v", obj["k"])
}
