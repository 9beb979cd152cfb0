package weather

import (
	"fmt"

	"cwa-weather/internal/providers/cwa"
)

// TransformForecast flattens a location's weather elements into one record per
// forecast period.
//
// Periods come from the first element's time sequence. Every element is then
// merged into those periods by start time rather than by position, so an
// element that skips or reorders a period cannot shift values into the wrong
// record. Unknown element codes are ignored.
func TransformForecast(loc *cwa.ForecastLocation) ([]ForecastRecord, error) {
	if loc == nil {
		return nil, ErrNotFound
	}

	forecasts := make([]ForecastRecord, 0)
	if len(loc.WeatherElement) == 0 {
		return forecasts, nil
	}

	slots := loc.WeatherElement[0].Time
	index := make(map[string]int, len(slots))
	for i, slot := range slots {
		forecasts = append(forecasts, ForecastRecord{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
		if _, dup := index[slot.StartTime]; !dup {
			index[slot.StartTime] = i
		}
	}

	for _, element := range loc.WeatherElement {
		for _, slice := range element.Time {
			i, ok := index[slice.StartTime]
			if !ok {
				continue
			}
			applyElement(&forecasts[i], element.ElementName, slice.Parameter.ParameterName)
		}
	}

	return forecasts, nil
}

func applyElement(record *ForecastRecord, code, value string) {
	switch code {
	case ElementWeather:
		record.Weather = value
	case ElementRain:
		record.Rain = value + rainSuffix
	case ElementMinTemp:
		record.MinTemp = value + temperatureSuffix
	case ElementMaxTemp:
		record.MaxTemp = value + temperatureSuffix
	case ElementComfort:
		record.Comfort = value
	case ElementWindSpeed:
		record.WindSpeed = value
	}
}

// TransformHazards maps a location's hazard entries to flat records, keeping
// upstream order. An entry without info or validTime fails the whole transform.
func TransformHazards(loc *cwa.HazardLocation) ([]HazardRecord, error) {
	if loc == nil {
		return nil, ErrNotFound
	}
	if loc.HazardConditions == nil {
		return nil, fmt.Errorf("%w: location %q has no hazardConditions", ErrMalformedData, loc.LocationName)
	}

	hazards := make([]HazardRecord, 0, len(loc.HazardConditions.Hazards))
	for i, h := range loc.HazardConditions.Hazards {
		if h.Info == nil {
			return nil, fmt.Errorf("%w: hazard %d has no info", ErrMalformedData, i)
		}
		if h.ValidTime == nil {
			return nil, fmt.Errorf("%w: hazard %d has no validTime", ErrMalformedData, i)
		}
		hazards = append(hazards, HazardRecord{
			Phenomena: h.Info.Phenomena,
			StartTime: h.ValidTime.StartTime,
			EndTime:   h.ValidTime.EndTime,
		})
	}

	return hazards, nil
}
