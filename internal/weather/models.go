package weather

// Element codes used by the 36-hour forecast dataset
const (
	ElementWeather   = "Wx"
	ElementRain      = "PoP"
	ElementMinTemp   = "MinT"
	ElementMaxTemp   = "MaxT"
	ElementComfort   = "CI"
	ElementWindSpeed = "WS"
)

const (
	rainSuffix        = "%"
	temperatureSuffix = "°C"
)

// ForecastRecord is one forecast period flattened across all weather elements.
// Fields whose element is absent for the period are left empty.
type ForecastRecord struct {
	StartTime string `json:"startTime" example:"2025-01-01 06:00:00"`
	EndTime   string `json:"endTime" example:"2025-01-01 18:00:00"`
	Weather   string `json:"weather" example:"晴時多雲"`
	Rain      string `json:"rain" example:"10%"`
	MinTemp   string `json:"minTemp" example:"20°C"`
	MaxTemp   string `json:"maxTemp" example:"28°C"`
	Comfort   string `json:"comfort" example:"舒適"`
	WindSpeed string `json:"windSpeed" example:""`
}

// HazardRecord is a single active weather warning for a city.
type HazardRecord struct {
	Phenomena string `json:"phenomena" example:"大雨"`
	StartTime string `json:"startTime" example:"2025-01-01 06:00:00"`
	EndTime   string `json:"endTime" example:"2025-01-01 18:00:00"`
}

// WeatherResult is the 36-hour forecast for one city.
type WeatherResult struct {
	City       string           `json:"city" example:"臺北市"`
	UpdateTime string           `json:"updateTime" example:"三十六小時天氣預報"`
	Forecasts  []ForecastRecord `json:"forecasts"`
}

// HazardResult lists the warnings in effect for one city.
type HazardResult struct {
	City    string         `json:"city" example:"高雄市"`
	Hazards []HazardRecord `json:"hazards"`
}
