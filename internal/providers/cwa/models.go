package cwa

// ForecastResponse is the F-C0032-001 (36-hour forecast) payload.
type ForecastResponse struct {
	Success string          `json:"success"`
	Records ForecastRecords `json:"records"`
}

type ForecastRecords struct {
	DatasetDescription string             `json:"datasetDescription"`
	Location           []ForecastLocation `json:"location"`
}

type ForecastLocation struct {
	LocationName   string           `json:"locationName"`
	WeatherElement []WeatherElement `json:"weatherElement"`
}

// WeatherElement is one forecast quantity (Wx, PoP, MinT, ...) over a sequence of periods.
type WeatherElement struct {
	ElementName string      `json:"elementName"`
	Time        []TimeSlice `json:"time"`
}

type TimeSlice struct {
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Parameter Parameter `json:"parameter"`
}

type Parameter struct {
	ParameterName  string `json:"parameterName"`
	ParameterValue string `json:"parameterValue,omitempty"`
	ParameterUnit  string `json:"parameterUnit,omitempty"`
}

// HazardResponse is the W-C0033-001 (weather warnings) payload.
type HazardResponse struct {
	Success string        `json:"success"`
	Records HazardRecords `json:"records"`
}

type HazardRecords struct {
	DatasetDescription string           `json:"datasetDescription"`
	Location           []HazardLocation `json:"location"`
}

type HazardLocation struct {
	LocationName     string            `json:"locationName"`
	Geocode          string            `json:"geocode,omitempty"`
	HazardConditions *HazardConditions `json:"hazardConditions"`
}

type HazardConditions struct {
	Hazards []Hazard `json:"hazards"`
}

// Hazard is a single warning entry. Info and ValidTime are pointers so a
// payload missing either can be told apart from one with empty strings.
type Hazard struct {
	Info      *HazardInfo `json:"info"`
	ValidTime *ValidTime  `json:"validTime"`
}

type HazardInfo struct {
	Language     string `json:"language"`
	Phenomena    string `json:"phenomena"`
	Significance string `json:"significance"`
}

type ValidTime struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
