package main

import (
	"net/http"

	"cwa-weather/internal/weather"

	"github.com/gin-gonic/gin"
)

// endpoint carries the wording used in error envelopes for one route
type endpoint struct {
	path    string
	example string
	subject string
}

var (
	forecastEndpoint = endpoint{
		path:    "/api/weather_36hr/:city",
		example: "/api/weather_36hr/臺北市",
		subject: "天氣資料",
	}
	hazardsEndpoint = endpoint{
		path:    "/api/weather_hazards/:city",
		example: "/api/weather_hazards/高雄市",
		subject: "警特報資料",
	}
)

// ForecastResponse is the success envelope for the 36-hour forecast
type ForecastResponse struct {
	Success bool                   `json:"success" example:"true"`
	Data    *weather.WeatherResult `json:"data"`
}

// HazardsResponse is the success envelope for weather warnings
type HazardsResponse struct {
	Success bool                  `json:"success" example:"true"`
	Data    *weather.HazardResult `json:"data"`
}

// handleGetForecast36Hour godoc
// @Summary Get 36-hour forecast
// @Description Retrieve the CWA 36-hour forecast (F-C0032-001) for a city, flattened into one record per period
// @Tags weather
// @Produce json
// @Param city path string true "City or county name" example(臺北市)
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather_36hr/{city} [get]
func (app *App) handleGetForecast36Hour(c *gin.Context) {
	city := c.Param("city")

	// Delegate to business layer
	result, err := app.weatherService.GetForecast36Hour(c.Request.Context(), city)
	if err != nil {
		app.writeError(c, forecastEndpoint, city, err)
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Success: true, Data: result})
}

// handleGetHazards godoc
// @Summary Get weather warnings
// @Description Retrieve the CWA weather warnings (W-C0033-001) in effect for a city
// @Tags weather
// @Produce json
// @Param city path string true "City or county name" example(高雄市)
// @Success 200 {object} HazardsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather_hazards/{city} [get]
func (app *App) handleGetHazards(c *gin.Context) {
	city := c.Param("city")

	result, err := app.weatherService.GetHazards(c.Request.Context(), city)
	if err != nil {
		app.writeError(c, hazardsEndpoint, city, err)
		return
	}

	c.JSON(http.StatusOK, HazardsResponse{Success: true, Data: result})
}
