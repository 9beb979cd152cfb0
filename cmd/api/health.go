package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

// EndpointInfo describes one public endpoint on the index page
type EndpointInfo struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// IndexResponse lists the available endpoints
type IndexResponse struct {
	Message   string         `json:"message"`
	Endpoints IndexEndpoints `json:"endpoints"`
}

type IndexEndpoints struct {
	Weather36Hr    EndpointInfo `json:"weather_36hr"`
	WeatherHazards EndpointInfo `json:"weather_hazards"`
	Health         string       `json:"health"`
}

// handleHealth godoc
// @Summary Health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// handleIndex godoc
// @Summary API index
// @Description List the available endpoints with examples
// @Tags health
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (app *App) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Message: "歡迎使用 CWA 天氣預報 API",
		Endpoints: IndexEndpoints{
			Weather36Hr: EndpointInfo{
				URL:         forecastEndpoint.path,
				Description: "取得指定縣市的今明 36 小時天氣預報",
				Example:     forecastEndpoint.example,
			},
			WeatherHazards: EndpointInfo{
				URL:         hazardsEndpoint.path,
				Description: "取得指定縣市的天氣警特報",
				Example:     hazardsEndpoint.example,
			},
			Health: "/api/health",
		},
	})
}
