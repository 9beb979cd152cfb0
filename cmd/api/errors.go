package main

import (
	"errors"
	"fmt"
	"net/http"

	"cwa-weather/internal/weather"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error" example:"查無資料"`
	Message string `json:"message,omitempty" example:"無法取得臺北市天氣資料"`
	Details any    `json:"details,omitempty"`
}

// writeError maps a service error onto a status code and error envelope.
func (app *App) writeError(c *gin.Context, ep endpoint, city string, err error) {
	var upErr *weather.UpstreamError

	switch {
	case errors.Is(err, weather.ErrConfig):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "伺服器設定錯誤",
			Message: "請在 .env 檔案中設定 CWA_API_KEY",
		})

	case errors.Is(err, weather.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "請提供縣市名稱",
			Message: fmt.Sprintf("路徑格式：%s，例如 %s", ep.path, ep.example),
		})

	case errors.Is(err, weather.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "查無資料",
			Message: fmt.Sprintf("無法取得%s天氣資料", weather.NormalizeCity(city)),
		})

	case errors.As(err, &upErr):
		message := upErr.Message
		if message == "" {
			message = "無法取得" + ep.subject
		}
		c.JSON(upstreamStatus(upErr.StatusCode), ErrorResponse{
			Error:   "CWA API 錯誤",
			Message: message,
			Details: upErr.Details,
		})

	case errors.Is(err, weather.ErrMalformedData):
		app.logger.Error("malformed CWA payload",
			"path", ep.path,
			"city", city,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "CWA 資料格式錯誤",
			Message: "無法解析" + ep.subject,
		})

	default:
		app.logger.Error("failed to get weather data",
			"path", ep.path,
			"city", city,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "伺服器錯誤",
			Message: "無法取得" + ep.subject + "，請稍後再試",
		})
	}
}

// upstreamStatus passes an upstream error status through, falling back to 502
// for codes that would not read as an error to the client.
func upstreamStatus(code int) int {
	if code < http.StatusBadRequest || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
