package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.router.GET("/", app.handleIndex)

	api := app.router.Group("/api")
	{
		api.GET("/health", app.handleHealth)

		// The bare paths let an empty city reach the handler and get a 400.
		api.GET("/weather_36hr/", app.handleGetForecast36Hour)
		api.GET("/weather_36hr/:city", app.handleGetForecast36Hour)
		api.GET("/weather_hazards/", app.handleGetHazards)
		api.GET("/weather_hazards/:city", app.handleGetHazards)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	app.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "找不到此路徑"})
	})
}
