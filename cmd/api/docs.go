package main

// @title CWA Weather Gateway API
// @version 1.0.0
// @description Simplified access to the Central Weather Administration open-data API: 36-hour city forecasts and weather warnings.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:3000
// @BasePath /
