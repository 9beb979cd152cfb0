package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"cwa-weather/internal/config"

	_ "cwa-weather/docs" // Import generated docs
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	if proxy := cfg.ProxyURL(); proxy != "" {
		logger.Info("outbound proxy enabled", "proxy", proxy)
	} else {
		logger.Info("outbound proxy disabled, connecting to CWA API directly")
	}
	if !cfg.HasAPIKey() {
		logger.Warn("CWA_API_KEY is not set, weather endpoints will return 500")
	}

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server
	logger.Info("starting server",
		"addr", cfg.GetServerAddr(),
		"environment", cfg.App.Environment,
	)
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
	logger.Info("server stopped")
}
