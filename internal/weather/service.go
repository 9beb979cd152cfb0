package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cwa-weather/internal/config"
	"cwa-weather/internal/providers/cwa"

	"golang.org/x/text/unicode/norm"
)

// Provider fetches raw datasets from the CWA API.
type Provider interface {
	GetForecast36Hour(ctx context.Context, q cwa.Query) (*cwa.ForecastResponse, error)
	GetWarnings(ctx context.Context, q cwa.Query) (*cwa.HazardResponse, error)
}

// Service provides simplified CWA weather data for a city.
type Service interface {
	// GetForecast36Hour returns the 36-hour forecast for a city
	GetForecast36Hour(ctx context.Context, city string) (*WeatherResult, error)
	// GetHazards returns the weather warnings in effect for a city
	GetHazards(ctx context.Context, city string) (*HazardResult, error)
}

type weatherService struct {
	apiKey   string
	provider Provider
	logger   *slog.Logger
}

// NewWeatherService creates a weather service backed by a real CWA client
func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	client, err := cwa.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create CWA client: %w", err)
	}
	return NewWeatherServiceWithProvider(cfg.CWA.APIKey, client, logger), nil
}

// NewWeatherServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers
func NewWeatherServiceWithProvider(apiKey string, provider Provider, logger *slog.Logger) Service {
	return &weatherService{
		apiKey:   apiKey,
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

// GetForecast36Hour validates the city, fetches F-C0032-001 and flattens the
// first returned location.
func (s *weatherService) GetForecast36Hour(ctx context.Context, city string) (*WeatherResult, error) {
	query, err := s.buildQuery(city)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("getting 36-hour forecast", "city", query.LocationName)

	resp, err := s.provider.GetForecast36Hour(ctx, query)
	if err != nil {
		return nil, s.upstreamFailure(err, query.LocationName)
	}

	var loc *cwa.ForecastLocation
	if len(resp.Records.Location) > 0 {
		loc = &resp.Records.Location[0]
	}

	forecasts, err := TransformForecast(loc)
	if err != nil {
		s.logger.Warn("no forecast for city", "city", query.LocationName, "error", err)
		return nil, err
	}

	s.logger.Debug("successfully mapped forecast",
		"city", loc.LocationName,
		"periods", len(forecasts),
	)

	return &WeatherResult{
		City:       loc.LocationName,
		UpdateTime: resp.Records.DatasetDescription,
		Forecasts:  forecasts,
	}, nil
}

// GetHazards validates the city, fetches W-C0033-001 and flattens the first
// returned location's hazards.
func (s *weatherService) GetHazards(ctx context.Context, city string) (*HazardResult, error) {
	query, err := s.buildQuery(city)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("getting hazards", "city", query.LocationName)

	resp, err := s.provider.GetWarnings(ctx, query)
	if err != nil {
		return nil, s.upstreamFailure(err, query.LocationName)
	}

	var loc *cwa.HazardLocation
	if len(resp.Records.Location) > 0 {
		loc = &resp.Records.Location[0]
	}

	hazards, err := TransformHazards(loc)
	if err != nil {
		s.logger.Warn("failed to map hazards", "city", query.LocationName, "error", err)
		return nil, err
	}

	s.logger.Debug("successfully mapped hazards",
		"city", loc.LocationName,
		"hazards", len(hazards),
	)

	return &HazardResult{
		City:    loc.LocationName,
		Hazards: hazards,
	}, nil
}

// buildQuery checks preconditions that must hold before any upstream call.
func (s *weatherService) buildQuery(city string) (cwa.Query, error) {
	if s.apiKey == "" {
		s.logger.Error("CWA API key is not configured")
		return cwa.Query{}, ErrConfig
	}

	city = NormalizeCity(city)
	if city == "" {
		return cwa.Query{}, ErrValidation
	}

	return cwa.Query{Authorization: s.apiKey, LocationName: city}, nil
}

func (s *weatherService) upstreamFailure(err error, city string) error {
	var apiErr *cwa.APIError
	if errors.As(err, &apiErr) {
		return newUpstreamError(apiErr.StatusCode, apiErr.Body)
	}
	s.logger.Error("CWA request failed", "city", city, "error", err)
	return fmt.Errorf("%w: %w", ErrServer, err)
}

// NormalizeCity trims surrounding whitespace and puts the name in Unicode NFC,
// the form CWA location names are published in.
func NormalizeCity(city string) string {
	return norm.NFC.String(strings.TrimSpace(city))
}
