package cwa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"cwa-weather/internal/config"
)

// API Docs: https://opendata.cwa.gov.tw/dist/opendata-swagger.html
// Sample request: https://opendata.cwa.gov.tw/api/v1/rest/datastore/F-C0032-001?Authorization=KEY&locationName=臺北市
const (
	DatasetForecast36Hour = "F-C0032-001"
	DatasetWarnings       = "W-C0033-001"

	datastorePath = "/v1/rest/datastore/"

	// maxErrorBody caps how much of a failed response is kept for diagnostics.
	maxErrorBody = 64 << 10
)

// Query holds the query parameters sent with every datastore request.
type Query struct {
	Authorization string
	LocationName  string
}

// APIError is returned when the CWA API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CWA API returned status %d: %s", e.StatusCode, string(e.Body))
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient builds a client from configuration. When the proxy is enabled all
// outbound requests are tunnelled through it; otherwise they go direct.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil

	if proxy := cfg.ProxyURL(); proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return NewClientWithHTTPClient(cfg.CWA.BaseURL, &http.Client{
		Transport: transport,
		Timeout:   cfg.CWA.Timeout,
	}, logger), nil
}

// NewClientWithHTTPClient creates a client against an arbitrary base URL and HTTP client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "cwa-client"),
	}
}

// GetForecast36Hour fetches the 36-hour city forecast dataset.
func (c *Client) GetForecast36Hour(ctx context.Context, q Query) (*ForecastResponse, error) {
	var resp ForecastResponse
	if err := c.Fetch(ctx, DatasetForecast36Hour, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetWarnings fetches the weather warnings dataset.
func (c *Client) GetWarnings(ctx context.Context, q Query) (*HazardResponse, error) {
	var resp HazardResponse
	if err := c.Fetch(ctx, DatasetWarnings, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Fetch issues a GET for the given dataset and decodes the JSON body into out.
// A non-2xx answer yields *APIError; anything else is a transport or decode failure.
func (c *Client) Fetch(ctx context.Context, datasetID string, q Query, out any) error {
	u, err := url.Parse(c.baseURL + datastorePath + url.PathEscape(datasetID))
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := u.Query()
	params.Set("Authorization", q.Authorization)
	params.Set("locationName", q.LocationName)
	u.RawQuery = params.Encode()

	// The URL carries the API key, so only the dataset and location are logged.
	c.logger.Debug("fetching CWA dataset",
		"dataset", datasetID,
		"location", q.LocationName,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch CWA dataset",
			"dataset", datasetID,
			"location", q.LocationName,
			"error", err,
		)
		return fmt.Errorf("failed to fetch %s: %w", datasetID, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("CWA API returned error",
			"dataset", datasetID,
			"location", q.LocationName,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode CWA response",
			"dataset", datasetID,
			"error", err,
		)
		return fmt.Errorf("failed to decode %s response: %w", datasetID, err)
	}

	c.logger.Debug("successfully fetched CWA dataset",
		"dataset", datasetID,
		"location", q.LocationName,
	)

	return nil
}
