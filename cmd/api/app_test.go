package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cwa-weather/internal/config"
	"cwa-weather/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
)

// stubCWA fakes the CWA datastore and counts the requests it receives.
type stubCWA struct {
	server *httptest.Server
	calls  atomic.Int32
	status int
	bodies map[string]string // dataset id -> response body
}

func newStubCWA(t *testing.T, status int, bodies map[string]string) *stubCWA {
	t.Helper()
	stub := &stubCWA{status: status, bodies: bodies}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)
		dataset := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = io.WriteString(w, stub.bodies[dataset])
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func testConfig(baseURL, apiKey string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 3000, GinMode: gin.TestMode},
		CWA: config.CWAConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Timeout: 5 * time.Second,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, baseURL, apiKey string) *App {
	t.Helper()
	app, err := NewApp(testConfig(baseURL, apiKey), testLogger())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details any             `json:"details"`
}

func doGet(t *testing.T, app *App, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: invalid JSON body %q: %v", path, rec.Body.String(), err)
	}
	return rec, env
}

func forecastPath(city string) string {
	return "/api/weather_36hr/" + url.PathEscape(city)
}

func hazardsPath(city string) string {
	return "/api/weather_hazards/" + url.PathEscape(city)
}

const taipeiForecastBody = `{
  "success": "true",
  "records": {
    "datasetDescription": "三十六小時天氣預報",
    "location": [{
      "locationName": "臺北市",
      "weatherElement": [
        {"elementName": "Wx", "time": [
          {"startTime": "S1", "endTime": "E1", "parameter": {"parameterName": "晴", "parameterValue": "1"}},
          {"startTime": "S2", "endTime": "E2", "parameter": {"parameterName": "雨", "parameterValue": "8"}}
        ]},
        {"elementName": "PoP", "time": [
          {"startTime": "S1", "endTime": "E1", "parameter": {"parameterName": "10", "parameterUnit": "百分比"}},
          {"startTime": "S2", "endTime": "E2", "parameter": {"parameterName": "80", "parameterUnit": "百分比"}}
        ]},
        {"elementName": "MinT", "time": [
          {"startTime": "S1", "endTime": "E1", "parameter": {"parameterName": "20", "parameterUnit": "C"}},
          {"startTime": "S2", "endTime": "E2", "parameter": {"parameterName": "18", "parameterUnit": "C"}}
        ]},
        {"elementName": "MaxT", "time": [
          {"startTime": "S1", "endTime": "E1", "parameter": {"parameterName": "28", "parameterUnit": "C"}},
          {"startTime": "S2", "endTime": "E2", "parameter": {"parameterName": "25", "parameterUnit": "C"}}
        ]}
      ]
    }]
  }
}`

const kaohsiungHazardsBody = `{
  "success": "true",
  "records": {
    "datasetDescription": "天氣特報-各別縣市地區目前之天氣警特報情形",
    "location": [{
      "locationName": "高雄市",
      "geocode": "64",
      "hazardConditions": {"hazards": [
        {"info": {"language": "zh", "phenomena": "大雨", "significance": "特報"}, "validTime": {"startTime": "T1", "endTime": "T2"}}
      ]}
    }]
  }
}`

func TestForecastEndpoint(t *testing.T) {
	stub := newStubCWA(t, http.StatusOK, map[string]string{"F-C0032-001": taipeiForecastBody})
	app := newTestApp(t, stub.server.URL, "KEY")

	rec, env := doGet(t, app, forecastPath("臺北市"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Error("success = false, want true")
	}

	var data weather.WeatherResult
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}

	want := weather.WeatherResult{
		City:       "臺北市",
		UpdateTime: "三十六小時天氣預報",
		Forecasts: []weather.ForecastRecord{
			{StartTime: "S1", EndTime: "E1", Weather: "晴", Rain: "10%", MinTemp: "20°C", MaxTemp: "28°C"},
			{StartTime: "S2", EndTime: "E2", Weather: "雨", Rain: "80%", MinTemp: "18°C", MaxTemp: "25°C"},
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if got := stub.calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}

func TestHazardsEndpoint(t *testing.T) {
	stub := newStubCWA(t, http.StatusOK, map[string]string{"W-C0033-001": kaohsiungHazardsBody})
	app := newTestApp(t, stub.server.URL, "KEY")

	rec, env := doGet(t, app, hazardsPath("高雄市"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var data weather.HazardResult
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}

	want := weather.HazardResult{
		City:    "高雄市",
		Hazards: []weather.HazardRecord{{Phenomena: "大雨", StartTime: "T1", EndTime: "T2"}},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestWeatherEndpoints_Errors(t *testing.T) {
	emptyRecords := `{"success":"true","records":{"datasetDescription":"x","location":[]}}`

	tests := []struct {
		name        string
		apiKey      string
		status      int
		body        string
		path        string
		wantStatus  int
		wantError   string
		wantMessage string
		wantCalls   int32
	}{
		{
			name:       "forecast missing api key",
			apiKey:     "",
			status:     http.StatusOK,
			body:       taipeiForecastBody,
			path:       forecastPath("臺北市"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "伺服器設定錯誤",
			wantCalls:  0,
		},
		{
			name:       "hazards missing api key",
			apiKey:     "",
			status:     http.StatusOK,
			body:       kaohsiungHazardsBody,
			path:       hazardsPath("高雄市"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "伺服器設定錯誤",
			wantCalls:  0,
		},
		{
			name:        "forecast empty city",
			apiKey:      "KEY",
			status:      http.StatusOK,
			path:        "/api/weather_36hr/",
			wantStatus:  http.StatusBadRequest,
			wantError:   "請提供縣市名稱",
			wantMessage: "路徑格式：/api/weather_36hr/:city，例如 /api/weather_36hr/臺北市",
			wantCalls:   0,
		},
		{
			name:       "hazards blank city",
			apiKey:     "KEY",
			status:     http.StatusOK,
			path:       "/api/weather_hazards/%20%20",
			wantStatus: http.StatusBadRequest,
			wantError:  "請提供縣市名稱",
			wantCalls:  0,
		},
		{
			name:        "forecast unknown city",
			apiKey:      "KEY",
			status:      http.StatusOK,
			body:        emptyRecords,
			path:        forecastPath("火星市"),
			wantStatus:  http.StatusNotFound,
			wantError:   "查無資料",
			wantMessage: "無法取得火星市天氣資料",
			wantCalls:   1,
		},
		{
			name:        "hazards unknown city",
			apiKey:      "KEY",
			status:      http.StatusOK,
			body:        emptyRecords,
			path:        hazardsPath("火星市"),
			wantStatus:  http.StatusNotFound,
			wantError:   "查無資料",
			wantMessage: "無法取得火星市天氣資料",
			wantCalls:   1,
		},
		{
			name:        "upstream 404 passes through",
			apiKey:      "KEY",
			status:      http.StatusNotFound,
			body:        `{"message":"X"}`,
			path:        forecastPath("臺北市"),
			wantStatus:  http.StatusNotFound,
			wantError:   "CWA API 錯誤",
			wantMessage: "X",
			wantCalls:   1,
		},
		{
			name:        "upstream 401 without message",
			apiKey:      "KEY",
			status:      http.StatusUnauthorized,
			body:        `{"success":"false"}`,
			path:        hazardsPath("高雄市"),
			wantStatus:  http.StatusUnauthorized,
			wantError:   "CWA API 錯誤",
			wantMessage: "無法取得警特報資料",
			wantCalls:   1,
		},
		{
			name:       "malformed hazard entry",
			apiKey:     "KEY",
			status:     http.StatusOK,
			body:       `{"records":{"location":[{"locationName":"高雄市","hazardConditions":{"hazards":[{"info":{"phenomena":"大雨"}}]}}]}}`,
			path:       hazardsPath("高雄市"),
			wantStatus: http.StatusBadGateway,
			wantError:  "CWA 資料格式錯誤",
			wantCalls:  1,
		},
		{
			name:        "undecodable upstream body",
			apiKey:      "KEY",
			status:      http.StatusOK,
			body:        "<html>",
			path:        forecastPath("臺北市"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "伺服器錯誤",
			wantMessage: "無法取得天氣資料，請稍後再試",
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStubCWA(t, tt.status, map[string]string{
				"F-C0032-001": tt.body,
				"W-C0033-001": tt.body,
			})
			app := newTestApp(t, stub.server.URL, tt.apiKey)

			rec, env := doGet(t, app, tt.path)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Success {
				t.Error("success = true on error")
			}
			if env.Error != tt.wantError {
				t.Errorf("error = %q, want %q", env.Error, tt.wantError)
			}
			if env.Message == "" {
				t.Error("message is empty")
			}
			if tt.wantMessage != "" && env.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMessage)
			}
			if got := stub.calls.Load(); got != tt.wantCalls {
				t.Errorf("upstream calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestUpstreamErrorDetails(t *testing.T) {
	stub := newStubCWA(t, http.StatusNotFound, map[string]string{"F-C0032-001": `{"message":"X","code":"404"}`})
	app := newTestApp(t, stub.server.URL, "KEY")

	_, env := doGet(t, app, forecastPath("臺北市"))

	want := map[string]any{"message": "X", "code": "404"}
	if diff := cmp.Diff(want, env.Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	app := newTestApp(t, baseURL, "KEY")

	rec, env := doGet(t, app, hazardsPath("高雄市"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if env.Error != "伺服器錯誤" || env.Message != "無法取得警特報資料，請稍後再試" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestHealthAndIndex(t *testing.T) {
	app := newTestApp(t, "http://cwa.invalid", "KEY")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid health body: %v", err)
	}
	if health.Status != "OK" {
		t.Errorf("status = %q, want OK", health.Status)
	}
	if _, err := time.Parse(time.RFC3339Nano, health.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", health.Timestamp, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	var index IndexResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &index); err != nil {
		t.Fatalf("invalid index body: %v", err)
	}
	if index.Endpoints.Weather36Hr.URL != "/api/weather_36hr/:city" {
		t.Errorf("weather_36hr url = %q", index.Endpoints.Weather36Hr.URL)
	}
	if index.Endpoints.Health != "/api/health" {
		t.Errorf("health = %q", index.Endpoints.Health)
	}
}

func TestNoRoute(t *testing.T) {
	app := newTestApp(t, "http://cwa.invalid", "KEY")

	rec, env := doGet(t, app, "/api/unknown")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if env.Error != "找不到此路徑" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestMiddleware(t *testing.T) {
	app := newTestApp(t, "http://cwa.invalid", "KEY")

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/weather_36hr/x", nil)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("request id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
			t.Errorf("%s = %q, want abc-123", requestIDHeader, got)
		}
	})

	t.Run("request id generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); len(got) != 36 {
			t.Errorf("%s = %q, want a uuid", requestIDHeader, got)
		}
	})
}

type panickingService struct{}

func (panickingService) GetForecast36Hour(ctx context.Context, city string) (*weather.WeatherResult, error) {
	panic("boom")
}

func (panickingService) GetHazards(ctx context.Context, city string) (*weather.HazardResult, error) {
	panic("boom")
}

func TestRecovery(t *testing.T) {
	app := newAppWithService(testConfig("http://cwa.invalid", "KEY"), testLogger(), panickingService{})

	rec, env := doGet(t, app, forecastPath("臺北市"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if env.Error != "伺服器錯誤" || env.Message != "boom" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestSwaggerDoc(t *testing.T) {
	app := newTestApp(t, "http://cwa.invalid", "KEY")

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/weather_36hr/{city}") {
		t.Error("swagger doc does not describe the forecast endpoint")
	}
}

func TestUpstreamStatus(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{http.StatusNotFound, http.StatusNotFound},
		{http.StatusUnauthorized, http.StatusUnauthorized},
		{http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{http.StatusNotModified, http.StatusBadGateway},
		{0, http.StatusBadGateway},
	}

	for _, tt := range tests {
		if got := upstreamStatus(tt.code); got != tt.want {
			t.Errorf("upstreamStatus(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
