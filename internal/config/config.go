package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCWABaseURL is the root of the CWA open-data REST API.
const DefaultCWABaseURL = "https://opendata.cwa.gov.tw/api"

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
	CWA    CWAConfig
	Proxy  ProxyConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Environment string
}

// CWAConfig holds settings for the upstream open-data API
type CWAConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// ProxyConfig describes an optional forward proxy for outbound calls
type ProxyConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// envBindings maps config keys to the environment variables that may set them.
var envBindings = map[string][]string{
	"server.port":     {"PORT"},
	"server.ginmode":  {"GIN_MODE"},
	"log.level":       {"LOG_LEVEL"},
	"log.format":      {"LOG_FORMAT"},
	"app.environment": {"APP_ENV", "NODE_ENV"},
	"cwa.apikey":      {"CWA_API_KEY"},
	"cwa.baseurl":     {"CWA_API_BASE_URL"},
	"cwa.timeout":     {"CWA_TIMEOUT"},
	"proxy.enabled":   {"ENABLE_PROXY"},
	"proxy.host":      {"PROXY_HOST"},
	"proxy.port":      {"PROXY_PORT"},
}

// Load reads configuration from .env, an optional config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.environment", "development")
	v.SetDefault("cwa.apikey", "")
	v.SetDefault("cwa.baseurl", DefaultCWABaseURL)
	v.SetDefault("cwa.timeout", 10*time.Second)
	v.SetDefault("proxy.enabled", false)
	v.SetDefault("proxy.host", "")
	v.SetDefault("proxy.port", 0)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.CWA.APIKey = strings.TrimSpace(cfg.CWA.APIKey)
	cfg.CWA.BaseURL = strings.TrimRight(cfg.CWA.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that would otherwise fail at request time.
// A missing API key is not an error here; requests report it instead.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.CWA.BaseURL == "" {
		return errors.New("cwa base URL is required")
	}
	if c.CWA.Timeout <= 0 {
		return fmt.Errorf("invalid cwa timeout: %s", c.CWA.Timeout)
	}
	if c.Proxy.Enabled {
		if strings.TrimSpace(c.Proxy.Host) == "" {
			return errors.New("PROXY_HOST is required when ENABLE_PROXY is true")
		}
		if c.Proxy.Port <= 0 || c.Proxy.Port > 65535 {
			return fmt.Errorf("invalid PROXY_PORT: %d", c.Proxy.Port)
		}
	}
	return nil
}

// HasAPIKey reports whether a CWA API key is configured
func (c *Config) HasAPIKey() bool {
	return c.CWA.APIKey != ""
}

// ProxyURL returns the forward proxy address, or "" when the proxy is disabled
func (c *Config) ProxyURL() string {
	if !c.Proxy.Enabled {
		return ""
	}
	return "http://" + net.JoinHostPort(c.Proxy.Host, strconv.Itoa(c.Proxy.Port))
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(c.Log.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
