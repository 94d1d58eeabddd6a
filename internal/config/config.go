package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all bot settings, populated from environment variables.
type Config struct {
	TelegramToken     string
	OpenWeatherAPIKey string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream HTTP client bounds.
	OpenWeatherTimeout time.Duration
	PrivatBankTimeout  time.Duration

	// Token-bucket limits for the OpenWeatherMap free tier.
	OpenWeatherRPS   float64
	OpenWeatherBurst int
}

// Load reads configuration from environment variables, applying defaults
// where unset. Missing credentials are a fatal startup condition.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	owmTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	pbTimeout, err := parseDuration("PRIVATBANK_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	rps, err := parseFloat("OPENWEATHER_RPS", 1.0)
	if err != nil {
		return nil, err
	}
	burst, err := parseInt("OPENWEATHER_BURST", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OpenWeatherTimeout: owmTimeout,
		PrivatBankTimeout:  pbTimeout,
		OpenWeatherRPS:     rps,
		OpenWeatherBurst:   burst,
	}

	if cfg.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
