package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "123456:test-token"
	testAPIKey = "owm-test-key"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testToken, cfg.TelegramToken)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 10*time.Second, cfg.PrivatBankTimeout)
	assert.Equal(t, 1.0, cfg.OpenWeatherRPS)
	assert.Equal(t, 5, cfg.OpenWeatherBurst)
}

func TestLoad_CustomEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("OPENWEATHER_TIMEOUT", "5s")
	t.Setenv("PRIVATBANK_TIMEOUT", "3s")
	t.Setenv("OPENWEATHER_RPS", "0.4")
	t.Setenv("OPENWEATHER_BURST", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 3*time.Second, cfg.PrivatBankTimeout)
	assert.Equal(t, 0.4, cfg.OpenWeatherRPS)
	assert.Equal(t, 3, cfg.OpenWeatherBurst)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENWEATHER_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_TIMEOUT")
}

func TestLoad_NegativeTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidRPS(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENWEATHER_RPS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_RPS")
}
