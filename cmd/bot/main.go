package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	httpadapter "weather-currency-bot/internal/adapter/http"
	"weather-currency-bot/internal/adapter/openweather"
	"weather-currency-bot/internal/adapter/privatbank"
	"weather-currency-bot/internal/bot"
	"weather-currency-bot/internal/config"
	"weather-currency-bot/internal/domain"
	"weather-currency-bot/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Error("telegram authorization failed", "error", err)
		os.Exit(1)
	}

	weatherClient := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherTimeout, metrics, logger)
	weather := openweather.NewRateLimited(weatherClient, cfg.OpenWeatherRPS, cfg.OpenWeatherBurst)
	rates := privatbank.NewClient(cfg.PrivatBankTimeout, metrics, logger)

	locations := domain.DefaultLocations()
	router := bot.NewRouter(api, weather, rates, locations, logger, metrics)
	b := bot.New(api, router, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, b, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := b.Run(ctx); err != nil {
			logger.Error("bot loop error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
