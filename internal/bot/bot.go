package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weather-currency-bot/internal/observability"
)

// Bot owns the long-poll loop: it pulls updates off the Telegram API and
// hands each one to the router. Updates are handled one at a time, so
// commands from the same chat can never overlap.
type Bot struct {
	api     *tgbotapi.BotAPI
	router  *Router
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates the bot around an authorized API client and a wired router.
func New(api *tgbotapi.BotAPI, router *Router, logger *slog.Logger, metrics *observability.Metrics) *Bot {
	return &Bot{
		api:     api,
		router:  router,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once the long-poll loop is receiving updates.
func (b *Bot) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("bot is not polling yet")
	}
	return nil
}

// Run polls for updates until the context is cancelled. Handler failures
// never reach this loop; they end in a user-visible reply or a logged
// fallback inside the router.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot started", "username", b.api.Self.UserName)
	b.ready.Store(true)
	b.metrics.BotRunning.Set(1)
	defer b.metrics.BotRunning.Set(0)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopping", "reason", ctx.Err())
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.router.HandleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.router.HandleCallback(ctx, update.CallbackQuery)
	}
}
