package bot

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weather-currency-bot/internal/domain"
	"weather-currency-bot/internal/observability"
)

// Sender is the slice of the Telegram API the router needs. *tgbotapi.BotAPI
// satisfies it; tests substitute a fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// WeatherProvider fetches current conditions and forecasts.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error)
	Forecast(ctx context.Context, loc domain.Location) ([]domain.ForecastDay, error)
}

// RateProvider fetches the EUR/UAH rate. It never fails: provider trouble
// surfaces as a marked fallback rate, not an error.
type RateProvider interface {
	ExchangeRate(ctx context.Context) domain.Rate
}

// Router maps one inbound update to one Action and runs it to completion.
// Provider calls are sequential; a failed fetch for one town produces an
// apology for that town only and the loop continues. No failure escapes a
// handler.
type Router struct {
	sender    Sender
	weather   WeatherProvider
	rates     RateProvider
	locations []domain.Location
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewRouter wires the router. The location list is immutable and shared.
func NewRouter(
	sender Sender,
	weather WeatherProvider,
	rates RateProvider,
	locations []domain.Location,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		sender:    sender,
		weather:   weather,
		rates:     rates,
		locations: locations,
		logger:    logger,
		metrics:   metrics,
	}
}

// HandleMessage dispatches a slash command. Non-command chatter is ignored.
func (r *Router) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	action, ok := DecodeCommand(msg.Text)
	if !ok {
		r.metrics.UpdatesDropped.Inc()
		return
	}
	r.metrics.UpdatesHandled.WithLabelValues(action.Kind.String()).Inc()
	chatID := msg.Chat.ID

	switch action.Kind {
	case ActionStart:
		r.send(chatID, FormatGreeting(r.locations), keyboard(MainKeyboard()))
	case ActionHelp:
		r.send(chatID, FormatHelp(r.locations), keyboard(MainKeyboard()))
	case ActionWeatherAll:
		r.send(chatID, msgLoadingWeather(len(r.locations)), nil)
		r.weatherAll(ctx, chatID)
	case ActionForecastAll:
		r.send(chatID, msgLoadingForecast(len(r.locations)), nil)
		r.forecastAll(ctx, chatID)
	case ActionListCities:
		r.send(chatID, FormatCityList(r.locations), keyboard(CitiesKeyboard(r.locations)))
	case ActionWeatherOne:
		r.cityWeather(ctx, chatID, action.City)
	case ActionCurrencyMenu:
		rate := r.rates.ExchangeRate(ctx)
		r.send(chatID, FormatRatesMenu(rate), keyboard(CurrencyKeyboard()))
	case ActionCurrencyConvert:
		r.convert(ctx, chatID, action.Args)
	default:
		// Remaining kinds arrive only as button presses.
		r.metrics.UpdatesDropped.Inc()
	}
}

// HandleCallback dispatches a button press. The callback query is always
// answered so the client's pending indicator clears, fetch outcome aside.
func (r *Router) HandleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	defer r.ack(cb.ID)

	action, ok := DecodeCallback(cb.Data)
	if !ok || cb.Message == nil {
		r.metrics.UpdatesDropped.Inc()
		return
	}
	r.metrics.UpdatesHandled.WithLabelValues(action.Kind.String()).Inc()
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch action.Kind {
	case ActionWeatherAll:
		r.edit(chatID, messageID, msgLoadingWeather(len(r.locations)), keyboard(MainKeyboard()))
		r.weatherAll(ctx, chatID)
	case ActionForecastAll:
		r.edit(chatID, messageID, msgLoadingForecast(len(r.locations)), keyboard(MainKeyboard()))
		r.forecastAll(ctx, chatID)
	case ActionListCities:
		r.edit(chatID, messageID, FormatCityList(r.locations), keyboard(CitiesKeyboard(r.locations)))
	case ActionWeatherOne:
		r.send(chatID, msgLoadingCity(action.City), nil)
		r.cityWeather(ctx, chatID, action.City)
	case ActionForecastOne:
		r.send(chatID, msgLoadingCityForecast(action.City), nil)
		r.cityForecast(ctx, chatID, action.City)
	case ActionCurrencyMenu:
		rate := r.rates.ExchangeRate(ctx)
		r.send(chatID, FormatRatesMenu(rate), keyboard(CurrencyKeyboard()))
	case ActionRefreshRates:
		rate := r.rates.ExchangeRate(ctx)
		r.edit(chatID, messageID, FormatRatesRefreshed(rate, domain.Now()), keyboard(CurrencyKeyboard()))
	case ActionConvHintEURUAH:
		r.send(chatID, msgConvHintEURUAH, nil)
	case ActionConvHintUAHEUR:
		r.send(chatID, msgConvHintUAHEUR, nil)
	default:
		r.metrics.UpdatesDropped.Inc()
	}
}

// weatherAll emits one reply per configured town, in list order. A failed
// fetch yields an apology for that town and the loop moves on.
func (r *Router) weatherAll(ctx context.Context, chatID int64) {
	for _, loc := range r.locations {
		w, err := r.weather.CurrentWeather(ctx, loc)
		if err != nil {
			r.logger.Warn("weather fetch failed", "location", loc.Name, "error", err)
			r.send(chatID, msgWeatherFailed(loc.Name), nil)
			continue
		}
		r.send(chatID, FormatWeather(w), keyboard(CityFollowupKeyboard(loc.Name)))
	}
}

func (r *Router) forecastAll(ctx context.Context, chatID int64) {
	for _, loc := range r.locations {
		days, err := r.weather.Forecast(ctx, loc)
		if err != nil {
			r.logger.Warn("forecast fetch failed", "location", loc.Name, "error", err)
			r.send(chatID, msgForecastFailed(loc.Name), nil)
			continue
		}
		r.send(chatID, FormatForecast(loc.Name, days), nil)
	}
}

// cityWeather resolves a free-text query (substring, case-insensitive) and
// replies with the reading plus the forecast/refresh follow-up. A missing
// argument, an unmatched query, and a failed fetch are three distinct
// replies; only the last one ever touches the provider.
func (r *Router) cityWeather(ctx context.Context, chatID int64, query string) {
	if strings.TrimSpace(query) == "" {
		r.send(chatID, msgCityMissing, nil)
		return
	}
	loc, ok := domain.FindByQuery(r.locations, query)
	if !ok {
		r.send(chatID, msgCityNotFound(query), nil)
		return
	}
	w, err := r.weather.CurrentWeather(ctx, loc)
	if err != nil {
		r.logger.Warn("weather fetch failed", "location", loc.Name, "error", err)
		r.send(chatID, msgWeatherFailed(loc.Name), nil)
		return
	}
	r.send(chatID, FormatWeather(w), keyboard(CityFollowupKeyboard(loc.Name)))
}

// cityForecast resolves an exact name from a button payload.
func (r *Router) cityForecast(ctx context.Context, chatID int64, name string) {
	loc, ok := domain.FindByName(r.locations, name)
	if !ok {
		r.send(chatID, msgCityNotFound(name), nil)
		return
	}
	days, err := r.weather.Forecast(ctx, loc)
	if err != nil {
		r.logger.Warn("forecast fetch failed", "location", loc.Name, "error", err)
		r.send(chatID, msgForecastFailed(loc.Name), nil)
		return
	}
	r.send(chatID, FormatForecast(loc.Name, days), nil)
}

// convert parses "<amount> [EUR|UAH]" and replies with the conversion.
// Malformed amounts and unsupported currency tokens reply with usage text
// before any rate fetch happens.
func (r *Router) convert(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		r.send(chatID, msgCurrencyUsage, nil)
		return
	}

	amount, err := domain.ParseAmount(fields[0])
	if err != nil {
		r.send(chatID, msgCurrencyUsage, nil)
		return
	}

	var from domain.Currency
	if len(fields) > 1 {
		cur, ok := domain.ParseCurrency(fields[1])
		if !ok {
			r.send(chatID, msgCurrencyUnsupported, nil)
			return
		}
		from = cur
	} else {
		from = domain.InferCurrency(amount)
	}

	rate := r.rates.ExchangeRate(ctx)
	r.send(chatID, FormatConversion(amount, from, rate), nil)
}

// keyboard adapts a markup value to the optional pointer send/edit take.
func keyboard(kb tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &kb
}

func (r *Router) send(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := r.sender.Send(msg); err != nil {
		r.logger.Error("send message failed", "chat_id", chatID, "error", err)
	}
}

func (r *Router) edit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = kb
	if _, err := r.sender.Send(edit); err != nil {
		r.logger.Error("edit message failed", "chat_id", chatID, "message_id", messageID, "error", err)
	}
}

func (r *Router) ack(callbackID string) {
	if _, err := r.sender.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		r.logger.Warn("answer callback failed", "error", err)
	}
}
