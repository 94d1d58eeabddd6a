package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weather-currency-bot/internal/domain"
)

// Keyboards are built as pure data from the location list and the fixed
// callback payloads; nothing here touches the network.

// MainKeyboard is the four-entry menu attached to /start and /help replies.
func MainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌤️ Погода во всех городах", callbackWeatherAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Прогноз на 3 дня", callbackForecastAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💱 Конвертер валют", callbackCurrency),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📍 Список городов", callbackListCities),
		),
	)
}

// CurrencyKeyboard offers the two conversion directions and a rate refresh.
func CurrencyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("€ EUR → ₴ UAH", callbackConvEURUAH),
			tgbotapi.NewInlineKeyboardButtonData("₴ UAH → € EUR", callbackConvUAHEUR),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить курс", callbackRates),
		),
	)
}

// CitiesKeyboard lays the towns out two per row, wrapping as needed.
func CitiesKeyboard(locations []domain.Location) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, loc := range locations {
		btn := tgbotapi.NewInlineKeyboardButtonData(loc.Name, callbackWeatherPrefix+loc.Name)
		if i%2 == 0 {
			rows = append(rows, []tgbotapi.InlineKeyboardButton{btn})
		} else {
			rows[len(rows)-1] = append(rows[len(rows)-1], btn)
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// CityFollowupKeyboard is attached to a single-city weather reply: get the
// forecast, or refresh the reading.
func CityFollowupKeyboard(cityName string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Прогноз на 3 дня", callbackForecastPrefix+cityName),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", callbackWeatherPrefix+cityName),
		),
	)
}
