package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"weather-currency-bot/internal/domain"
)

// fallbackEmoji is shown for icon codes missing from the table.
const fallbackEmoji = "🌡️"

// weatherEmojis maps OpenWeatherMap icon codes (day/night variants) to glyphs.
var weatherEmojis = map[string]string{
	"01d": "☀️", "01n": "🌙",
	"02d": "⛅", "02n": "⛅",
	"03d": "☁️", "03n": "☁️",
	"04d": "☁️", "04n": "☁️",
	"09d": "🌧️", "09n": "🌧️",
	"10d": "🌦️", "10n": "🌦️",
	"11d": "⛈️", "11n": "⛈️",
	"13d": "❄️", "13n": "❄️",
	"50d": "🌫️", "50n": "🌫️",
}

var weekdaysRu = map[time.Weekday]string{
	time.Monday:    "Пн",
	time.Tuesday:   "Вт",
	time.Wednesday: "Ср",
	time.Thursday:  "Чт",
	time.Friday:    "Пт",
	time.Saturday:  "Сб",
	time.Sunday:    "Вс",
}

func emojiFor(icon string) string {
	if e, ok := weatherEmojis[icon]; ok {
		return e
	}
	return fallbackEmoji
}

// dayLabel renders a "2006-01-02" date as a short Russian weekday name,
// falling back to the raw month-day substring when the date does not parse.
func dayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		if len(date) > 5 {
			return date[5:] // MM-DD
		}
		return date
	}
	return weekdaysRu[t.Weekday()]
}

// capitalize upper-cases the first letter only, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func roundTemp(v float64) int {
	return int(math.Round(v))
}

// formatWind keeps the upstream precision: 3.6 stays "3.6", 4 stays "4".
func formatWind(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatWeather renders one current-weather reading as a Markdown block.
func FormatWeather(w domain.CurrentWeather) string {
	return fmt.Sprintf(
		"%s *Погода в городе %s*\n\n"+
			"🌡️ Температура: %d°C (ощущается как %d°C)\n"+
			"📝 Описание: %s\n"+
			"💧 Влажность: %d%%\n"+
			"🔽 Давление: %d гПа\n"+
			"💨 Ветер: %s м/с\n"+
			"🕒 Обновлено: %s",
		emojiFor(w.Icon), w.LocationName,
		roundTemp(w.Temp), roundTemp(w.FeelsLike),
		capitalize(w.Description),
		w.Humidity,
		w.Pressure,
		formatWind(w.WindSpeed),
		w.ObservedAt.Format("15:04"),
	)
}

// FormatForecast renders a 3-day forecast bundle for one city.
func FormatForecast(cityName string, days []domain.ForecastDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Прогноз на 3 дня: %s*\n\n", cityName)

	for _, d := range days {
		fmt.Fprintf(&b,
			"*%s* %s\n"+
				"🌡️ %d°C (ощущается как %d°C)\n"+
				"📝 %s\n"+
				"💧 %d%% | 💨 %s м/с\n\n",
			dayLabel(d.Date), emojiFor(d.Icon),
			roundTemp(d.Temp), roundTemp(d.FeelsLike),
			capitalize(d.Description),
			d.Humidity, formatWind(d.WindSpeed),
		)
	}

	return strings.TrimSpace(b.String())
}

// FormatRatesMenu renders the currency menu: both directions plus usage
// examples. Fallback rates produce the same happy-path text.
func FormatRatesMenu(r domain.Rate) string {
	return fmt.Sprintf(
		"💱 *Курс валют (ПриватБанк)*\n\n"+
			"🇪🇺 1 EUR = %.2f ₴ UAH\n"+
			"🇺🇦 1 UAH = %.4f € EUR\n\n"+
			"*Примеры:*\n"+
			"/currency 100 EUR - конвертировать 100 евро в гривны\n"+
			"/currency 1000 UAH - конвертировать 1000 гривен в евро\n\n"+
			"Или используйте кнопки ниже:",
		r.EURToUAH, 1/r.EURToUAH,
	)
}

// FormatRatesRefreshed renders the in-place rate refresh with a timestamp.
func FormatRatesRefreshed(r domain.Rate, at time.Time) string {
	return fmt.Sprintf(
		"💱 *Курс валют (ПриватБанк)*\n\n"+
			"🇪🇺 1 EUR = %.2f ₴ UAH\n"+
			"🇺🇦 1 UAH = %.4f € EUR\n\n"+
			"_Обновлено: %s_",
		r.EURToUAH, 1/r.EURToUAH, at.Format("15:04"),
	)
}

// FormatConversion renders a completed conversion with the rate applied.
// The UAH→EUR per-unit rate is small, so it gets four decimals.
func FormatConversion(amount float64, from domain.Currency, r domain.Rate) string {
	converted, rate := r.Convert(amount, from)
	if from == domain.EUR {
		return fmt.Sprintf(
			"💱 *Конвертация*\n\n"+
				"%.2f € EUR = %.2f ₴ UAH\n\n"+
				"Курс: 1 EUR = %.2f UAH",
			amount, converted, rate,
		)
	}
	return fmt.Sprintf(
		"💱 *Конвертация*\n\n"+
			"%.2f ₴ UAH = %.2f € EUR\n\n"+
			"Курс: 1 UAH = %.4f EUR",
		amount, converted, rate,
	)
}

// FormatCityList renders the numbered town list.
func FormatCityList(locations []domain.Location) string {
	var b strings.Builder
	b.WriteString("📍 *Доступные города:*\n\n")
	for i, loc := range locations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, loc.Name)
	}
	fmt.Fprintf(&b, "\nВсего: %d города", len(locations))
	return b.String()
}

// FormatGreeting renders the /start reply.
func FormatGreeting(locations []domain.Location) string {
	names := make([]string, len(locations))
	for i, loc := range locations {
		names[i] = loc.Name
	}
	return fmt.Sprintf(
		"👋 Привет! Я бот для показа погоды и конвертации валют.\n\n"+
			"📍 Города: %s\n\n"+
			"*Команды:*\n"+
			"/weather - погода во всех городах\n"+
			"/forecast - прогноз на 3 дня\n"+
			"/currency - конвертер валют (EUR ↔ UAH)\n"+
			"/city <название> - погода в городе\n"+
			"/help - справка\n\n"+
			"Или используйте кнопки ниже:",
		strings.Join(names, ", "),
	)
}

// FormatHelp renders the /help reply.
func FormatHelp(locations []domain.Location) string {
	var list strings.Builder
	for _, loc := range locations {
		fmt.Fprintf(&list, "• %s\n", loc.Name)
	}
	return fmt.Sprintf(
		"📖 *Справка*\n\n"+
			"Этот бот показывает погоду, прогноз и конвертирует валюты.\n\n"+
			"*Города (%d шт.):*\n"+
			"%s\n"+
			"*Команды:*\n"+
			"/weather - погода во всех городах\n"+
			"/forecast - прогноз на 3 дня для всех городов\n"+
			"/currency - конвертер валют (EUR ↔ UAH)\n"+
			"/city <название> - погода в конкретном городе\n"+
			"/near - список городов\n\n"+
			"Или используйте кнопки под сообщениями.",
		len(locations), list.String(),
	)
}

// Fixed user-facing lines.
const (
	msgCurrencyUsage = "❌ Неверный формат.\n\nПримеры:\n/currency 100 EUR\n/currency 1000 UAH"

	msgCurrencyUnsupported = "❌ Поддерживаются только EUR и UAH.\n\nПримеры:\n/currency 100 EUR\n/currency 1000 UAH"

	msgCityMissing = "❌ Укажите название города.\nПример: /city Кёльн"

	msgConvHintEURUAH = "💱 *EUR → UAH*\n\nВведите сумму в евро:\nПример: `/currency 100 EUR`"

	msgConvHintUAHEUR = "💱 *UAH → EUR*\n\nВведите сумму в гривнах:\nПример: `/currency 1000 UAH`"
)

func msgCityNotFound(query string) string {
	return fmt.Sprintf("❌ Город '%s' не найден.\nИспользуйте команду /near чтобы увидеть список доступных городов.", query)
}

func msgWeatherFailed(cityName string) string {
	return fmt.Sprintf("❌ Не удалось получить погоду для города %s", cityName)
}

func msgForecastFailed(cityName string) string {
	return fmt.Sprintf("❌ Не удалось получить прогноз для города %s", cityName)
}

func msgLoadingWeather(n int) string {
	return fmt.Sprintf("🔄 Загружаю погоду для %d городов...", n)
}

func msgLoadingForecast(n int) string {
	return fmt.Sprintf("🔄 Загружаю прогноз на 3 дня для %d городов...", n)
}

func msgLoadingCity(cityName string) string {
	return fmt.Sprintf("🔄 Загружаю погоду для города %s...", cityName)
}

func msgLoadingCityForecast(cityName string) string {
	return fmt.Sprintf("🔄 Загружаю прогноз на 3 дня для города %s...", cityName)
}
