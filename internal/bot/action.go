package bot

import "strings"

// Callback payload strings carried in inline buttons. The weather/forecast
// prefixes are followed by an exact location name.
const (
	callbackWeatherAll  = "weather_all"
	callbackForecastAll = "forecast_all"
	callbackListCities  = "list_cities"
	callbackCurrency    = "currency"
	callbackRates       = "currency_rates"
	callbackConvEURUAH  = "conv_eur_uah"
	callbackConvUAHEUR  = "conv_uah_eur"

	callbackWeatherPrefix  = "weather_"
	callbackForecastPrefix = "forecast_"
)

// ActionKind enumerates every intent the router understands. The set is
// closed: decoding produces exactly one kind or fails, and the router
// switches exhaustively over it.
type ActionKind int

const (
	ActionStart ActionKind = iota
	ActionHelp
	ActionWeatherAll
	ActionWeatherOne
	ActionForecastAll
	ActionForecastOne
	ActionListCities
	ActionCurrencyMenu
	ActionCurrencyConvert
	ActionRefreshRates
	ActionConvHintEURUAH
	ActionConvHintUAHEUR
)

// String returns the metric label for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionStart:
		return "start"
	case ActionHelp:
		return "help"
	case ActionWeatherAll:
		return "weather_all"
	case ActionWeatherOne:
		return "weather_one"
	case ActionForecastAll:
		return "forecast_all"
	case ActionForecastOne:
		return "forecast_one"
	case ActionListCities:
		return "list_cities"
	case ActionCurrencyMenu:
		return "currency_menu"
	case ActionCurrencyConvert:
		return "currency_convert"
	case ActionRefreshRates:
		return "refresh_rates"
	case ActionConvHintEURUAH:
		return "conv_hint_eur_uah"
	case ActionConvHintUAHEUR:
		return "conv_hint_uah_eur"
	default:
		return "unknown"
	}
}

// Action is one decoded intent. City carries the location argument for the
// single-city kinds; Args carries the raw argument tail for /currency.
type Action struct {
	Kind ActionKind
	City string
	Args string
}

// DecodeCommand maps a slash-command line to an Action. The first token is
// matched case-sensitively; anything unrecognized reports false.
func DecodeCommand(text string) (Action, bool) {
	text = strings.TrimSpace(text)
	cmd, args, _ := strings.Cut(text, " ")
	args = strings.TrimSpace(args)

	switch cmd {
	case "/start":
		return Action{Kind: ActionStart}, true
	case "/help":
		return Action{Kind: ActionHelp}, true
	case "/weather":
		return Action{Kind: ActionWeatherAll}, true
	case "/forecast":
		return Action{Kind: ActionForecastAll}, true
	case "/near":
		return Action{Kind: ActionListCities}, true
	case "/city":
		return Action{Kind: ActionWeatherOne, City: args}, true
	case "/currency":
		if args == "" {
			return Action{Kind: ActionCurrencyMenu}, true
		}
		return Action{Kind: ActionCurrencyConvert, Args: args}, true
	default:
		return Action{}, false
	}
}

// DecodeCallback maps an inline-button payload to an Action. Exact payloads
// are checked before the weather_/forecast_ name prefixes, so "weather_all"
// can never be read as a city named "all".
func DecodeCallback(data string) (Action, bool) {
	switch data {
	case callbackWeatherAll:
		return Action{Kind: ActionWeatherAll}, true
	case callbackForecastAll:
		return Action{Kind: ActionForecastAll}, true
	case callbackListCities:
		return Action{Kind: ActionListCities}, true
	case callbackCurrency:
		return Action{Kind: ActionCurrencyMenu}, true
	case callbackRates:
		return Action{Kind: ActionRefreshRates}, true
	case callbackConvEURUAH:
		return Action{Kind: ActionConvHintEURUAH}, true
	case callbackConvUAHEUR:
		return Action{Kind: ActionConvHintUAHEUR}, true
	}

	if name, ok := strings.CutPrefix(data, callbackWeatherPrefix); ok && name != "" {
		return Action{Kind: ActionWeatherOne, City: name}, true
	}
	if name, ok := strings.CutPrefix(data, callbackForecastPrefix); ok && name != "" {
		return Action{Kind: ActionForecastOne, City: name}, true
	}

	return Action{}, false
}
