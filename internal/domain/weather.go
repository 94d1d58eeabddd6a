package domain

import "time"

// CurrentWeather is one observation for one location. It exists only for the
// duration of a single reply and is never persisted.
type CurrentWeather struct {
	LocationName string
	Temp         float64 // °C
	FeelsLike    float64 // °C
	Humidity     int     // percent
	Pressure     int     // hPa
	WindSpeed    float64 // m/s
	Description  string
	Icon         string // OpenWeatherMap icon code, e.g. "04d"
	ObservedAt   time.Time
}

// ForecastDay is the midday sample for one calendar day.
// Date keeps the upstream "YYYY-MM-DD" form; the formatter falls back to the
// raw month-day substring when it cannot parse it.
type ForecastDay struct {
	Date        string
	Temp        float64 // °C
	FeelsLike   float64 // °C
	Description string
	Icon        string
	Humidity    int     // percent
	WindSpeed   float64 // m/s
}
