package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"weather-currency-bot/internal/domain"
	"weather-currency-bot/internal/observability"
)

const providerLabel = "openweather"

// Client fetches current conditions and forecasts from the OpenWeatherMap
// "data/2.5" API. Descriptions come back localized (lang=ru).
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	lang       string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client with a bounded request timeout.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org/data/2.5",
		lang:    "ru",
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentWeather fetches the current conditions for one location. Any
// transport error or non-200 status is returned as an error; callers treat
// all failures uniformly.
func (c *Client) CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error) {
	var resp currentResponse
	if err := c.get(ctx, "/weather", loc, &resp); err != nil {
		return domain.CurrentWeather{}, err
	}

	if len(resp.Weather) == 0 {
		return domain.CurrentWeather{}, fmt.Errorf("weather for %s: empty conditions list", loc.Name)
	}

	return domain.CurrentWeather{
		LocationName: loc.Name, // keep the configured name, not the API's
		Temp:         resp.Main.Temp,
		FeelsLike:    resp.Main.FeelsLike,
		Humidity:     resp.Main.Humidity,
		Pressure:     resp.Main.Pressure,
		WindSpeed:    resp.Wind.Speed,
		Description:  resp.Weather[0].Description,
		Icon:         resp.Weather[0].Icon,
		ObservedAt:   time.Unix(resp.Dt, 0),
	}, nil
}

// Forecast fetches the 3-hourly forecast series and reduces it to at most
// three days: for each calendar day the sample taken at local noon, in
// upstream chronological order. The local hour is computed from the
// response's UTC shift rather than matched against formatted text.
func (c *Client) Forecast(ctx context.Context, loc domain.Location) ([]domain.ForecastDay, error) {
	var resp forecastResponse
	if err := c.get(ctx, "/forecast", loc, &resp); err != nil {
		return nil, err
	}

	offset := time.Duration(resp.City.Timezone) * time.Second

	var days []domain.ForecastDay
	seen := make(map[string]bool)
	for _, item := range resp.List {
		local := time.Unix(item.Dt, 0).UTC().Add(offset)
		if local.Hour() != 12 {
			continue
		}
		date := local.Format("2006-01-02")
		if seen[date] {
			continue
		}
		seen[date] = true

		if len(item.Weather) == 0 {
			continue
		}
		days = append(days, domain.ForecastDay{
			Date:        date,
			Temp:        item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})
		if len(days) == 3 {
			break
		}
	}

	return days, nil
}

func (c *Client) get(ctx context.Context, path string, loc domain.Location, out any) error {
	params := url.Values{
		"lat":   {fmt.Sprintf("%f", loc.Lat)},
		"lon":   {fmt.Sprintf("%f", loc.Lon)},
		"appid": {c.apiKey},
		"units": {"metric"},
		"lang":  {c.lang},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return fmt.Errorf("weather request for %s: %w", loc.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		c.logger.Warn("openweather API error", "path", path, "location", loc.Name, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("openweather API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()
	return nil
}

// OpenWeatherMap API response types.

type conditions struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type currentResponse struct {
	Main    mainBlock    `json:"main"`
	Weather []conditions `json:"weather"`
	Wind    windBlock    `json:"wind"`
	Dt      int64        `json:"dt"`
}

type forecastResponse struct {
	City struct {
		Timezone int `json:"timezone"` // shift in seconds from UTC
	} `json:"city"`
	List []struct {
		Dt      int64        `json:"dt"`
		Main    mainBlock    `json:"main"`
		Weather []conditions `json:"weather"`
		Wind    windBlock    `json:"wind"`
	} `json:"list"`
}
