package privatbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"weather-currency-bot/internal/domain"
	"weather-currency-bot/internal/observability"
)

const providerLabel = "privatbank"

// Client fetches the EUR cash rate from the PrivatBank public exchange feed.
// It never fails outwardly: any error substitutes the hardcoded fallback rate
// and marks the result, so the converter always has a positive rate to show.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a PrivatBank rate client with a bounded request timeout.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.privatbank.ua/p24api/pubinfo?json&exchange&coursid=5",
		metrics: metrics,
		logger:  logger,
	}
}

// ExchangeRate returns the current EUR sell rate, or the fallback on any
// failure. The fallback path logs and counts the substitution but callers
// see the same happy-path shape either way.
func (c *Client) ExchangeRate(ctx context.Context) domain.Rate {
	rate, err := c.fetch(ctx)
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		c.metrics.RateFallbacks.Inc()
		c.logger.Warn("exchange rate fetch failed, using fallback", "error", err, "fallback", domain.FallbackEURToUAH)
		return domain.FallbackRate()
	}
	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()
	return rate
}

func (c *Client) fetch(ctx context.Context) (domain.Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return domain.Rate{}, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.Rate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Rate{}, fmt.Errorf("privatbank API error: status %d", resp.StatusCode)
	}

	var quotes []quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return domain.Rate{}, fmt.Errorf("decode response: %w", err)
	}

	for _, q := range quotes {
		if q.Ccy != "EUR" {
			continue
		}
		sale, err := strconv.ParseFloat(q.Sale, 64)
		if err != nil || sale <= 0 {
			return domain.Rate{}, fmt.Errorf("unusable EUR sale quote %q", q.Sale)
		}
		return domain.Rate{EURToUAH: sale}, nil
	}

	return domain.Rate{}, errors.New("no EUR entry in exchange feed")
}

// PrivatBank feed entry: string-encoded buy/sell quotes per currency.
type quote struct {
	Ccy     string `json:"ccy"`
	BaseCcy string `json:"base_ccy"`
	Buy     string `json:"buy"`
	Sale    string `json:"sale"`
}
