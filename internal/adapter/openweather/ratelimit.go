package openweather

import (
	"context"
	"fmt"

	"weather-currency-bot/internal/domain"

	"golang.org/x/time/rate"
)

// Provider is the narrow surface the rate limiter wraps.
type Provider interface {
	CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error)
	Forecast(ctx context.Context, loc domain.Location) ([]domain.ForecastDay, error)
}

// RateLimited wraps a Provider with a token-bucket limiter so iterating all
// configured towns stays inside the OpenWeatherMap free-tier quota.
type RateLimited struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimited creates the decorator. rps may be fractional; burst is the
// maximum number of immediate requests.
func NewRateLimited(inner Provider, rps float64, burst int) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// CurrentWeather waits for limiter permission, then forwards.
func (r *RateLimited) CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return domain.CurrentWeather{}, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.inner.CurrentWeather(ctx, loc)
}

// Forecast waits for limiter permission, then forwards.
func (r *RateLimited) Forecast(ctx context.Context, loc domain.Location) ([]domain.ForecastDay, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.inner.Forecast(ctx, loc)
}

var _ Provider = (*RateLimited)(nil)
var _ Provider = (*Client)(nil)
