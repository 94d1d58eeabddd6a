package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the bot.
type Metrics struct {
	UpdatesHandled *prometheus.CounterVec // labels: action
	UpdatesDropped prometheus.Counter
	BotRunning     prometheus.Gauge

	// Upstream provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider={openweather,privatbank}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider
	RateFallbacks    prometheus.Counter
}

// NewMetrics creates and registers all bot metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpdatesHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "updates_handled_total",
			Help:      "Inbound updates handled, by decoded action.",
		}, []string{"action"}),
		UpdatesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "updates_dropped_total",
			Help:      "Inbound updates that decoded to no known action.",
		}),
		BotRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_bot",
			Name:      "running",
			Help:      "1 while the long-poll loop is active, 0 after shutdown.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "provider_requests_total",
			Help:      "Upstream API requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_bot",
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		RateFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bot",
			Name:      "rate_fallbacks_total",
			Help:      "Times the hardcoded exchange rate was substituted for a live quote.",
		}),
	}

	prometheus.MustRegister(
		m.UpdatesHandled,
		m.UpdatesDropped,
		m.BotRunning,
		m.ProviderRequests,
		m.ProviderDuration,
		m.RateFallbacks,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpdatesHandled:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_bot", Name: "updates_handled_total"}, []string{"action"}),
		UpdatesDropped:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bot", Name: "updates_dropped_total"}),
		BotRunning:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_bot", Name: "running"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_bot", Name: "provider_requests_total"}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_bot", Name: "provider_request_duration_seconds"}, []string{"provider"}),
		RateFallbacks:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bot", Name: "rate_fallbacks_total"}),
	}
}
