package privatbank

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-currency-bot/internal/domain"
	"weather-currency-bot/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExchangeRate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[
			{"ccy":"USD","base_ccy":"UAH","buy":"41.10","sale":"41.60"},
			{"ccy":"EUR","base_ccy":"UAH","buy":"44.90","sale":"45.50"}
		]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.Equal(t, 45.5, rate.EURToUAH)
	assert.False(t, rate.Fallback)
}

func TestExchangeRate_APIError_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.Equal(t, domain.FallbackEURToUAH, rate.EURToUAH)
	assert.True(t, rate.Fallback)
}

func TestExchangeRate_TransportError_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.Equal(t, domain.FallbackEURToUAH, rate.EURToUAH)
	assert.True(t, rate.Fallback)
}

func TestExchangeRate_MissingEUR_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`[{"ccy":"USD","base_ccy":"UAH","buy":"41.10","sale":"41.60"}]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.True(t, rate.Fallback)
	assert.Equal(t, domain.FallbackEURToUAH, rate.EURToUAH)
}

func TestExchangeRate_MalformedQuote_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`[{"ccy":"EUR","base_ccy":"UAH","buy":"44.90","sale":"n/a"}]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.True(t, rate.Fallback)
}

func TestExchangeRate_NeverZeroOrNegative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`[{"ccy":"EUR","base_ccy":"UAH","buy":"0","sale":"-3"}]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	rate := testClient(srv.URL).ExchangeRate(context.Background())
	assert.Greater(t, rate.EURToUAH, 0.0)
	assert.True(t, rate.Fallback)
}
