package domain_test

import (
	"math"
	"testing"

	"weather-currency-bot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate_Convert(t *testing.T) {
	r := domain.Rate{EURToUAH: 44.5}

	converted, rate := r.Convert(100, domain.EUR)
	assert.InDelta(t, 4450.0, converted, 1e-9)
	assert.InDelta(t, 44.5, rate, 1e-9)

	converted, rate = r.Convert(4450, domain.UAH)
	assert.InDelta(t, 100.0, converted, 1e-9)
	assert.InDelta(t, 1/44.5, rate, 1e-9)
}

func TestRate_Convert_InverseConsistent(t *testing.T) {
	r := domain.Rate{EURToUAH: 43.87}

	for _, amount := range []float64{0.01, 1, 99.99, 100, 1234.56} {
		uah, _ := r.Convert(amount, domain.EUR)
		back, _ := r.Convert(uah, domain.UAH)
		assert.True(t, math.Abs(back-amount) < 1e-9, "amount %v round-tripped to %v", amount, back)
	}
}

func TestFallbackRate(t *testing.T) {
	r := domain.FallbackRate()
	assert.Equal(t, 44.5, r.EURToUAH)
	assert.True(t, r.Fallback)
	assert.Greater(t, r.EURToUAH, 0.0)
}

func TestParseCurrency(t *testing.T) {
	for _, token := range []string{"EUR", "eur", " Eur "} {
		c, ok := domain.ParseCurrency(token)
		require.True(t, ok, "token %q", token)
		assert.Equal(t, domain.EUR, c)
	}

	c, ok := domain.ParseCurrency("uah")
	require.True(t, ok)
	assert.Equal(t, domain.UAH, c)

	for _, token := range []string{"USD", "", "₴"} {
		_, ok := domain.ParseCurrency(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestInferCurrency(t *testing.T) {
	assert.Equal(t, domain.UAH, domain.InferCurrency(1000))
	assert.Equal(t, domain.UAH, domain.InferCurrency(100))
	assert.Equal(t, domain.EUR, domain.InferCurrency(99.99))
	assert.Equal(t, domain.EUR, domain.InferCurrency(50))
}

func TestParseAmount(t *testing.T) {
	v, err := domain.ParseAmount("12,5")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 1e-9)

	v, err = domain.ParseAmount("100")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)

	_, err = domain.ParseAmount("abc")
	assert.Error(t, err)

	_, err = domain.ParseAmount("")
	assert.Error(t, err)
}
