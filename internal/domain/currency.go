package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackEURToUAH is substituted whenever the live rate cannot be fetched.
// The converter is defined never to fail outwardly, so this must stay > 0.
const FallbackEURToUAH = 44.5

// Currency is one of the two supported currency codes.
type Currency string

const (
	EUR Currency = "EUR"
	UAH Currency = "UAH"
)

// Rate holds how many UAH one EUR buys. Fallback marks rates that were
// substituted because the provider was unreachable; the user-facing message
// is identical either way.
type Rate struct {
	EURToUAH float64
	Fallback bool
}

// FallbackRate returns the hardcoded default rate.
func FallbackRate() Rate {
	return Rate{EURToUAH: FallbackEURToUAH, Fallback: true}
}

// Convert converts amount from the given currency into the other one,
// returning the converted value and the per-unit rate that was applied.
func (r Rate) Convert(amount float64, from Currency) (converted, rate float64) {
	if from == EUR {
		return amount * r.EURToUAH, r.EURToUAH
	}
	return amount / r.EURToUAH, 1 / r.EURToUAH
}

// ParseCurrency recognizes a currency token case-insensitively.
func ParseCurrency(token string) (Currency, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "EUR":
		return EUR, true
	case "UAH":
		return UAH, true
	default:
		return "", false
	}
}

// InferCurrency guesses the currency when the user omitted the token:
// amounts of 100 and above read as UAH, smaller ones as EUR.
func InferCurrency(amount float64) Currency {
	if amount >= 100 {
		return UAH
	}
	return EUR
}

// ParseAmount parses a user-entered amount, accepting a comma as the decimal
// separator ("12,5" → 12.5).
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return amount, nil
}
