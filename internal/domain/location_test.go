package domain_test

import (
	"testing"

	"weather-currency-bot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLocations_ReturnsCopy(t *testing.T) {
	a := domain.DefaultLocations()
	require.NotEmpty(t, a)

	a[0].Name = "mutated"
	b := domain.DefaultLocations()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestFindByQuery(t *testing.T) {
	locs := domain.DefaultLocations()

	tests := []struct {
		name      string
		query     string
		wantName  string
		wantFound bool
	}{
		{name: "exact", query: "Кёльн", wantName: "Кёльн", wantFound: true},
		{name: "case insensitive", query: "кёльн", wantName: "Кёльн", wantFound: true},
		{name: "substring of name", query: "Гуммерс", wantName: "Гуммерсбах", wantFound: true},
		{name: "name inside query", query: "виль сегодня", wantName: "Виль", wantFound: true},
		{name: "surrounding whitespace", query: "  Нюмбрехт ", wantName: "Нюмбрехт", wantFound: true},
		{name: "no match", query: "Берлин", wantFound: false},
		{name: "empty", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := domain.FindByQuery(locs, tt.query)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantName, loc.Name)
			}
		})
	}
}

func TestFindByQuery_FirstMatchWins(t *testing.T) {
	locs := []domain.Location{
		{Name: "Виль"},
		{Name: "Вильауф"},
	}
	loc, ok := domain.FindByQuery(locs, "виль")
	require.True(t, ok)
	assert.Equal(t, "Виль", loc.Name)
}

func TestFindByName(t *testing.T) {
	locs := domain.DefaultLocations()

	loc, ok := domain.FindByName(locs, "Виль")
	require.True(t, ok)
	assert.Equal(t, "Виль", loc.Name)

	// Exact match only: no case folding, no substrings.
	_, ok = domain.FindByName(locs, "виль")
	assert.False(t, ok)
	_, ok = domain.FindByName(locs, "Ви")
	assert.False(t, ok)
}
