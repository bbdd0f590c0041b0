package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFallback_AnyDestinationSingleDay(t *testing.T) {
	got, err := GenerateFallback("JFK", "ANY", "2023-01-01", "2023-01-01")
	require.NoError(t, err)

	require.Len(t, got, 5)

	seen := make(map[string]bool)
	for _, f := range got {
		seen[f.Destination] = true
		assert.Equal(t, "JFK", f.Origin)
		assert.Equal(t, "2023-01-01", f.DepartDate)
		assert.Equal(t, "2023-01-08", f.ReturnDate)
		assert.GreaterOrEqual(t, f.Price, 200.0)
		assert.LessOrEqual(t, f.Price, 499.0)
		assert.Equal(t, "DEMO", f.Airline)
		assert.Equal(t, "DM100", f.FlightNumber)
		assert.Equal(t, SourceScraper, f.Source)
	}
	assert.Equal(t, map[string]bool{"JFK": true, "LAX": true, "LHR": true, "CDG": true, "SYD": true}, seen)
}

func TestGenerateFallback_Deterministic(t *testing.T) {
	first, err := GenerateFallback("JFK", "LHR", "2023-06-01", "2023-06-10")
	require.NoError(t, err)
	second, err := GenerateFallback("JFK", "LHR", "2023-06-01", "2023-06-10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateFallback_CoversEveryDay(t *testing.T) {
	got, err := GenerateFallback("SYD", "HND", "2023-03-01", "2023-03-05")
	require.NoError(t, err)

	require.Len(t, got, 5)
	for i, f := range got {
		assert.Equal(t, "HND", f.Destination)
		assert.Equal(t, fmt.Sprintf("2023-03-0%d", i+1), f.DepartDate)
		assert.Equal(t, fmt.Sprintf("DM%d", 100+i), f.FlightNumber)
	}
}

func TestGenerateFallback_LowercaseAnyExpands(t *testing.T) {
	got, err := GenerateFallback("JFK", "any", "2023-01-01", "2023-01-01")
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestGenerateFallback_InvalidRange(t *testing.T) {
	_, err := GenerateFallback("JFK", "LAX", "2023-01-02", "2023-01-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGenerateFallback_UnparseableDate(t *testing.T) {
	_, err := GenerateFallback("JFK", "LAX", "01/02/2023", "2023-01-05")
	assert.Error(t, err)
}
