package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCode(t *testing.T) {
	got := GetByCode("jfk")
	require.NotNil(t, got)
	assert.Equal(t, "JFK", got.Code)
	assert.Equal(t, "New York", got.City)

	assert.Nil(t, GetByCode("XXX"))
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	byCity := Search("london")
	require.Len(t, byCity, 1)
	assert.Equal(t, "LHR", byCity[0].Code)

	byCode := Search("syd")
	require.Len(t, byCode, 1)
	assert.Equal(t, "SYD", byCode[0].Code)

	byCountry := Search("china")
	codes := make([]string, 0, len(byCountry))
	for _, a := range byCountry {
		codes = append(codes, a.Code)
	}
	assert.ElementsMatch(t, []string{"PEK", "CAN", "HKG"}, codes)
}

func TestSearch_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Search("zzzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
