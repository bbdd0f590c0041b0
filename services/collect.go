package services

import (
	"log"
	"strings"
)

// Provenance labels surfaced to the user next to the analysis.
const (
	SourceLabelAPI      = "API data"
	SourceLabelMixed    = "API and generated data"
	SourceLabelFallback = "Generated data (API unavailable)"
)

// minAPIRecords is the threshold below which an API response is considered
// too sparse to analyze on its own.
const minAPIRecords = 10

// PriceSource is what CollectFlights needs from the pricing API client.
type PriceSource interface {
	FetchLatest(origin, destination, startDate, endDate string) ([]Flight, error)
}

// CollectFlights fetches flights from the pricing source and applies the
// fallback policy: a failed call is replaced entirely by generated data, a
// sparse result (< 10 records) is topped up with it, and a healthy result is
// used as-is. The returned label states which of the three happened.
//
// Dates are expected to be validated by the caller; a generator failure on a
// bad range degrades to whatever the API returned.
func CollectFlights(src PriceSource, origin, destination, startDate, endDate string) ([]Flight, string) {
	apiData, err := src.FetchLatest(origin, destination, startDate, endDate)
	if err != nil {
		log.Printf("⚠️  Travelpayouts fetch failed: %v — using generated data", err)
		generated, genErr := GenerateFallback(origin, destination, startDate, endDate)
		if genErr != nil {
			log.Printf("❌ Fallback generation failed: %v", genErr)
			return []Flight{}, SourceLabelFallback
		}
		return generated, SourceLabelFallback
	}

	if len(apiData) < minAPIRecords {
		generated, genErr := GenerateFallback(origin, destination, startDate, endDate)
		if genErr != nil {
			log.Printf("❌ Fallback generation failed: %v", genErr)
			return apiData, SourceLabelAPI
		}
		return append(apiData, generated...), SourceLabelMixed
	}

	return apiData, SourceLabelAPI
}

func isAnyDestination(destination string) bool {
	return destination == "" || strings.EqualFold(destination, "ANY")
}
