package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// ErrInvalidDateRange is returned when the requested period ends before it starts.
var ErrInvalidDateRange = errors.New("end date is before start date")

// anyDestinations is the expansion set used when the traveler does not pick
// a destination.
var anyDestinations = []string{"JFK", "LAX", "LHR", "CDG", "SYD"}

const (
	fallbackAirline   = "DEMO"
	fallbackBasePrice = 200
	fallbackPriceSpan = 300
)

// GenerateFallback produces deterministic sample flights covering every day
// of the period, one record per (destination, day). It stands in for a real
// scraper when the pricing API is unavailable or returns too little data.
// Prices are stable across runs: same route and date, same price.
func GenerateFallback(origin, destination, startDate, endDate string) ([]Flight, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	destinations := []string{destination}
	if isAnyDestination(destination) {
		destinations = anyDestinations
	}

	days := int(end.Sub(start).Hours()/24) + 1

	flights := make([]Flight, 0, days*len(destinations))
	for _, dest := range destinations {
		for i := 0; i < days; i++ {
			day := start.AddDate(0, 0, i)
			dateStr := day.Format("2006-01-02")

			flights = append(flights, Flight{
				Origin:       origin,
				Destination:  dest,
				DepartDate:   dateStr,
				ReturnDate:   day.AddDate(0, 0, 7).Format("2006-01-02"),
				Price:        float64(fallbackBasePrice + stableHash(origin+dest+dateStr)%fallbackPriceSpan),
				Airline:      fallbackAirline,
				FlightNumber: fmt.Sprintf("DM%d", 100+i),
				Source:       SourceScraper,
			})
		}
	}

	return flights, nil
}

// stableHash must not change across processes or releases; generated prices
// are part of the observable contract.
func stableHash(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % (1 << 31))
}
