package services

import (
	"math"
	"sort"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// RouteCount is how often one (origin, destination) pair appeared in a dataset.
type RouteCount struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// PricePoint is the average price of all flights departing on one date.
type PricePoint struct {
	DepartDate string  `json:"depart_date"`
	Price      float64 `json:"price"`
}

// Summary holds dataset-wide statistics. TotalRoutes is the record count,
// not the distinct-route count; the UI and tests rely on that reading.
type Summary struct {
	TotalRoutes int     `json:"total_routes"`
	AvgPrice    float64 `json:"avg_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
}

type Analysis struct {
	TopRoutes   []RouteCount `json:"top_routes"`
	PriceTrends []PricePoint `json:"price_trends"`
	Summary     Summary      `json:"summary"`
}

const topRoutesLimit = 10

// ─── Analyzer ─────────────────────────────────────────────────────────────────

// Analyze aggregates a flight dataset into route frequencies, per-date price
// averages and summary statistics. Pure function; an empty input yields a
// zeroed result with empty slices.
func Analyze(data []Flight) Analysis {
	if len(data) == 0 {
		return Analysis{
			TopRoutes:   []RouteCount{},
			PriceTrends: []PricePoint{},
		}
	}

	// Count routes, remembering the order pairs were first seen so that
	// ties keep a stable order.
	type routeKey struct{ origin, destination string }
	routeCounts := make(map[routeKey]int)
	routeOrder := make([]routeKey, 0)
	for _, f := range data {
		key := routeKey{f.Origin, f.Destination}
		if _, seen := routeCounts[key]; !seen {
			routeOrder = append(routeOrder, key)
		}
		routeCounts[key]++
	}

	sort.SliceStable(routeOrder, func(i, j int) bool {
		return routeCounts[routeOrder[i]] > routeCounts[routeOrder[j]]
	})

	if len(routeOrder) > topRoutesLimit {
		routeOrder = routeOrder[:topRoutesLimit]
	}

	topRoutes := make([]RouteCount, 0, len(routeOrder))
	for _, key := range routeOrder {
		topRoutes = append(topRoutes, RouteCount{
			Origin:      key.origin,
			Destination: key.destination,
			Count:       routeCounts[key],
		})
	}

	// Price trends: mean price per departure date, ascending by date string.
	datePrices := make(map[string][]float64)
	for _, f := range data {
		datePrices[f.DepartDate] = append(datePrices[f.DepartDate], f.Price)
	}

	dates := make([]string, 0, len(datePrices))
	for date := range datePrices {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	priceTrends := make([]PricePoint, 0, len(dates))
	for _, date := range dates {
		priceTrends = append(priceTrends, PricePoint{
			DepartDate: date,
			Price:      round2(mean(datePrices[date])),
		})
	}

	// Summary statistics over the whole dataset.
	prices := make([]float64, 0, len(data))
	for _, f := range data {
		prices = append(prices, f.Price)
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}

	return Analysis{
		TopRoutes:   topRoutes,
		PriceTrends: priceTrends,
		Summary: Summary{
			TotalRoutes: len(data),
			AvgPrice:    round2(mean(prices)),
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
		},
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
