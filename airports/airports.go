package airports

import "strings"

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Common is the static reference table backing the search form and the
// airport autocomplete endpoint. Read-only after initialization.
var Common = []Airport{
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA"},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "UK"},
	{Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "USA"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "CAN", Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "China"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas Airport", City: "Madrid", Country: "Spain"},
	{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia"},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
}

// GetByCode returns the airport for an IATA code (case-insensitive),
// or nil when the code is not in the table.
func GetByCode(code string) *Airport {
	code = strings.ToUpper(code)
	for i := range Common {
		if Common[i].Code == code {
			return &Common[i]
		}
	}
	return nil
}

// Search matches the query as a case-insensitive substring against
// name, city, country and code.
func Search(query string) []Airport {
	query = strings.ToLower(query)
	results := make([]Airport, 0)

	for _, a := range Common {
		if strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Country), query) ||
			strings.Contains(strings.ToLower(a.Code), query) {
			results = append(results, a)
		}
	}

	return results
}
