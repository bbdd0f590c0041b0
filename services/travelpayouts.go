package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// Flight is one priced flight option, either decoded from the Travelpayouts
// response or produced by the synthetic generator. Fields missing from the
// upstream JSON stay at their zero value.
type Flight struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	DepartDate   string  `json:"depart_date"`
	ReturnDate   string  `json:"return_date"`
	Price        float64 `json:"price"`
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	Source       string  `json:"source,omitempty"` // "api" or "scraper"
}

const (
	SourceAPI     = "api"
	SourceScraper = "scraper"
)

// ─── Travelpayouts Client ─────────────────────────────────────────────────────

type TravelpayoutsClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

var travelpayoutsClient *TravelpayoutsClient

func InitTravelpayouts() {
	token := os.Getenv("API_KEY")
	if token == "" {
		token = "demo"
		log.Println("⚠️  API_KEY not set — using demo Travelpayouts token, expect generated fallback data")
	} else {
		log.Println("✅ Travelpayouts client initialized")
	}

	travelpayoutsClient = NewTravelpayoutsClient(token, os.Getenv("TRAVELPAYOUTS_BASE_URL"), 15*time.Second)
}

func NewTravelpayoutsClient(token, baseURL string, timeout time.Duration) *TravelpayoutsClient {
	if baseURL == "" {
		baseURL = "https://api.travelpayouts.com"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &TravelpayoutsClient{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func GetTravelpayoutsClient() *TravelpayoutsClient {
	return travelpayoutsClient
}

type latestPricesResponse struct {
	Data []Flight `json:"data"`
}

// FetchLatest queries the latest-prices endpoint for the given route and
// period. Destination "ANY" (any case) is omitted so the API returns
// prices for all destinations from the origin.
func (c *TravelpayoutsClient) FetchLatest(origin, destination, startDate, endDate string) ([]Flight, error) {
	u, err := url.Parse(c.baseURL + "/v2/prices/latest")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("origin", origin)
	q.Set("period_type", "range")
	q.Set("beginning_of_period", startDate)
	q.Set("end_of_period", endDate)
	q.Set("limit", "100")
	q.Set("token", c.token)
	if destination != "" && strings.ToUpper(destination) != "ANY" {
		q.Set("destination", destination)
	}
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("travelpayouts request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("travelpayouts error (%d): %s", resp.StatusCode, string(body))
	}

	var payload latestPricesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse travelpayouts response: %w", err)
	}

	flights := payload.Data
	for i := range flights {
		flights[i].Source = SourceAPI
	}
	return flights, nil
}
