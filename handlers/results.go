package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"airdemand/airports"
	"airdemand/services"

	"github.com/gin-gonic/gin"
)

// ResultsHandler processes the search form and renders the analysis page.
func ResultsHandler(c *gin.Context) {
	origin := strings.ToUpper(strings.TrimSpace(c.PostForm("origin")))
	destination := strings.ToUpper(strings.TrimSpace(c.PostForm("destination")))
	startDate := c.PostForm("start_date")
	endDate := c.PostForm("end_date")

	// Destination is optional; everything else is not.
	if origin == "" || startDate == "" || endDate == "" {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"airports":     airports.Common,
			"current_year": time.Now().Year(),
			"error":        "All fields except destination are required",
		})
		return
	}

	data, dataSource := services.CollectFlights(
		services.GetTravelpayoutsClient(), origin, destination, startDate, endDate)

	log.Printf("📊 [%s] %s → %s %s..%s: %d records (%s)",
		c.GetString("request_id"), origin, displayDestination(destination), startDate, endDate,
		len(data), dataSource)

	results := services.Analyze(data)

	c.HTML(http.StatusOK, "results.html", gin.H{
		"origin":              origin,
		"destination":         displayDestination(destination),
		"origin_airport":      airports.GetByCode(origin),
		"destination_airport": airports.GetByCode(destination),
		"start_date":          startDate,
		"end_date":            endDate,
		"results":             results,
		"data_source":         dataSource,
		"current_year":        time.Now().Year(),
	})
}

func displayDestination(destination string) string {
	if destination == "" {
		return "ANY"
	}
	return destination
}
