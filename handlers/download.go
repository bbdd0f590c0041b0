package handlers

import (
	"log"
	"net/http"
	"strings"

	"airdemand/services"

	"github.com/gin-gonic/gin"
)

// DownloadHandler re-runs the search from its query parameters and streams
// the analysis as a PDF. Stateless on purpose: nothing is persisted between
// the results page and the export.
func DownloadHandler(c *gin.Context) {
	origin := strings.ToUpper(strings.TrimSpace(c.Query("origin")))
	destination := strings.ToUpper(strings.TrimSpace(c.Query("destination")))
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if origin == "" || startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, start_date and end_date are required"})
		return
	}

	data, dataSource := services.CollectFlights(
		services.GetTravelpayoutsClient(), origin, destination, startDate, endDate)

	pdfBytes, err := services.GenerateReportBytes(services.ReportData{
		Origin:      origin,
		Destination: displayDestination(destination),
		StartDate:   startDate,
		EndDate:     endDate,
		DataSource:  dataSource,
		Analysis:    services.Analyze(data),
	})
	if err != nil {
		log.Printf("❌ [%s] PDF generation failed: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=airline-demand-report.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
