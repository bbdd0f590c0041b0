package handlers

import (
	"net/http"

	"airdemand/airports"

	"github.com/gin-gonic/gin"
)

// SearchAirportHandler serves the autocomplete on the search form. Queries
// shorter than two characters return an empty list rather than the whole table.
func SearchAirportHandler(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 2 {
		c.JSON(http.StatusOK, []airports.Airport{})
		return
	}

	c.JSON(http.StatusOK, airports.Search(query))
}
