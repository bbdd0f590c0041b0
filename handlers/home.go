package handlers

import (
	"net/http"
	"time"

	"airdemand/airports"

	"github.com/gin-gonic/gin"
)

// IndexHandler renders the home page with the search form.
func IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"airports":     airports.Common,
		"current_year": time.Now().Year(),
	})
}

// HealthHandler reports liveness for deploy probes.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Airline Demand API",
	})
}
