package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"airdemand/services"

	"github.com/gin-gonic/gin"
)

type askRequest struct {
	Question string `json:"question"`
}

// AskAIHandler forwards a free-text travel question to the AI service and
// returns the answer as a ready-to-display HTML fragment. Upstream failures
// are reported inside the fragment instead of a bare error, so the UI always
// has something to show.
func AskAIHandler(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"response": fmt.Sprintf("<p>Sorry, I couldn't process your question: %s</p>", err.Error()),
		})
		return
	}

	client := services.GetAIClient()
	if !client.Configured() {
		c.JSON(http.StatusBadRequest, gin.H{
			"response": "<p>AI API key not configured. Please add AI_KEY to your .env file.</p>",
		})
		return
	}

	answer, err := client.Ask(req.Question)
	if err != nil {
		var statusErr *services.StatusError
		if errors.As(err, &statusErr) {
			log.Printf("⚠️  [%s] AI service returned %d", c.GetString("request_id"), statusErr.StatusCode)
			c.JSON(statusErr.StatusCode, gin.H{
				"response": fmt.Sprintf("<p>Error from AI service: %d</p><p>%s</p>",
					statusErr.StatusCode, statusErr.Body),
			})
			return
		}

		log.Printf("❌ [%s] AI request failed: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"response": fmt.Sprintf("<p>Sorry, I couldn't process your question: %s</p>", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": services.FormatAnswer(answer, req.Question),
	})
}
