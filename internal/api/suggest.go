package api

import (
	"net/http"

	"comanda/internal/metrics"

	"github.com/gin-gonic/gin"
)

// SuggestRecipe handles POST /suggestions: one free-text idea in, one
// dish name and description out. The call holds no store lock; the
// result only becomes a recipe if the caller follows up with POST
// /recipes.
func (s *Server) SuggestRecipe(c *gin.Context) {
	if s.suggester == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestion service is not configured"})
		return
	}
	var req struct {
		Idea string `json:"idea"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	suggestion, err := s.suggester.Suggest(c.Request.Context(), req.Idea)
	if err != nil {
		metrics.SuggestionRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	metrics.SuggestionRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, suggestion)
}
