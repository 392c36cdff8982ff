package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStock handles GET /stock, returning quantities keyed by ingredient id
func (s *Server) GetStock(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.Snapshot())
}

// Restock handles POST /ingredients/:id/restock, the only operation
// that increases a stock level.
func (s *Server) Restock(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ledger.Restock(c.Param("id"), req.Amount); err != nil {
		fail(c, err)
		return
	}
	stock, err := s.ledger.Stock(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredientId": c.Param("id"), "stock": stock})
}

// ListCompletions handles GET /completions, returning recent audit records
func (s *Server) ListCompletions(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	records, err := s.audit.Recent(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
