package api

import (
	"net/http"
	"strconv"

	"comanda/internal/models"

	"github.com/gin-gonic/gin"
)

// ListTables handles GET /tables
func (s *Server) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.List())
}

// ListFreeTables handles GET /tables/free
func (s *Server) ListFreeTables(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.Free())
}

// SetTableStatus handles PUT /tables/:number/status, used by the floor
// to move a table to billing or free it after cleanup.
func (s *Server) SetTableStatus(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table number must be an integer"})
		return
	}
	var req struct {
		Status models.TableStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.registry.SetStatus(number, req.Status); err != nil {
		fail(c, err)
		return
	}
	table, err := s.registry.Get(number)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
