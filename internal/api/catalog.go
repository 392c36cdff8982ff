package api

import (
	"net/http"

	"comanda/internal/models"

	"github.com/gin-gonic/gin"
)

// AddRecipeRequest is the payload for POST /recipes
type AddRecipeRequest struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Category    models.Category           `json:"category"`
	Ingredients []models.RecipeIngredient `json:"ingredients"`
}

// ListRecipes handles GET /recipes
func (s *Server) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Recipes())
}

// AddRecipe handles POST /recipes
func (s *Server) AddRecipe(c *gin.Context) {
	var req AddRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := s.catalog.AddRecipe(req.Name, req.Description, req.Category, req.Ingredients)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// ListIngredients handles GET /ingredients. Stock comes from the
// ledger, not the catalog's opening levels.
func (s *Server) ListIngredients(c *gin.Context) {
	stock := s.ledger.Snapshot()
	ingredients := s.catalog.Ingredients()
	for i := range ingredients {
		ingredients[i].Stock = stock[ingredients[i].ID]
	}
	c.JSON(http.StatusOK, ingredients)
}
