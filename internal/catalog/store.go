package catalog

import (
	"fmt"
	"sync"

	"comanda/internal/models"

	"github.com/google/uuid"
)

// Store holds the reference data for the house: ingredients and recipes.
// Recipes are append-only; edits create new entries so pending orders,
// which snapshot recipe names at placement, are never altered.
type Store struct {
	mu          sync.RWMutex
	ingredients []models.Ingredient
	recipes     []models.Recipe
	byRecipeID  map[string]int
	byIngID     map[string]int
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{
		byRecipeID: make(map[string]int),
		byIngID:    make(map[string]int),
	}
}

// AddIngredient registers a new ingredient with its opening stock level
func (s *Store) AddIngredient(name string, unit models.Unit, stock float64) (models.Ingredient, error) {
	if name == "" {
		return models.Ingredient{}, fmt.Errorf("%w: ingredient name is required", models.ErrInvalidRecipe)
	}
	if !unit.Valid() {
		return models.Ingredient{}, fmt.Errorf("%w: unknown unit %q", models.ErrInvalidRecipe, unit)
	}
	ing := models.Ingredient{
		ID:    uuid.NewString(),
		Name:  name,
		Unit:  unit,
		Stock: stock,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byIngID[ing.ID] = len(s.ingredients)
	s.ingredients = append(s.ingredients, ing)
	return ing, nil
}

// AddRecipe appends a new recipe to the catalog. Fails with
// ErrInvalidRecipe when the name or the ingredient list is empty, with
// ErrInvalidQuantity when a line quantity is not positive, and with
// ErrIngredientNotFound when a line references an unknown ingredient.
func (s *Store) AddRecipe(name, description string, category models.Category, lines []models.RecipeIngredient) (models.Recipe, error) {
	if name == "" {
		return models.Recipe{}, fmt.Errorf("%w: name is required", models.ErrInvalidRecipe)
	}
	if len(lines) == 0 {
		return models.Recipe{}, fmt.Errorf("%w: at least one ingredient is required", models.ErrInvalidRecipe)
	}
	if !category.Valid() {
		return models.Recipe{}, fmt.Errorf("%w: unknown category %q", models.ErrInvalidRecipe, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Recipe{}, fmt.Errorf("%w: quantity %.2f for ingredient %s", models.ErrInvalidQuantity, line.Quantity, line.IngredientID)
		}
		if _, ok := s.byIngID[line.IngredientID]; !ok {
			return models.Recipe{}, fmt.Errorf("%w: %s", models.ErrIngredientNotFound, line.IngredientID)
		}
	}

	recipe := models.Recipe{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
		Ingredients: append([]models.RecipeIngredient(nil), lines...),
	}
	s.byRecipeID[recipe.ID] = len(s.recipes)
	s.recipes = append(s.recipes, recipe)
	return recipe, nil
}

// Recipes returns a snapshot of all recipes in insertion order
func (s *Store) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Recipe(nil), s.recipes...)
}

// Ingredients returns a snapshot of all ingredients in insertion order
func (s *Store) Ingredients() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ingredient(nil), s.ingredients...)
}

// Recipe looks up a recipe by id
func (s *Store) Recipe(id string) (models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byRecipeID[id]
	if !ok {
		return models.Recipe{}, fmt.Errorf("%w: %s", models.ErrRecipeNotFound, id)
	}
	return s.recipes[idx], nil
}

// Ingredient looks up an ingredient by id
func (s *Store) Ingredient(id string) (models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byIngID[id]
	if !ok {
		return models.Ingredient{}, fmt.Errorf("%w: %s", models.ErrIngredientNotFound, id)
	}
	return s.ingredients[idx], nil
}

// IngredientUnit returns the unit of measure for an ingredient
func (s *Store) IngredientUnit(id string) (models.Unit, error) {
	ing, err := s.Ingredient(id)
	if err != nil {
		return "", err
	}
	return ing.Unit, nil
}
