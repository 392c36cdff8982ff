package models

import "errors"

// Typed failures returned by the stores. Callers select behavior with
// errors.Is; unknown-id lookups are the expected way stale references
// surface, never a panic.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("order item not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTableNotFound      = errors.New("table not found")

	ErrInvalidRecipe   = errors.New("invalid recipe")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidStatus   = errors.New("invalid status")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrTableUnavailable  = errors.New("table unavailable")
)
