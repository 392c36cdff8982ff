package models

// RecipeIngredient is one line of a recipe's ingredient list.
// Quantity is the amount of the referenced ingredient consumed per
// single unit of the recipe.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// Recipe represents a dish or drink on the menu. Recipes are append-only:
// order items snapshot the recipe name at placement time, so editing the
// catalog never alters a pending order.
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    Category           `json:"category"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// Category classifies a recipe by the station that prepares it
type Category string

const (
	CategoryKitchen Category = "kitchen"
	CategoryBar     Category = "bar"
)

// Valid reports whether the category is a known prep station
func (c Category) Valid() bool {
	return c == CategoryKitchen || c == CategoryBar
}

// Destination returns the prep station an order for this recipe is routed to
func (c Category) Destination() Destination {
	if c == CategoryBar {
		return DestinationBar
	}
	return DestinationKitchen
}
