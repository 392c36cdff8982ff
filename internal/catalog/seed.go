package catalog

import (
	"fmt"

	"comanda/internal/models"
)

type seedIngredient struct {
	key   string
	name  string
	unit  models.Unit
	stock float64
}

type seedRecipe struct {
	name        string
	description string
	category    models.Category
	lines       []seedLine
}

type seedLine struct {
	ingredient string
	quantity   float64
}

var defaultIngredients = []seedIngredient{
	{"bun", "Burger Bun", models.UnitPiece, 100},
	{"patty", "Beef Patty 150g", models.UnitPiece, 80},
	{"cheddar", "Cheddar Cheese", models.UnitGram, 2000},
	{"lettuce", "Lettuce", models.UnitGram, 1000},
	{"tomato", "Tomato", models.UnitGram, 1500},
	{"bacon", "Bacon", models.UnitGram, 1000},
	{"potato", "Potato", models.UnitKilogram, 10},
	{"lager", "Lager Beer", models.UnitMilliliter, 50000},
	{"orange", "Orange Juice", models.UnitLiter, 20},
	{"soda", "Soda", models.UnitMilliliter, 60000},
}

var defaultRecipes = []seedRecipe{
	{"Classic Cheeseburger", "The usual, done right.", models.CategoryKitchen, []seedLine{
		{"bun", 1}, {"patty", 1}, {"cheddar", 40},
	}},
	{"House Salad Burger", "Fresh and generous.", models.CategoryKitchen, []seedLine{
		{"bun", 1}, {"patty", 1}, {"cheddar", 20}, {"lettuce", 30}, {"tomato", 50},
	}},
	{"Fries Basket", "Crispy and irresistible.", models.CategoryKitchen, []seedLine{
		{"potato", 0.3},
	}},
	{"Draft Lager 500ml", "Cold, poured to the line.", models.CategoryBar, []seedLine{
		{"lager", 500},
	}},
	{"Orange Juice 400ml", "Fresh squeezed.", models.CategoryBar, []seedLine{
		{"orange", 0.4},
	}},
	{"Soda Can", "Ask for flavors.", models.CategoryBar, []seedLine{
		{"soda", 350},
	}},
}

// Seed loads the compiled-in opening catalog: ten ingredients and six
// recipes split between kitchen and bar.
func Seed(store *Store) error {
	ids := make(map[string]string, len(defaultIngredients))
	for _, si := range defaultIngredients {
		ing, err := store.AddIngredient(si.name, si.unit, si.stock)
		if err != nil {
			return fmt.Errorf("seed ingredient %s: %w", si.name, err)
		}
		ids[si.key] = ing.ID
	}
	for _, sr := range defaultRecipes {
		lines := make([]models.RecipeIngredient, 0, len(sr.lines))
		for _, line := range sr.lines {
			lines = append(lines, models.RecipeIngredient{
				IngredientID: ids[line.ingredient],
				Quantity:     line.quantity,
			})
		}
		if _, err := store.AddRecipe(sr.name, sr.description, sr.category, lines); err != nil {
			return fmt.Errorf("seed recipe %s: %w", sr.name, err)
		}
	}
	return nil
}
