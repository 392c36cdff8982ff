package models

// Unit is the measurement unit an ingredient's stock is tracked in
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitPiece      Unit = "un"
)

// Valid reports whether the unit is one of the tracked measurement units
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitPiece:
		return true
	}
	return false
}

// Ingredient is a stocked raw material. Stock here is the opening level
// captured when the ingredient enters the catalog; the inventory ledger
// owns the live balance.
type Ingredient struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Unit  Unit    `json:"unit"`
	Stock float64 `json:"stock"`
}
