package models

// TableStatus represents the occupancy state of a table
type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusBilling  TableStatus = "billing"
)

// Valid reports whether the status is a known table state
func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusBilling:
		return true
	}
	return false
}

// Table represents a table in the dining room. Table lifecycle is
// independent of any single order: an occupied table can carry both a
// kitchen and a bar order at once.
type Table struct {
	Number int         `json:"number"`
	Status TableStatus `json:"status"`
}
