package inventory

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"comanda/internal/models"
)

// StockPolicy decides what happens when a deduction would drive an
// ingredient's stock below zero.
type StockPolicy string

const (
	// PolicyAllowNegative applies the deduction and logs the shortfall.
	// This mirrors the house's historical behavior of trusting the floor
	// staff over the ledger.
	PolicyAllowNegative StockPolicy = "allow"
	// PolicyReject refuses the deduction and leaves stock unchanged
	PolicyReject StockPolicy = "reject"
)

// Deduction is one applied stock movement
type Deduction struct {
	IngredientID string  `json:"ingredientId"`
	Amount       float64 `json:"amount"`
}

// Ledger owns per-ingredient stock quantities. All mutation goes
// through Deduct, DeductBatch or Restock under a single lock.
type Ledger struct {
	mu     sync.Mutex
	stock  map[string]float64
	policy StockPolicy
}

// NewLedger creates a ledger seeded from the catalog's opening stock
func NewLedger(ingredients []models.Ingredient, policy StockPolicy) *Ledger {
	stock := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		stock[ing.ID] = ing.Stock
	}
	if policy == "" {
		policy = PolicyAllowNegative
	}
	return &Ledger{stock: stock, policy: policy}
}

// Deduct removes amount from the ingredient's stock. Amount must not be
// negative. Under PolicyReject a deduction that would breach zero fails
// with ErrInsufficientStock and leaves stock unchanged.
func (l *Ledger) Deduct(ingredientID string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: deduction amount %.2f", models.ErrInvalidQuantity, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deductLocked(ingredientID, amount)
}

func (l *Ledger) deductLocked(ingredientID string, amount float64) error {
	current, ok := l.stock[ingredientID]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrIngredientNotFound, ingredientID)
	}
	remaining := current - amount
	if remaining < 0 {
		if l.policy == PolicyReject {
			return fmt.Errorf("%w: %s has %.2f, need %.2f", models.ErrInsufficientStock, ingredientID, current, amount)
		}
		log.Printf("stock for %s went negative: %.2f", ingredientID, remaining)
	}
	l.stock[ingredientID] = remaining
	return nil
}

// DeductBatch applies a set of deductions as a unit: every line is
// validated against current stock first, then all are applied. A batch
// that fails leaves no line applied.
func (l *Ledger) DeductBatch(deductions []Deduction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range deductions {
		if d.Amount < 0 {
			return fmt.Errorf("%w: deduction amount %.2f", models.ErrInvalidQuantity, d.Amount)
		}
		current, ok := l.stock[d.IngredientID]
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrIngredientNotFound, d.IngredientID)
		}
		if l.policy == PolicyReject && current-d.Amount < 0 {
			return fmt.Errorf("%w: %s has %.2f, need %.2f", models.ErrInsufficientStock, d.IngredientID, current, d.Amount)
		}
	}
	for _, d := range deductions {
		if err := l.deductLocked(d.IngredientID, d.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Restock adds amount to the ingredient's stock. This is the only
// operation that increases a stock level.
func (l *Ledger) Restock(ingredientID string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: restock amount %.2f", models.ErrInvalidQuantity, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.stock[ingredientID]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrIngredientNotFound, ingredientID)
	}
	l.stock[ingredientID] = current + amount
	return nil
}

// Stock returns the current quantity for an ingredient
func (l *Ledger) Stock(ingredientID string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.stock[ingredientID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", models.ErrIngredientNotFound, ingredientID)
	}
	return current, nil
}

// Snapshot returns all stock levels keyed by ingredient id
func (l *Ledger) Snapshot() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := make(map[string]float64, len(l.stock))
	for id, qty := range l.stock {
		snap[id] = qty
	}
	return snap
}

// SortDeductions orders a deduction list by ingredient id for stable
// audit records.
func SortDeductions(deductions []Deduction) {
	sort.Slice(deductions, func(i, j int) bool {
		return deductions[i].IngredientID < deductions[j].IngredientID
	})
}
