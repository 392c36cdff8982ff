package tables

import (
	"fmt"
	"sync"

	"comanda/internal/models"
)

// Registry owns table identity and occupancy. A table becomes occupied
// only as a direct effect of a successful order placement; it never
// flips implicitly.
type Registry struct {
	mu     sync.RWMutex
	tables []models.Table
}

// NewRegistry creates count tables numbered 1..count, all free
func NewRegistry(count int) *Registry {
	tables := make([]models.Table, count)
	for i := range tables {
		tables[i] = models.Table{Number: i + 1, Status: models.TableStatusFree}
	}
	return &Registry{tables: tables}
}

// SetStatus updates the occupancy of a table
func (r *Registry) SetStatus(number int, status models.TableStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if number < 1 || number > len(r.tables) {
		return fmt.Errorf("%w: %d", models.ErrTableNotFound, number)
	}
	r.tables[number-1].Status = status
	return nil
}

// Get returns a single table by number
func (r *Registry) Get(number int) (models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if number < 1 || number > len(r.tables) {
		return models.Table{}, fmt.Errorf("%w: %d", models.ErrTableNotFound, number)
	}
	return r.tables[number-1], nil
}

// List returns all tables ordered by number
func (r *Registry) List() []models.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Table(nil), r.tables...)
}

// Free returns the tables currently available for a new order
func (r *Registry) Free() []models.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var free []models.Table
	for _, t := range r.tables {
		if t.Status == models.TableStatusFree {
			free = append(free, t)
		}
	}
	return free
}
