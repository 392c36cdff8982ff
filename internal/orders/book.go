package orders

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"comanda/internal/catalog"
	"comanda/internal/metrics"
	"comanda/internal/models"

	"github.com/google/uuid"
)

// Line is one requested item in a placement: a recipe reference, a
// quantity and an optional note for the prep station.
type Line struct {
	RecipeID string `json:"recipeId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Book owns the active orders. New orders are prepended so iteration is
// most-recent-first; ListActive re-sorts oldest-first for the displays.
// The book places orders independent of table state; table gating
// happens at the API layer.
type Book struct {
	mu      sync.RWMutex
	catalog *catalog.Store
	orders  []*models.Order
	byID    map[string]*models.Order
	now     func() time.Time

	notifier *Notifier
}

// NewBook creates an empty order book backed by the given catalog
func NewBook(cat *catalog.Store) *Book {
	return &Book{
		catalog:  cat,
		byID:     make(map[string]*models.Order),
		now:      time.Now,
		notifier: NewNotifier(),
	}
}

// Place records a new single-destination order. Each line is resolved
// against the catalog; the recipe name is snapshotted onto the item so
// later catalog edits cannot alter it. Lines whose recipe belongs to a
// different station are rejected: callers split a mixed cart into one
// placement per destination before calling.
func (b *Book) Place(tableNumber int, destination models.Destination, lines []Line) (models.Order, error) {
	if !destination.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown destination %q", models.ErrInvalidStatus, destination)
	}
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("%w: order has no items", models.ErrInvalidQuantity)
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: %d of recipe %s", models.ErrInvalidQuantity, line.Quantity, line.RecipeID)
		}
		recipe, err := b.catalog.Recipe(line.RecipeID)
		if err != nil {
			return models.Order{}, err
		}
		if recipe.Category.Destination() != destination {
			return models.Order{}, fmt.Errorf("%w: recipe %s is prepared by the %s", models.ErrInvalidRecipe, recipe.Name, recipe.Category)
		}
		items = append(items, models.OrderItem{
			ID:       uuid.NewString(),
			RecipeID: recipe.ID,
			Name:     recipe.Name,
			Quantity: line.Quantity,
			Notes:    line.Notes,
			Status:   models.ItemStatusPending,
		})
	}

	order := &models.Order{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		Destination: destination,
		CreatedAt:   b.now(),
		Items:       items,
	}

	b.mu.Lock()
	b.orders = append([]*models.Order{order}, b.orders...)
	b.byID[order.ID] = order
	b.mu.Unlock()

	metrics.OrdersPlaced.WithLabelValues(string(destination)).Inc()
	metrics.ActiveOrders.WithLabelValues(string(destination)).Inc()
	b.notifier.Publish(Change{Type: ChangeOrderPlaced, OrderID: order.ID})
	return *order, nil
}

// SetItemStatus updates the preparation state of a single item. Any
// transition is accepted, including backward moves; the common path is
// forward-only but the floor decides.
func (b *Book) SetItemStatus(orderID, itemID string, status models.ItemStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	b.mu.Lock()
	order, ok := b.byID[orderID]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", models.ErrOrderNotFound, orderID)
	}
	found := false
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			order.Items[i].Status = status
			found = true
			break
		}
	}
	b.mu.Unlock()
	if !found {
		return fmt.Errorf("%w: %s", models.ErrItemNotFound, itemID)
	}
	metrics.ItemStatusChanges.WithLabelValues(string(status)).Inc()
	b.notifier.Publish(Change{Type: ChangeItemStatus, OrderID: orderID})
	return nil
}

// IsComplete reports whether every item of the order is ready
func (b *Book) IsComplete(orderID string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	order, ok := b.byID[orderID]
	if !ok {
		return false, fmt.Errorf("%w: %s", models.ErrOrderNotFound, orderID)
	}
	return order.Ready(), nil
}

// Get returns a copy of a single active order
func (b *Book) Get(orderID string) (models.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	order, ok := b.byID[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %s", models.ErrOrderNotFound, orderID)
	}
	return copyOrder(order), nil
}

// ListActive returns the active orders, optionally filtered by
// destination, sorted oldest-first. The sort is stable: orders with
// equal timestamps keep their relative insertion order.
func (b *Book) ListActive(destination models.Destination) []models.Order {
	b.mu.RLock()
	matched := make([]models.Order, 0, len(b.orders))
	// b.orders is most-recent-first; walk backward so the pre-sort
	// sequence is insertion order.
	for i := len(b.orders) - 1; i >= 0; i-- {
		o := b.orders[i]
		if destination != "" && o.Destination != destination {
			continue
		}
		matched = append(matched, copyOrder(o))
	}
	b.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched
}

// Remove retires an order from the active set. Only the completion
// coordinator calls this.
func (b *Book) Remove(orderID string) error {
	b.mu.Lock()
	order, ok := b.byID[orderID]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", models.ErrOrderNotFound, orderID)
	}
	delete(b.byID, orderID)
	for i, o := range b.orders {
		if o.ID == orderID {
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
	metrics.ActiveOrders.WithLabelValues(string(order.Destination)).Dec()
	b.notifier.Publish(Change{Type: ChangeOrderRemoved, OrderID: orderID})
	return nil
}

// Subscribe registers a change listener; see Notifier
func (b *Book) Subscribe() <-chan Change {
	return b.notifier.Subscribe()
}

// Unsubscribe removes a listener and closes its channel
func (b *Book) Unsubscribe(ch <-chan Change) {
	b.notifier.Unsubscribe(ch)
}

func copyOrder(o *models.Order) models.Order {
	out := *o
	out.Items = append([]models.OrderItem(nil), o.Items...)
	return out
}
