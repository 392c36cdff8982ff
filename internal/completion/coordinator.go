package completion

import (
	"fmt"
	"log"
	"sync"
	"time"

	"comanda/internal/catalog"
	"comanda/internal/inventory"
	"comanda/internal/metrics"
	"comanda/internal/models"
	"comanda/internal/orders"
)

// Policy decides whether an order may be completed before every item is
// ready. The house default is lenient: expediters force orders through
// when the display is wrong, so strict mode is opt-in.
type Policy string

const (
	PolicyLenient Policy = "lenient"
	PolicyStrict  Policy = "strict"
)

// Event is the structured record of a completion: what was retired and
// what the kitchen consumed for it.
type Event struct {
	OrderID     string                `json:"orderId"`
	TableNumber int                   `json:"tableNumber"`
	CompletedAt time.Time             `json:"completedAt"`
	Deductions  []inventory.Deduction `json:"deductions"`
}

// Recorder persists completion events for audit
type Recorder interface {
	RecordCompletion(Event) error
}

// Coordinator orchestrates order completion: it validates the order,
// computes ingredient deltas from the catalog, applies them through the
// ledger as one batch, and retires the order from the book.
type Coordinator struct {
	mu       sync.Mutex
	book     *orders.Book
	catalog  *catalog.Store
	ledger   *inventory.Ledger
	recorder Recorder
	policy   Policy
	now      func() time.Time
}

// NewCoordinator wires the coordinator to its stores. recorder may be
// nil when no audit trail is configured.
func NewCoordinator(book *orders.Book, cat *catalog.Store, ledger *inventory.Ledger, recorder Recorder, policy Policy) *Coordinator {
	if policy == "" {
		policy = PolicyLenient
	}
	return &Coordinator{
		book:     book,
		catalog:  cat,
		ledger:   ledger,
		recorder: recorder,
		policy:   policy,
		now:      time.Now,
	}
}

// Complete deducts the order's ingredients from stock and removes it
// from the active set. A second call on the same id fails with
// ErrOrderNotFound: the coordinator's lock spans lookup through removal,
// so a concurrent duplicate can never deduct twice.
func (c *Coordinator) Complete(orderID string) (Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, err := c.book.Get(orderID)
	if err != nil {
		return Event{}, err
	}

	if c.policy == PolicyStrict && !order.Ready() {
		return Event{}, fmt.Errorf("%w: order %s has unready items", models.ErrInvalidStatus, orderID)
	}

	deductions, err := c.computeDeductions(order)
	if err != nil {
		return Event{}, err
	}

	if err := c.ledger.DeductBatch(deductions); err != nil {
		return Event{}, fmt.Errorf("deduct stock for order %s: %w", orderID, err)
	}

	if err := c.book.Remove(orderID); err != nil {
		return Event{}, err
	}

	event := Event{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		CompletedAt: c.now(),
		Deductions:  deductions,
	}
	metrics.OrdersCompleted.Inc()
	for _, d := range deductions {
		metrics.StockDeducted.WithLabelValues(d.IngredientID).Add(d.Amount)
	}
	if c.recorder != nil {
		if err := c.recorder.RecordCompletion(event); err != nil {
			// The order is already retired; a lost audit row must not
			// resurrect it.
			log.Printf("record completion for order %s: %v", orderID, err)
		}
	}
	return event, nil
}

// computeDeductions folds every item's recipe into per-ingredient
// totals: recipe line quantity times item quantity, summed across the
// whole order so the ledger sees a single delta per ingredient.
func (c *Coordinator) computeDeductions(order models.Order) ([]inventory.Deduction, error) {
	totals := make(map[string]float64)
	for _, item := range order.Items {
		recipe, err := c.catalog.Recipe(item.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("resolve item %s: %w", item.ID, err)
		}
		for _, line := range recipe.Ingredients {
			totals[line.IngredientID] += line.Quantity * float64(item.Quantity)
		}
	}
	deductions := make([]inventory.Deduction, 0, len(totals))
	for id, amount := range totals {
		deductions = append(deductions, inventory.Deduction{IngredientID: id, Amount: amount})
	}
	inventory.SortDeductions(deductions)
	return deductions, nil
}
