package completion

import (
	"sync"
	"testing"

	"comanda/internal/catalog"
	"comanda/internal/inventory"
	"comanda/internal/models"
	"comanda/internal/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *memRecorder) RecordCompletion(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

type harness struct {
	book        *orders.Book
	ledger      *inventory.Ledger
	coordinator *Coordinator
	recorder    *memRecorder
	ingredient  models.Ingredient
	recipe      models.Recipe
}

// One ingredient at stock 100, one recipe costing 2 per unit.
func newHarness(t *testing.T, stockPolicy inventory.StockPolicy, policy Policy) *harness {
	t.Helper()
	cat := catalog.NewStore()

	ing, err := cat.AddIngredient("Widget", models.UnitPiece, 100)
	require.NoError(t, err)
	recipe, err := cat.AddRecipe("Widget Plate", "", models.CategoryKitchen,
		[]models.RecipeIngredient{{IngredientID: ing.ID, Quantity: 2}})
	require.NoError(t, err)

	book := orders.NewBook(cat)
	ledger := inventory.NewLedger(cat.Ingredients(), stockPolicy)
	recorder := &memRecorder{}
	return &harness{
		book:        book,
		ledger:      ledger,
		coordinator: NewCoordinator(book, cat, ledger, recorder, policy),
		recorder:    recorder,
		ingredient:  ing,
		recipe:      recipe,
	}
}

func (h *harness) place(t *testing.T, quantity int) models.Order {
	t.Helper()
	order, err := h.book.Place(7, models.DestinationKitchen,
		[]orders.Line{{RecipeID: h.recipe.ID, Quantity: quantity}})
	require.NoError(t, err)
	return order
}

func (h *harness) readyAll(t *testing.T, order models.Order) {
	t.Helper()
	for _, item := range order.Items {
		require.NoError(t, h.book.SetItemStatus(order.ID, item.ID, models.ItemStatusReady))
	}
}

func TestComplete(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)
	order := h.place(t, 3)
	h.readyAll(t, order)

	event, err := h.coordinator.Complete(order.ID)
	require.NoError(t, err)

	// 100 - 2*3 = 94
	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 94.0, stock)

	assert.Empty(t, h.book.ListActive(""))

	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, 7, event.TableNumber)
	require.Len(t, event.Deductions, 1)
	assert.Equal(t, h.ingredient.ID, event.Deductions[0].IngredientID)
	assert.Equal(t, 6.0, event.Deductions[0].Amount)

	require.Len(t, h.recorder.events, 1)
	assert.Equal(t, event, h.recorder.events[0])
}

func TestCompleteIdempotent(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)
	order := h.place(t, 3)

	_, err := h.coordinator.Complete(order.ID)
	require.NoError(t, err)

	// Second completion finds nothing and deducts nothing
	_, err = h.coordinator.Complete(order.ID)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 94.0, stock)
	assert.Len(t, h.recorder.events, 1)
}

func TestCompleteUnknownOrder(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)
	_, err := h.coordinator.Complete("missing")
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

func TestCompleteLenientAllowsUnreadyItems(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)
	order := h.place(t, 1)

	// No item is ready; the expediter forces it through anyway
	_, err := h.coordinator.Complete(order.ID)
	require.NoError(t, err)

	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 98.0, stock)
}

func TestCompleteStrictRequiresReady(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyStrict)
	order := h.place(t, 1)

	_, err := h.coordinator.Complete(order.ID)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	// Order stays active, stock untouched
	assert.Len(t, h.book.ListActive(""), 1)
	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stock)

	h.readyAll(t, order)
	_, err = h.coordinator.Complete(order.ID)
	require.NoError(t, err)
}

func TestCompleteInsufficientStock(t *testing.T) {
	h := newHarness(t, inventory.PolicyReject, PolicyLenient)
	order := h.place(t, 51) // needs 102, have 100

	_, err := h.coordinator.Complete(order.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// Failed completion leaves the order active and stock unchanged
	assert.Len(t, h.book.ListActive(""), 1)
	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stock)
	assert.Empty(t, h.recorder.events)
}

func TestCompleteAggregatesAcrossItems(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)

	order, err := h.book.Place(2, models.DestinationKitchen, []orders.Line{
		{RecipeID: h.recipe.ID, Quantity: 2},
		{RecipeID: h.recipe.ID, Quantity: 1},
	})
	require.NoError(t, err)

	event, err := h.coordinator.Complete(order.ID)
	require.NoError(t, err)

	// 2*2 + 2*1 folded into one deduction line
	require.Len(t, event.Deductions, 1)
	assert.Equal(t, 6.0, event.Deductions[0].Amount)

	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 94.0, stock)
}

func TestCompleteConcurrentDuplicates(t *testing.T) {
	h := newHarness(t, inventory.PolicyAllowNegative, PolicyLenient)
	order := h.place(t, 3)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.coordinator.Complete(order.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, models.ErrOrderNotFound)
		}
	}
	assert.Equal(t, 1, succeeded)

	// Exactly one deduction happened
	stock, err := h.ledger.Stock(h.ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 94.0, stock)
}
