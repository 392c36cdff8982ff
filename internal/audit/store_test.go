package audit

import (
	"path/filepath"
	"testing"
	"time"

	"comanda/internal/completion"
	"comanda/internal/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	events := []completion.Event{
		{
			OrderID:     "order-1",
			TableNumber: 4,
			CompletedAt: base,
			Deductions: []inventory.Deduction{
				{IngredientID: "ing-a", Amount: 2},
				{IngredientID: "ing-b", Amount: 0.5},
			},
		},
		{
			OrderID:     "order-2",
			TableNumber: 9,
			CompletedAt: base.Add(time.Minute),
			Deductions:  []inventory.Deduction{{IngredientID: "ing-a", Amount: 1}},
		},
	}
	for _, event := range events {
		require.NoError(t, store.RecordCompletion(event))
	}

	records, err := store.Recent(50)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, "order-2", records[0].OrderID)
	assert.Equal(t, 9, records[0].TableNumber)
	require.Len(t, records[0].Deductions, 1)

	assert.Equal(t, "order-1", records[1].OrderID)
	require.Len(t, records[1].Deductions, 2)
	assert.Equal(t, "ing-a", records[1].Deductions[0].IngredientID)
	assert.Equal(t, 2.0, records[1].Deductions[0].Amount)
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordCompletion(completion.Event{
			OrderID:     "order",
			TableNumber: i,
			CompletedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)
	records, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
