package simulator

import (
	"context"
	"log"
	"math/rand"
	"time"

	"comanda/internal/catalog"
	"comanda/internal/models"
	"comanda/internal/orders"
)

// Simulator periodically synthesizes orders, standing in for a second
// terminal on the floor. It goes through the same Place path as any
// caller; the book never assumes it is the only order source.
type Simulator struct {
	book       *orders.Book
	catalog    *catalog.Store
	interval   time.Duration
	tableCount int
	rng        *rand.Rand
}

// New creates a simulator placing orders against tables 1..tableCount
func New(book *orders.Book, cat *catalog.Store, interval time.Duration, tableCount int) *Simulator {
	return &Simulator{
		book:       book,
		catalog:    cat,
		interval:   interval,
		tableCount: tableCount,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run places one random order per tick until the context is canceled
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.placeRandomOrder()
		}
	}
}

func (s *Simulator) placeRandomOrder() {
	destination := models.DestinationKitchen
	if s.rng.Float64() < 0.4 {
		destination = models.DestinationBar
	}

	var candidates []models.Recipe
	for _, r := range s.catalog.Recipes() {
		if r.Category.Destination() == destination {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return
	}

	count := s.rng.Intn(3) + 1
	lines := make([]orders.Line, 0, count)
	for i := 0; i < count; i++ {
		recipe := candidates[s.rng.Intn(len(candidates))]
		lines = append(lines, orders.Line{RecipeID: recipe.ID, Quantity: 1})
	}

	table := s.rng.Intn(s.tableCount) + 1
	order, err := s.book.Place(table, destination, lines)
	if err != nil {
		log.Printf("simulator: place order failed: %v", err)
		return
	}
	log.Printf("simulator: placed %s order %s for table %d (%d items)",
		order.Destination, order.ID, order.TableNumber, len(order.Items))
}
