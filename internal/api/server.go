package api

import (
	"errors"
	"net/http"

	"comanda/internal/audit"
	"comanda/internal/catalog"
	"comanda/internal/completion"
	"comanda/internal/inventory"
	"comanda/internal/models"
	"comanda/internal/orders"
	"comanda/internal/suggest"
	"comanda/internal/tables"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP surface over the in-memory stores. Handlers return
// plain data snapshots; screens poll or follow the /ws change feed and
// re-render on each mutation.
type Server struct {
	Router *gin.Engine

	book        *orders.Book
	catalog     *catalog.Store
	ledger      *inventory.Ledger
	registry    *tables.Registry
	coordinator *completion.Coordinator
	suggester   *suggest.Suggester
	audit       *audit.Store
}

// NewServer wires the stores into a router. suggester and auditStore
// may be nil when those features are not configured.
func NewServer(book *orders.Book, cat *catalog.Store, ledger *inventory.Ledger, registry *tables.Registry, coordinator *completion.Coordinator, suggester *suggest.Suggester, auditStore *audit.Store) *Server {
	s := &Server{
		Router:      gin.Default(),
		book:        book,
		catalog:     cat,
		ledger:      ledger,
		registry:    registry,
		coordinator: coordinator,
		suggester:   suggester,
		audit:       auditStore,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.Router.GET("/ws", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	{
		// Order lifecycle
		v1.POST("/orders", s.PlaceOrder)
		v1.GET("/orders", s.ListOrders)
		v1.GET("/orders/:id", s.GetOrder)
		v1.GET("/orders/:id/ticket", s.GetOrderTicket)
		v1.PUT("/orders/:id/items/:itemId/status", s.SetItemStatus)
		v1.POST("/orders/:id/complete", s.CompleteOrder)

		// Catalog
		v1.GET("/recipes", s.ListRecipes)
		v1.POST("/recipes", s.AddRecipe)
		v1.GET("/ingredients", s.ListIngredients)

		// Inventory
		v1.GET("/stock", s.GetStock)
		v1.POST("/ingredients/:id/restock", s.Restock)

		// Tables
		v1.GET("/tables", s.ListTables)
		v1.GET("/tables/free", s.ListFreeTables)
		v1.PUT("/tables/:number/status", s.SetTableStatus)

		// Audit and suggestions
		v1.GET("/completions", s.ListCompletions)
		v1.POST("/suggestions", s.SuggestRecipe)
	}
}

// fail translates a store error into an HTTP response
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrRecipeNotFound),
		errors.Is(err, models.ErrIngredientNotFound),
		errors.Is(err, models.ErrTableNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidRecipe),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrTableUnavailable):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
