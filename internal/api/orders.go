package api

import (
	"net/http"
	"time"

	"comanda/internal/models"
	"comanda/internal/orders"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest is a mixed cart against one table. The server
// splits it by the recipes' prep station, so a cart with food and
// drinks produces one kitchen order and one bar order.
type PlaceOrderRequest struct {
	TableNumber int           `json:"tableNumber"`
	Items       []orders.Line `json:"items"`
}

// OrderView is an order plus the read-side fields the displays need
type OrderView struct {
	models.Order
	Ready   bool           `json:"ready"`
	Fresh   bool           `json:"fresh"`
	Urgency models.Urgency `json:"urgency"`
}

func viewOrder(o models.Order, now time.Time) OrderView {
	return OrderView{
		Order:   o,
		Ready:   o.Ready(),
		Fresh:   o.Fresh(now),
		Urgency: o.Urgency(now),
	}
}

// PlaceOrder handles POST /orders: verifies the table is free, splits
// the cart by destination, places one order per destination actually
// present and marks the table occupied. The table flips only after a
// successful placement, never implicitly.
func (s *Server) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
		return
	}

	table, err := s.registry.Get(req.TableNumber)
	if err != nil {
		fail(c, err)
		return
	}
	if table.Status != models.TableStatusFree {
		fail(c, models.ErrTableUnavailable)
		return
	}

	split := make(map[models.Destination][]orders.Line)
	for _, line := range req.Items {
		recipe, err := s.catalog.Recipe(line.RecipeID)
		if err != nil {
			fail(c, err)
			return
		}
		dest := recipe.Category.Destination()
		split[dest] = append(split[dest], line)
	}

	placed := make([]models.Order, 0, len(split))
	for _, dest := range []models.Destination{models.DestinationKitchen, models.DestinationBar} {
		lines, ok := split[dest]
		if !ok {
			continue
		}
		order, err := s.book.Place(req.TableNumber, dest, lines)
		if err != nil {
			fail(c, err)
			return
		}
		placed = append(placed, order)
	}

	if err := s.registry.SetStatus(req.TableNumber, models.TableStatusOccupied); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// ListOrders handles GET /orders?destination=kitchen|bar
func (s *Server) ListOrders(c *gin.Context) {
	destination := models.Destination(c.Query("destination"))
	if destination != "" && !destination.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown destination " + string(destination)})
		return
	}
	now := time.Now()
	active := s.book.ListActive(destination)
	views := make([]OrderView, 0, len(active))
	for _, o := range active {
		views = append(views, viewOrder(o, now))
	}
	c.JSON(http.StatusOK, views)
}

// GetOrder handles GET /orders/:id
func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.book.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOrder(order, time.Now()))
}

// GetOrderTicket handles GET /orders/:id/ticket, returning the
// plain-text kitchen ticket.
func (s *Server) GetOrderTicket(c *gin.Context) {
	order, err := s.book.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, order.Ticket())
}

// SetItemStatus handles PUT /orders/:id/items/:itemId/status
func (s *Server) SetItemStatus(c *gin.Context) {
	var req struct {
		Status models.ItemStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.book.SetItemStatus(c.Param("id"), c.Param("itemId"), req.Status); err != nil {
		fail(c, err)
		return
	}
	order, err := s.book.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOrder(order, time.Now()))
}

// CompleteOrder handles POST /orders/:id/complete: deducts the order's
// ingredients from stock, retires it and returns the completion event.
func (s *Server) CompleteOrder(c *gin.Context) {
	event, err := s.coordinator.Complete(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
