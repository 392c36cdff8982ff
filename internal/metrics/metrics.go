package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operational counters for the service. Exposed on the separate
// metrics listener via promhttp.
var (
	OrdersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comanda_orders_placed_total",
		Help: "Orders placed, by destination.",
	}, []string{"destination"})

	OrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comanda_orders_completed_total",
		Help: "Orders completed and retired from the active set.",
	})

	ItemStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comanda_item_status_changes_total",
		Help: "Item status transitions, by resulting status.",
	}, []string{"status"})

	StockDeducted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comanda_stock_deducted_total",
		Help: "Stock deducted on completion, by ingredient.",
	}, []string{"ingredient"})

	ActiveOrders = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "comanda_active_orders",
		Help: "Orders currently in the active set, by destination.",
	}, []string{"destination"})

	SuggestionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comanda_suggestion_requests_total",
		Help: "Recipe suggestion calls, by outcome.",
	}, []string{"outcome"})
)
