package models

import (
	"fmt"
	"strings"
	"time"
)

// ItemStatus represents the preparation state of a single order item.
// Transitions are deliberately unconstrained: staff may move an item
// backward (e.g. ready back to pending after a dropped plate), so no
// transition table is enforced.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusReady      ItemStatus = "ready"
)

// Valid reports whether the status is a known item state
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusReady:
		return true
	}
	return false
}

// Destination represents the prep station an order is routed to
type Destination string

const (
	DestinationKitchen Destination = "kitchen"
	DestinationBar     Destination = "bar"
)

// Valid reports whether the destination is a known prep station
func (d Destination) Valid() bool {
	return d == DestinationKitchen || d == DestinationBar
}

// OrderItem represents one line of an order. Name is a snapshot of the
// recipe name at placement time.
type OrderItem struct {
	ID       string     `json:"id"`
	RecipeID string     `json:"recipeId"`
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	Notes    string     `json:"notes,omitempty"`
	Status   ItemStatus `json:"status"`
}

// Order represents an active single-destination order against a table
type Order struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Destination Destination `json:"destination"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderItem `json:"items"`
}

// Ready reports whether every item of the order has been prepared
func (o *Order) Ready() bool {
	for _, item := range o.Items {
		if item.Status != ItemStatusReady {
			return false
		}
	}
	return true
}

// Fresh reports whether the order still needs first attention: younger
// than 30 seconds with no item started yet.
func (o *Order) Fresh(now time.Time) bool {
	if now.Sub(o.CreatedAt) >= 30*time.Second {
		return false
	}
	for _, item := range o.Items {
		if item.Status != ItemStatusPending {
			return false
		}
	}
	return true
}

// Urgency represents how long an order has been waiting
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

// Urgency classifies the order's age for the display: warning after
// five minutes, critical after ten.
func (o *Order) Urgency(now time.Time) Urgency {
	age := now.Sub(o.CreatedAt)
	switch {
	case age >= 10*time.Minute:
		return UrgencyCritical
	case age >= 5*time.Minute:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// Ticket renders the order as a plain-text kitchen ticket
func (o *Order) Ticket() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TABLE %d\n", o.TableNumber)
	fmt.Fprintf(&b, "Time: %s\n", o.CreatedAt.Format("15:04:05"))
	b.WriteString("----------------------------------------\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.Name)
		if item.Notes != "" {
			fmt.Fprintf(&b, " (%s)", item.Notes)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
