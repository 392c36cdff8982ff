package orders

import "sync"

// ChangeType identifies what happened to the order book
type ChangeType string

const (
	ChangeOrderPlaced  ChangeType = "order_placed"
	ChangeItemStatus   ChangeType = "item_status"
	ChangeOrderRemoved ChangeType = "order_removed"
)

// Change is a notification that the order book mutated. Consumers
// re-read the book; the change carries identity, not state.
type Change struct {
	Type    ChangeType `json:"type"`
	OrderID string     `json:"orderId"`
}

// Notifier fans order-book changes out to subscribers. Sends never
// block: a subscriber that falls behind loses notifications, not the
// book's consistency, since consumers re-read on every change.
type Notifier struct {
	mu   sync.Mutex
	subs map[<-chan Change]chan Change
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[<-chan Change]chan Change)}
}

// Subscribe registers a new listener channel
func (n *Notifier) Subscribe() <-chan Change {
	ch := make(chan Change, 16)
	n.mu.Lock()
	n.subs[ch] = ch
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel
func (n *Notifier) Unsubscribe(ch <-chan Change) {
	n.mu.Lock()
	if send, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(send)
	}
	n.mu.Unlock()
}

// Publish delivers a change to every subscriber without blocking
func (n *Notifier) Publish(change Change) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, send := range n.subs {
		select {
		case send <- change:
		default:
		}
	}
}
