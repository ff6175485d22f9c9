package interfaces

import (
	"context"
	"time"

	"github.com/wildfnc/orderdesk/internal/domain"
)

const (
	EventKindOrderCreated  = "order_created"
	EventKindStatusChanged = "status_changed"
)

// Event is the envelope published to the events exchange. Exactly one of
// the payload fields is set, named by Kind.
type Event struct {
	Kind          string              `json:"kind"`
	OrderCreated  *OrderCreatedEvent  `json:"order_created,omitempty"`
	StatusChanged *StatusChangedEvent `json:"status_changed,omitempty"`
}

type OrderCreatedEvent struct {
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	TotalPrice   float64 `json:"total_price"`
	CreatedAt    int64   `json:"created_at"`
}

type StatusChangedEvent struct {
	OrderID   string        `json:"order_id"`
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	ChangedBy string        `json:"changed_by"`
	Timestamp time.Time     `json:"timestamp"`
}

// Notifier is the fire-and-forget notification capability. Callers never
// block on it and swallow its errors; implementations must tolerate that.
type Notifier interface {
	OrderCreated(ctx context.Context, ev OrderCreatedEvent) error
	StatusChanged(ctx context.Context, ev StatusChangedEvent) error
}

type EventHandler func(ctx context.Context, body []byte) error

// EventConsumer delivers raw event bodies from the events exchange.
type EventConsumer interface {
	ConsumeEvents(ctx context.Context, handler EventHandler) error
}
