package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// notifier broadcasts order events on the fanout exchange. Callers treat it
// as fire-and-forget; a failed publish is just an error for them to drop.
type notifier struct {
	conn Connection
}

func NewNotifier(conn Connection) interfaces.Notifier {
	return &notifier{conn: conn}
}

func (n *notifier) OrderCreated(ctx context.Context, ev interfaces.OrderCreatedEvent) error {
	return n.publish(ctx, interfaces.Event{
		Kind:         interfaces.EventKindOrderCreated,
		OrderCreated: &ev,
	})
}

func (n *notifier) StatusChanged(ctx context.Context, ev interfaces.StatusChangedEvent) error {
	return n.publish(ctx, interfaces.Event{
		Kind:          interfaces.EventKindStatusChanged,
		StatusChanged: &ev,
	})
}

func (n *notifier) publish(ctx context.Context, event interfaces.Event) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.DeclareEventsExchange(); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := ch.Publish(ctx, body); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
