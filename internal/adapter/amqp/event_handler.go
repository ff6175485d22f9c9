package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// EventHandler renders order events for the notification subscriber.
type EventHandler struct {
	logger logger.Logger
}

func NewEventHandler(logger logger.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleEvent(ctx context.Context, body []byte) error {
	var event interfaces.Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Error("event_parse_failed", "Failed to parse event", "", nil, err)
		return err
	}

	switch event.Kind {
	case interfaces.EventKindOrderCreated:
		ev := event.OrderCreated
		if ev == nil {
			return fmt.Errorf("order_created event without payload")
		}
		h.logger.Info("order_created", fmt.Sprintf("New order %s", ev.OrderID), ev.OrderID, map[string]any{
			"customer_name": ev.CustomerName,
			"total_price":   ev.TotalPrice,
		})
		fmt.Printf("New order %s for %s ($%.2f)\n", ev.OrderID, ev.CustomerName, ev.TotalPrice)

	case interfaces.EventKindStatusChanged:
		ev := event.StatusChanged
		if ev == nil {
			return fmt.Errorf("status_changed event without payload")
		}
		h.logger.Info("status_changed", fmt.Sprintf("Order %s status changed", ev.OrderID), ev.OrderID, map[string]any{
			"old_status": ev.OldStatus,
			"new_status": ev.NewStatus,
			"changed_by": ev.ChangedBy,
		})
		fmt.Printf("Order %s: status changed from %q to %q by %s\n",
			ev.OrderID, ev.OldStatus, ev.NewStatus, ev.ChangedBy)

	default:
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
	return nil
}
