package amqp

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

func newHandler() *EventHandler {
	return NewEventHandler(logger.NewWithWriter("test", io.Discard))
}

func marshalEvent(t *testing.T, event interfaces.Event) []byte {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestHandleOrderCreated(t *testing.T) {
	body := marshalEvent(t, interfaces.Event{
		Kind: interfaces.EventKindOrderCreated,
		OrderCreated: &interfaces.OrderCreatedEvent{
			OrderID:      "o1",
			CustomerName: "Sam",
			TotalPrice:   12.5,
		},
	})
	assert.NoError(t, newHandler().HandleEvent(context.Background(), body))
}

func TestHandleStatusChanged(t *testing.T) {
	body := marshalEvent(t, interfaces.Event{
		Kind: interfaces.EventKindStatusChanged,
		StatusChanged: &interfaces.StatusChangedEvent{
			OrderID:   "o1",
			OldStatus: domain.StatusNew,
			NewStatus: domain.StatusWorking,
			ChangedBy: "Wild admin",
		},
	})
	assert.NoError(t, newHandler().HandleEvent(context.Background(), body))
}

func TestHandleEventErrors(t *testing.T) {
	h := newHandler()
	ctx := context.Background()

	assert.Error(t, h.HandleEvent(ctx, []byte(`{not json`)))
	assert.Error(t, h.HandleEvent(ctx, marshalEvent(t, interfaces.Event{Kind: "order_shipped"})))
	assert.Error(t, h.HandleEvent(ctx, marshalEvent(t, interfaces.Event{Kind: interfaces.EventKindOrderCreated})))
}
