package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

const reconnectDelay = 5 * time.Second

type consumer struct {
	conn Connection
	log  logger.Logger
}

func NewConsumer(conn Connection, log logger.Logger) interfaces.EventConsumer {
	return &consumer{conn: conn, log: log}
}

// ConsumeEvents delivers every event from the fanout exchange to handler,
// reconnecting with a fixed delay when the channel drops. Handler errors
// are ignored; events are auto-acked.
func (c *consumer) ConsumeEvents(ctx context.Context, handler interfaces.EventHandler) error {
	for {
		err := c.consumeOnce(ctx, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.log.Warn("consumer_disconnected", "Event consumer disconnected, reconnecting", "", map[string]any{
			"error":    err.Error(),
			"delay_ms": reconnectDelay.Milliseconds(),
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *consumer) consumeOnce(ctx context.Context, handler interfaces.EventHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.DeclareEventsExchange(); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := ch.DeclareSubscriberQueue()
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(queue)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return nil

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}
			_ = handler(ctx, msg.Body)
		}
	}
}
