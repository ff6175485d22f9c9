package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/wildfnc/orderdesk/internal/config"
)

// eventsExchange is the fanout exchange carrying order events. Every bound
// subscriber sees every event.
const eventsExchange = "orderdesk_events"

type Connection interface {
	Channel() (Channel, error)
	Close() error
	IsClosed() bool
}

// Channel narrows amqp091's channel to what this app uses.
type Channel interface {
	DeclareEventsExchange() error
	DeclareSubscriberQueue() (string, error)
	Publish(ctx context.Context, body []byte) error
	Consume(queue string) (<-chan amqp.Delivery, error)
	NotifyClose() <-chan *amqp.Error
	Close() error
}

type amqpConnection struct {
	conn   *amqp.Connection
	mu     sync.RWMutex
	closed bool
}

type amqpChannel struct {
	ch *amqp.Channel
}

func Connect(cfg config.RabbitMQConfig) (Connection, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return &amqpConnection{conn: conn}, nil
}

func (c *amqpConnection) Channel() (Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &amqpChannel{ch: ch}, nil
}

func (c *amqpConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

func (c *amqpConnection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed || c.conn.IsClosed()
}

func (ch *amqpChannel) DeclareEventsExchange() error {
	return ch.ch.ExchangeDeclare(eventsExchange, "fanout", true, false, false, false, nil)
}

// DeclareSubscriberQueue declares an exclusive auto-deleted queue bound to
// the events exchange and returns its generated name.
func (ch *amqpChannel) DeclareSubscriberQueue() (string, error) {
	q, err := ch.ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return "", fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.ch.QueueBind(q.Name, "", eventsExchange, false, nil); err != nil {
		return "", fmt.Errorf("failed to bind queue: %w", err)
	}
	return q.Name, nil
}

func (ch *amqpChannel) Publish(ctx context.Context, body []byte) error {
	return ch.ch.PublishWithContext(ctx, eventsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (ch *amqpChannel) Consume(queue string) (<-chan amqp.Delivery, error) {
	return ch.ch.Consume(queue, "", true, false, false, false, nil)
}

func (ch *amqpChannel) NotifyClose() <-chan *amqp.Error {
	return ch.ch.NotifyClose(make(chan *amqp.Error, 1))
}

func (ch *amqpChannel) Close() error {
	return ch.ch.Close()
}
