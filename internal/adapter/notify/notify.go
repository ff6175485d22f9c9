// Package notify holds the local notifier implementations. Services call
// notifiers fire-and-forget and drop their errors, so none of these may
// block the mutation that triggered them.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// Noop is the default notifier for headless and test environments.
type Noop struct{}

func (Noop) OrderCreated(ctx context.Context, ev interfaces.OrderCreatedEvent) error {
	return nil
}

func (Noop) StatusChanged(ctx context.Context, ev interfaces.StatusChangedEvent) error {
	return nil
}

// Bell rings the terminal bell when an order is created. Status changes
// are silent.
type Bell struct {
	Out io.Writer
}

func NewBell() *Bell {
	return &Bell{Out: os.Stdout}
}

func (b *Bell) OrderCreated(ctx context.Context, ev interfaces.OrderCreatedEvent) error {
	if _, err := fmt.Fprint(b.Out, "\a"); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}
	return nil
}

func (b *Bell) StatusChanged(ctx context.Context, ev interfaces.StatusChangedEvent) error {
	return nil
}

// Multi fans an event out to every notifier and joins their errors. One
// failing notifier never stops the others.
type Multi []interfaces.Notifier

func (m Multi) OrderCreated(ctx context.Context, ev interfaces.OrderCreatedEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.OrderCreated(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) StatusChanged(ctx context.Context, ev interfaces.StatusChangedEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.StatusChanged(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
