package interfaces

import (
	"context"

	"github.com/wildfnc/orderdesk/internal/domain"
)

// OrderRepository stores the order collection newest-first.
type OrderRepository interface {
	// List returns every order, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	// Add prepends the order to the collection and persists it.
	Add(ctx context.Context, order *domain.Order) error
	// UpdateStatus replaces the status of the order with the given id and
	// returns the previous status. found is false when no order matches;
	// that is not an error.
	UpdateStatus(ctx context.Context, id string, status domain.Status, changedBy string) (previous domain.Status, found bool, err error)
	// StatusHistory returns the status-change log for an order. Drivers
	// without a log return domain.ErrHistoryUnavailable.
	StatusHistory(ctx context.Context, id string) ([]domain.StatusChange, error)
}
