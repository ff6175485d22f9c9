package localstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// orderRepository keeps the whole order collection as one JSON document
// under the wf_orders key, rewritten on every change. The mutex serializes
// concurrent HTTP requests over the load-modify-save cycle; at this data
// scale a linear scan and a full rewrite are fine.
type orderRepository struct {
	store interfaces.KVStore
	mu    sync.Mutex
}

func NewOrderRepository(store interfaces.KVStore) interfaces.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *orderRepository) Add(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return err
	}

	// Newest first.
	orders = append([]domain.Order{*order}, orders...)
	return r.save(ctx, orders)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, changedBy string) (domain.Status, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return "", false, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		previous := orders[i].Status
		orders[i].Status = status
		if err := r.save(ctx, orders); err != nil {
			return "", false, err
		}
		return previous, true, nil
	}
	return "", false, nil
}

func (r *orderRepository) StatusHistory(ctx context.Context, id string) ([]domain.StatusChange, error) {
	return nil, domain.ErrHistoryUnavailable
}

func (r *orderRepository) load(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if _, err := r.store.Get(ctx, interfaces.KeyOrders, &orders); err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) save(ctx context.Context, orders []domain.Order) error {
	if err := r.store.Set(ctx, interfaces.KeyOrders, orders); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}
