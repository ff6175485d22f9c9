package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// createdBy tags the initial log entry written when an order is inserted.
const createdBy = "order-form"

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customer_name, phone, address, items, notes, total_price, status, created_at
		FROM orders
		ORDER BY seq DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Items,
			&o.Notes, &o.TotalPrice, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *orderRepository) Add(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, customer_name, phone, address, items, notes, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.Exec(ctx, query,
		order.ID, order.CustomerName, order.Phone, order.Address, order.Items,
		order.Notes, order.TotalPrice, order.Status, order.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, logQuery, order.ID, order.Status, createdBy, time.Now()); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, changedBy string) (domain.Status, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var previous domain.Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&previous)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read order status: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id); err != nil {
		return "", false, fmt.Errorf("failed to update order status: %w", err)
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, logQuery, id, status, changedBy, time.Now()); err != nil {
		return "", false, fmt.Errorf("failed to log status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", false, err
	}
	return previous, true, nil
}

func (r *orderRepository) StatusHistory(ctx context.Context, id string) ([]domain.StatusChange, error) {
	query := `
		SELECT order_id, status, changed_by, changed_at
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var changes []domain.StatusChange
	for rows.Next() {
		var c domain.StatusChange
		if err := rows.Scan(&c.OrderID, &c.Status, &c.ChangedBy, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status change: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, nil
}
