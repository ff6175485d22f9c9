package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

const nonAdminNote = "Status changes available for Admin only."

const historyEmptyMessage = "No completed or canceled orders yet."

// Service owns the order lifecycle: creation from form input, the
// admin-gated status workflow, and the dashboard/history read models.
type Service struct {
	repo     interfaces.OrderRepository
	notifier interfaces.Notifier
	logger   logger.Logger
}

func NewService(repo interfaces.OrderRepository, notifier interfaces.Notifier, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, sess *domain.Session, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	order, err := domain.NewOrder(cmd.CustomerName, cmd.Phone, cmd.Address, cmd.Items, cmd.Notes, cmd.TotalPrice)
	if err != nil {
		s.logger.Debug("order_rejected", "Order form validation failed", "", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	order.ID = uuid.NewString()

	if err := s.repo.Add(ctx, order); err != nil {
		s.logger.Error("order_create_failed", "Failed to persist order", order.ID, nil, err)
		return nil, err
	}

	s.logger.Info("order_created", fmt.Sprintf("Order %s created", order.ID), order.ID, map[string]any{
		"customer_name": order.CustomerName,
		"total_price":   order.TotalPrice,
	})

	// Fire and forget: the chime must never block or fail order creation.
	ev := interfaces.OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalPrice:   order.TotalPrice,
		CreatedAt:    order.CreatedAt,
	}
	go func(ctx context.Context) {
		if err := s.notifier.OrderCreated(ctx, ev); err != nil {
			s.logger.Debug("notify_failed", "Order-created notification dropped", ev.OrderID, map[string]any{
				"error": err.Error(),
			})
		}
	}(context.WithoutCancel(ctx))

	return order, nil
}

// UpdateStatus replaces an order's status. Non-admin calls and unknown ids
// are silently ignored; re-opening a completed or canceled order is
// permitted.
func (s *Service) UpdateStatus(ctx context.Context, sess *domain.Session, orderID string, status domain.Status) error {
	if !sess.IsAdmin() {
		s.logger.Debug("status_change_ignored", "Non-admin status change ignored", orderID, nil)
		return nil
	}
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}

	previous, found, err := s.repo.UpdateStatus(ctx, orderID, status, sess.DisplayName)
	if err != nil {
		s.logger.Error("status_change_failed", "Failed to update order status", orderID, nil, err)
		return err
	}
	if !found {
		s.logger.Debug("status_change_ignored", "Status change for unknown order ignored", orderID, nil)
		return nil
	}

	s.logger.Info("status_changed", fmt.Sprintf("Order %s: %s -> %s", orderID, previous, status), orderID, map[string]any{
		"old_status": previous,
		"new_status": status,
	})

	ev := interfaces.StatusChangedEvent{
		OrderID:   orderID,
		OldStatus: previous,
		NewStatus: status,
		ChangedBy: sess.DisplayName,
		Timestamp: time.Now(),
	}
	go func(ctx context.Context) {
		if err := s.notifier.StatusChanged(ctx, ev); err != nil {
			s.logger.Debug("notify_failed", "Status-changed notification dropped", ev.OrderID, map[string]any{
				"error": err.Error(),
			})
		}
	}(context.WithoutCancel(ctx))

	return nil
}

func (s *Service) Dashboard(ctx context.Context, sess *domain.Session) (*interfaces.DashboardView, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	active, done := domain.Partition(orders)
	view := &interfaces.DashboardView{
		Active:  cards(active),
		Done:    cards(done),
		CanEdit: sess.IsAdmin(),
	}
	if !view.CanEdit {
		view.Note = nonAdminNote
	}
	return view, nil
}

func (s *Service) History(ctx context.Context, sess *domain.Session) (*interfaces.HistoryView, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_, done := domain.Partition(orders)
	totalCompleted, totalRevenue := domain.Summarize(done)

	view := &interfaces.HistoryView{
		Rows:             cards(done),
		TotalCompleted:   totalCompleted,
		TotalRevenue:     totalRevenue,
		RevenueFormatted: fmt.Sprintf("$%.2f", totalRevenue),
		CanEdit:          sess.IsAdmin(),
	}
	if len(view.Rows) == 0 {
		view.EmptyMessage = historyEmptyMessage
	}
	return view, nil
}

func (s *Service) StatusHistory(ctx context.Context, orderID string) ([]domain.StatusChange, error) {
	return s.repo.StatusHistory(ctx, orderID)
}

func cards(orders []domain.Order) []interfaces.OrderCard {
	out := make([]interfaces.OrderCard, len(orders))
	for i, o := range orders {
		out[i] = interfaces.OrderCard{
			Order:          o,
			Badge:          o.Status.Badge(),
			TotalFormatted: o.FormatTotal(),
		}
	}
	return out
}

var _ interfaces.OrderService = (*Service)(nil)
