package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Order represents a single customer purchase record tracked through the
// five-state status workflow.
type Order struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Items        string  `json:"items"`
	Notes        string  `json:"notes,omitempty"`
	TotalPrice   float64 `json:"total_price"`
	Status       Status  `json:"status"`
	CreatedAt    int64   `json:"created_at"` // epoch milliseconds
}

// NewOrder builds an order from raw form input. All string fields are
// trimmed; totalPrice is the raw text as entered. The returned order has
// status "new" and the current creation timestamp, but no id yet.
func NewOrder(customerName, phone, address, items, notes, totalPrice string) (*Order, error) {
	order := &Order{
		CustomerName: strings.TrimSpace(customerName),
		Phone:        strings.TrimSpace(phone),
		Address:      strings.TrimSpace(address),
		Items:        strings.TrimSpace(items),
		Notes:        strings.TrimSpace(notes),
		Status:       StatusNew,
		CreatedAt:    time.Now().UnixMilli(),
	}

	rawPrice := strings.TrimSpace(totalPrice)
	if order.CustomerName == "" || order.Phone == "" || order.Address == "" ||
		order.Items == "" || rawPrice == "" {
		return nil, ErrMissingFields
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, ErrInvalidPrice
	}
	order.TotalPrice = price

	return order, nil
}

// IsActive reports whether the order still needs attention on the dashboard.
func (o *Order) IsActive() bool {
	return !o.Status.IsTerminal()
}

// FormatTotal renders the total price as displayed, e.g. "$12.50".
func (o *Order) FormatTotal() string {
	return fmt.Sprintf("$%.2f", o.TotalPrice)
}

// Partition splits orders into active and done, preserving order.
func Partition(orders []Order) (active, done []Order) {
	for _, o := range orders {
		if o.IsActive() {
			active = append(active, o)
		} else {
			done = append(done, o)
		}
	}
	return active, done
}

// Summarize computes the history aggregates: the number of completed orders
// and the revenue over completed orders only. Canceled orders never count
// toward revenue.
func Summarize(orders []Order) (totalCompleted int, totalRevenue float64) {
	for _, o := range orders {
		if o.Status == StatusCompleted {
			totalCompleted++
			totalRevenue += o.TotalPrice
		}
	}
	return totalCompleted, totalRevenue
}

// ValidationError marks user-correctable input problems. The message is
// shown as-is; nothing is saved when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrMissingFields = &ValidationError{Reason: "please fill in all required fields"}
	ErrInvalidPrice  = &ValidationError{Reason: "enter a valid total price"}
	ErrInvalidStatus = &ValidationError{Reason: "unknown order status"}
)
