package interfaces

import (
	"context"

	"github.com/wildfnc/orderdesk/internal/domain"
)

// CredentialVerifier checks a username/password pair and produces the
// matching session identity (without a token). Real deployments can swap in
// a proper identity provider without touching call sites.
type CredentialVerifier interface {
	Verify(username, password string) (domain.Session, bool)
}

type AuthService interface {
	// Authenticate validates credentials, mints a session token, persists
	// the session and returns it. A mismatch yields
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (domain.Session, error)
	// Current returns the restored session, or nil when logged out.
	Current(ctx context.Context) (*domain.Session, error)
	// Logout clears the persisted session.
	Logout(ctx context.Context) error
	// VerifyToken parses and verifies a session token.
	VerifyToken(token string) (domain.Session, error)
}

// CreateOrderCommand carries raw form input; TotalPrice is the text as
// entered and is parsed during validation.
type CreateOrderCommand struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Items        string `json:"items"`
	Notes        string `json:"notes"`
	TotalPrice   string `json:"total_price"`
}

// OrderCard is one rendered order with its display decorations.
type OrderCard struct {
	domain.Order
	Badge          domain.Badge `json:"badge"`
	TotalFormatted string       `json:"total_formatted"`
}

// DashboardView partitions orders into active and done.
type DashboardView struct {
	Active  []OrderCard `json:"active"`
	Done    []OrderCard `json:"done"`
	CanEdit bool        `json:"can_edit"`
	Note    string      `json:"note,omitempty"`
}

// HistoryView lists done orders with the completed-count and revenue
// aggregates. Revenue sums completed orders only.
type HistoryView struct {
	Rows             []OrderCard `json:"rows"`
	TotalCompleted   int         `json:"total_completed"`
	TotalRevenue     float64     `json:"total_revenue"`
	RevenueFormatted string      `json:"revenue_formatted"`
	CanEdit          bool        `json:"can_edit"`
	EmptyMessage     string      `json:"empty_message,omitempty"`
}

type OrderService interface {
	Create(ctx context.Context, sess *domain.Session, cmd CreateOrderCommand) (*domain.Order, error)
	// UpdateStatus replaces an order's status. Calls from non-admin
	// sessions are silently ignored, as are unknown ids.
	UpdateStatus(ctx context.Context, sess *domain.Session, orderID string, status domain.Status) error
	Dashboard(ctx context.Context, sess *domain.Session) (*DashboardView, error)
	History(ctx context.Context, sess *domain.Session) (*HistoryView, error)
	StatusHistory(ctx context.Context, orderID string) ([]domain.StatusChange, error)
}

// ShellState is the navigation state rendered by the shell.
type ShellState struct {
	ActiveTab domain.Tab   `json:"active_tab"`
	Tabs      []domain.Tab `json:"tabs"`
	DarkMode  bool         `json:"dark_mode"`
}

type ShellService interface {
	State(ctx context.Context, sess *domain.Session) (*ShellState, error)
	SwitchTab(ctx context.Context, sess *domain.Session, tab domain.Tab) (*ShellState, error)
	ToggleDarkMode(ctx context.Context) (bool, error)
	// ResetTab forces the active tab back to orders, so a re-login never
	// resumes on a hidden tab.
	ResetTab(ctx context.Context) error
}
