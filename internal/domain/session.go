package domain

import "errors"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Session is the authenticated identity for the running instance. It is
// created on login, survives restarts through the persisted copy, and is
// never renewed or expired.
type Session struct {
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	Token       string `json:"token"`
}

// IsAdmin reports whether the session may change order statuses and open
// the history view.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// ErrInvalidCredentials is returned on any login mismatch. The message is
// deliberately generic and never says which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials, try again")

// ErrHistoryUnavailable is returned by storage drivers that do not record
// per-order status-change logs.
var ErrHistoryUnavailable = errors.New("status history not recorded by this storage driver")
