package domain

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusWorking   Status = "working"
	StatusOut       Status = "out"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// AllStatuses lists the workflow states in display order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusWorking, StatusOut, StatusCompleted, StatusCanceled}
}

// IsValid reports whether s is one of the five workflow states.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusWorking, StatusOut, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether s is a done state (completed or canceled).
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Badge is the color-coded label rendered for a status.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusBadges = map[Status]Badge{
	StatusNew:       {Label: "🟥 New Order", Color: "red"},
	StatusWorking:   {Label: "🟨 Working", Color: "yellow"},
	StatusOut:       {Label: "🟩 Out for Delivery", Color: "green"},
	StatusCompleted: {Label: "✅ Completed", Color: "emerald"},
	StatusCanceled:  {Label: "❌ Canceled", Color: "gray"},
}

// Badge returns the display badge for the status.
func (s Status) Badge() Badge {
	return statusBadges[s]
}

// StatusChange is one entry in an order's status-change log.
type StatusChange struct {
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
