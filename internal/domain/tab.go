package domain

// Tab names the navigation views.
type Tab string

const (
	TabOrders  Tab = "orders"
	TabCreate  Tab = "create"
	TabHistory Tab = "history"
)

// IsValid reports whether t names a known view.
func (t Tab) IsValid() bool {
	return t == TabOrders || t == TabCreate || t == TabHistory
}

// ResolveView maps a requested tab to the view actually shown for the
// session. History is admin-only: for anyone else it resolves to orders.
// This runs on every navigation and on every session change, so a stale
// persisted "history" selection never renders for a staff session.
func ResolveView(sess *Session, requested Tab) Tab {
	if !requested.IsValid() {
		return TabOrders
	}
	if requested == TabHistory && !sess.IsAdmin() {
		return TabOrders
	}
	return requested
}

// VisibleTabs lists the tabs offered to the session. The history tab is not
// rendered at all for non-admins; ResolveView is the backstop behind it.
func VisibleTabs(sess *Session) []Tab {
	tabs := []Tab{TabOrders, TabCreate}
	if sess.IsAdmin() {
		tabs = append(tabs, TabHistory)
	}
	return tabs
}
