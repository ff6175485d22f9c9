package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveView(t *testing.T) {
	admin := &Session{DisplayName: "Wild admin", Role: RoleAdmin}
	staff := &Session{DisplayName: "Wild user", Role: RoleStaff}

	tests := []struct {
		name      string
		sess      *Session
		requested Tab
		want      Tab
	}{
		{"admin keeps history", admin, TabHistory, TabHistory},
		{"staff history reverts to orders", staff, TabHistory, TabOrders},
		{"logged out history reverts to orders", nil, TabHistory, TabOrders},
		{"staff keeps orders", staff, TabOrders, TabOrders},
		{"staff keeps create", staff, TabCreate, TabCreate},
		{"unknown tab reverts to orders", admin, Tab("settings"), TabOrders},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveView(tc.sess, tc.requested))
		})
	}
}

func TestVisibleTabs(t *testing.T) {
	admin := &Session{Role: RoleAdmin}
	staff := &Session{Role: RoleStaff}

	assert.Equal(t, []Tab{TabOrders, TabCreate, TabHistory}, VisibleTabs(admin))
	assert.Equal(t, []Tab{TabOrders, TabCreate}, VisibleTabs(staff))
	assert.NotContains(t, VisibleTabs(staff), TabHistory)
}
