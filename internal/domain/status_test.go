package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "status %q", s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("shipped").IsValid())
	assert.False(t, Status("New").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusNew.IsTerminal())
	assert.False(t, StatusWorking.IsTerminal())
	assert.False(t, StatusOut.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestStatusBadges(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		color  string
	}{
		{StatusNew, "🟥 New Order", "red"},
		{StatusWorking, "🟨 Working", "yellow"},
		{StatusOut, "🟩 Out for Delivery", "green"},
		{StatusCompleted, "✅ Completed", "emerald"},
		{StatusCanceled, "❌ Canceled", "gray"},
	}

	for _, tc := range tests {
		badge := tc.status.Badge()
		assert.Equal(t, tc.label, badge.Label)
		assert.Equal(t, tc.color, badge.Color)
	}
}
