package shell

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

var (
	admin = &domain.Session{DisplayName: "Wild admin", Role: domain.RoleAdmin}
	staff = &domain.Session{DisplayName: "Wild user", Role: domain.RoleStaff}
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func newService(kv interfaces.KVStore) *Service {
	return NewService(kv, logger.NewWithWriter("test", io.Discard))
}

func TestStateDefaults(t *testing.T) {
	svc := newService(newFakeKV())

	state, err := svc.State(context.Background(), staff)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOrders, state.ActiveTab)
	assert.False(t, state.DarkMode)
	assert.Equal(t, []domain.Tab{domain.TabOrders, domain.TabCreate}, state.Tabs)
}

func TestStateAdminSeesHistoryTab(t *testing.T) {
	svc := newService(newFakeKV())

	state, err := svc.State(context.Background(), admin)
	require.NoError(t, err)
	assert.Contains(t, state.Tabs, domain.TabHistory)
}

func TestStateRevertsStaleHistoryTab(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	require.NoError(t, kv.Set(ctx, interfaces.KeyActiveTab, domain.TabHistory))
	svc := newService(kv)

	state, err := svc.State(ctx, staff)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOrders, state.ActiveTab)
	assert.JSONEq(t, `"orders"`, kv.data[interfaces.KeyActiveTab], "the revert must be persisted")
}

func TestStateKeepsHistoryTabForAdmin(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	require.NoError(t, kv.Set(ctx, interfaces.KeyActiveTab, domain.TabHistory))
	svc := newService(kv)

	state, err := svc.State(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.TabHistory, state.ActiveTab)
}

func TestStateRevertsUnknownStoredTab(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.data[interfaces.KeyActiveTab] = `"settings"`
	svc := newService(kv)

	state, err := svc.State(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOrders, state.ActiveTab)
}

func TestSwitchTab(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	svc := newService(kv)

	state, err := svc.SwitchTab(ctx, admin, domain.TabHistory)
	require.NoError(t, err)
	assert.Equal(t, domain.TabHistory, state.ActiveTab)

	// A staff switch to history lands on orders instead of failing.
	state, err = svc.SwitchTab(ctx, staff, domain.TabHistory)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOrders, state.ActiveTab)
}

func TestSwitchTabRejectsUnknownTab(t *testing.T) {
	svc := newService(newFakeKV())

	_, err := svc.SwitchTab(context.Background(), admin, domain.Tab("settings"))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestToggleDarkModePersists(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	svc := newService(kv)

	dark, err := svc.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)

	// A fresh service over the same store sees the toggled value.
	state, err := newService(kv).State(ctx, staff)
	require.NoError(t, err)
	assert.True(t, state.DarkMode)

	dark, err = svc.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestResetTab(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	svc := newService(kv)

	_, err := svc.SwitchTab(ctx, admin, domain.TabCreate)
	require.NoError(t, err)

	require.NoError(t, svc.ResetTab(ctx))
	state, err := svc.State(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOrders, state.ActiveTab)
}
