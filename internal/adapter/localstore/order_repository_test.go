package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

func newRepo(t *testing.T) interfaces.OrderRepository {
	t.Helper()
	s, _ := openStore(t)
	return NewOrderRepository(s)
}

func mustAdd(t *testing.T, repo interfaces.OrderRepository, id string, status domain.Status) {
	t.Helper()
	require.NoError(t, repo.Add(context.Background(), &domain.Order{
		ID:           id,
		CustomerName: "Sam",
		Phone:        "555",
		Address:      "1 Main St",
		Items:        "Fried chicken",
		TotalPrice:   12.5,
		Status:       status,
	}))
}

func TestListEmpty(t *testing.T) {
	repo := newRepo(t)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAddPrepends(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	mustAdd(t, repo, "o1", domain.StatusNew)
	mustAdd(t, repo, "o2", domain.StatusNew)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	mustAdd(t, repo, "o1", domain.StatusNew)

	previous, found, err := repo.UpdateStatus(ctx, "o1", domain.StatusWorking, "Wild admin")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.StatusNew, previous)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWorking, orders[0].Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	mustAdd(t, repo, "o1", domain.StatusNew)

	_, found, err := repo.UpdateStatus(ctx, "missing", domain.StatusCompleted, "Wild admin")
	require.NoError(t, err)
	assert.False(t, found)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, orders[0].Status)
}

func TestStatusHistoryUnavailable(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.StatusHistory(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
}

func TestOrdersSurviveReload(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	repo := NewOrderRepository(s)

	mustAdd(t, repo, "o1", domain.StatusNew)
	_, _, err := repo.UpdateStatus(ctx, "o1", domain.StatusCompleted, "Wild admin")
	require.NoError(t, err)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	// A second repository over the same store sees the identical collection.
	after, err := NewOrderRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
