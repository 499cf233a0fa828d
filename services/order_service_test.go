package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mit-market/models"
	"mit-market/repositories"
	"mit-market/store"
)

func newOrderFixture() (*repositories.OrderRepository, *OrderService) {
	st := store.NewMemoryStore()
	repo := repositories.NewOrderRepository(st)
	return repo, NewOrderService(repo)
}

func snapshotWithID(id string) models.OrderSnapshot {
	return models.OrderSnapshot{
		OrderID: id,
		PaymentDetails: models.PaymentDetails{
			Name:       "Ada Lovelace",
			TotalPrice: "10.00",
		},
		Cart:   []models.CartItem{{ID: "p1", Price: 10, Quantity: 1}},
		Status: models.OrderStatusPending,
	}
}

func TestOrderListNewestFirst(t *testing.T) {
	repo, svc := newOrderFixture()
	ctx := context.Background()

	// Insert out of order; ids are epoch-millis strings.
	for _, id := range []string{"1700000000200", "1700000000050", "1700000000900"} {
		require.NoError(t, repo.PutOrder(ctx, "u1", snapshotWithID(id)))
	}

	orders, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "1700000000900", orders[0].OrderID)
	assert.Equal(t, "1700000000200", orders[1].OrderID)
	assert.Equal(t, "1700000000050", orders[2].OrderID)
}

func TestOrderListEmptyHistory(t *testing.T) {
	_, svc := newOrderFixture()

	orders, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderListIsolatedPerUser(t *testing.T) {
	repo, svc := newOrderFixture()
	ctx := context.Background()

	require.NoError(t, repo.PutOrder(ctx, "u1", snapshotWithID("1700000000100")))
	require.NoError(t, repo.PutOrder(ctx, "u2", snapshotWithID("1700000000200")))

	orders, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1700000000100", orders[0].OrderID)
}

func TestOrderGet(t *testing.T) {
	repo, svc := newOrderFixture()
	ctx := context.Background()

	require.NoError(t, repo.PutOrder(ctx, "u1", snapshotWithID("1700000000100")))

	snap, err := svc.Get(ctx, "u1", "1700000000100")
	require.NoError(t, err)
	assert.Equal(t, "1700000000100", snap.OrderID)
	assert.Equal(t, "10.00", snap.PaymentDetails.TotalPrice)

	_, err = svc.Get(ctx, "u1", "1700000000999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderRequiresAuth(t *testing.T) {
	_, svc := newOrderFixture()
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	_, err = svc.Get(ctx, "", "1700000000100")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}
