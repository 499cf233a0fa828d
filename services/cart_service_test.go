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

func newCartFixture() (*store.MemoryStore, *repositories.CartRepository, *CartService) {
	st := store.NewMemoryStore()
	repo := repositories.NewCartRepository(st)
	return st, repo, NewCartService(repo)
}

func sampleItem(id string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "Item " + id,
		Price:    price,
		Category: "Electronics",
		Quantity: qty,
	}
}

func TestCartLoadEmptyForNewUser(t *testing.T) {
	_, _, svc := newCartFixture()

	cart, err := svc.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartRequiresAuth(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCartFixture()

	_, err := svc.Load(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	_, err = svc.Add(ctx, "", sampleItem("p1", 10, 1))
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	_, err = svc.Remove(ctx, "", "p1")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	_, err = svc.UpdateQuantity(ctx, "", "p1", 2)
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Clear(ctx, ""), models.ErrNotAuthenticated)
}

func TestCartAddPersistsBeforeMirror(t *testing.T) {
	ctx := context.Background()
	_, repo, svc := newCartFixture()

	cart, err := svc.Add(ctx, "u1", sampleItem("p1", 10.5, 2))
	require.NoError(t, err)
	require.Len(t, cart, 1)

	// The persisted document must match what the service reports.
	persisted, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, persisted)
}

func TestCartAddDuplicateIsNoOp(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 2))
	require.NoError(t, err)

	cart, err := svc.Add(ctx, "u1", sampleItem("p1", 99, 7))
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 10.0, cart[0].Price)
}

func TestCartAddClampsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCartFixture()

	cart, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 0))
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	_, repo, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "u1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart[0].Quantity)

	// Zero clamps to 1 instead of removing the item.
	cart, err = svc.UpdateQuantity(ctx, "u1", "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	// Unknown product id leaves cart as-is.
	cart, err = svc.UpdateQuantity(ctx, "u1", "missing", 3)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	persisted, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, persisted)
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	_, repo, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", sampleItem("p2", 20, 1))
	require.NoError(t, err)

	cart, err := svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].ID)

	persisted, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, persisted)
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	_, repo, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))

	cart, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	persisted, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCartFailedWriteLeavesMirrorIntact(t *testing.T) {
	ctx := context.Background()
	st, _, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	st.FailWrites = true
	_, err = svc.Add(ctx, "u1", sampleItem("p2", 20, 1))
	assert.Error(t, err)
	st.FailWrites = false

	// The mirror must still match the last successful write.
	cart, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ID)
}

func TestCartLoadSurfacesTransportErrors(t *testing.T) {
	ctx := context.Background()
	st, _, svc := newCartFixture()
	st.FailReads = true

	_, err := svc.Load(ctx, "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestCartForgetDropsMirror(t *testing.T) {
	ctx := context.Background()
	st, _, svc := newCartFixture()

	_, err := svc.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	// Another client overwrote the remote cart; the mirror is stale until
	// the service is told to forget it.
	require.NoError(t, st.Set(ctx, "carts/u1", []models.CartItem{sampleItem("p9", 9, 1)}))

	cart, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "p1", cart[0].ID)

	svc.Forget("u1")

	cart, err = svc.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "p9", cart[0].ID)
}
