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

func newCheckoutFixture() (*store.MemoryStore, *CartService, *CheckoutService, *OrderService) {
	st := store.NewMemoryStore()
	cartRepo := repositories.NewCartRepository(st)
	orderRepo := repositories.NewOrderRepository(st)
	carts := NewCartService(cartRepo)
	return st, carts, NewCheckoutService(carts, orderRepo, nil), NewOrderService(orderRepo)
}

func validCheckout() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:       "Ada Lovelace",
		Address:    "77 Massachusetts Ave",
		City:       "Cambridge",
		State:      "MA",
		PostalCode: "02139",
	}
}

func TestCartTotalRounding(t *testing.T) {
	cart := []models.CartItem{
		{ID: "p1", Price: 100.5, Quantity: 2},
		{ID: "p2", Price: 33.33, Quantity: 1},
	}
	assert.Equal(t, "234.33", CartTotal(cart))
}

func TestCartTotalMissingQuantityCountsAsOne(t *testing.T) {
	cart := []models.CartItem{{ID: "p1", Price: 10}}
	assert.Equal(t, "10.00", CartTotal(cart))
}

func TestCheckoutRequiresAuth(t *testing.T) {
	_, _, checkout, _ := newCheckoutFixture()

	_, err := checkout.Submit(context.Background(), "", validCheckout())
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	_, _, checkout, orders := newCheckoutFixture()
	ctx := context.Background()

	_, err := checkout.Submit(ctx, "u1", validCheckout())
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	// No snapshot must have been written.
	history, err := orders.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCheckoutValidatesShippingFields(t *testing.T) {
	_, carts, checkout, _ := newCheckoutFixture()
	ctx := context.Background()

	_, err := carts.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	for _, mutate := range []func(*models.CheckoutRequest){
		func(r *models.CheckoutRequest) { r.Name = "" },
		func(r *models.CheckoutRequest) { r.Address = "" },
		func(r *models.CheckoutRequest) { r.City = "" },
		func(r *models.CheckoutRequest) { r.State = "" },
		func(r *models.CheckoutRequest) { r.PostalCode = "" },
	} {
		req := validCheckout()
		mutate(&req)
		_, err := checkout.Submit(ctx, "u1", req)
		assert.ErrorIs(t, err, models.ErrValidation)
	}

	// Validation failures must not consume the cart.
	cart, err := carts.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestCheckoutFreezesCartAndClearsIt(t *testing.T) {
	_, carts, checkout, orders := newCheckoutFixture()
	ctx := context.Background()

	_, err := carts.Add(ctx, "u1", sampleItem("p1", 100.5, 2))
	require.NoError(t, err)
	_, err = carts.Add(ctx, "u1", sampleItem("p2", 33.33, 1))
	require.NoError(t, err)

	orderID, err := checkout.Submit(ctx, "u1", validCheckout())
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	cart, err := carts.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	history, err := orders.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	snap := history[0]
	assert.Equal(t, orderID, snap.OrderID)
	assert.Equal(t, models.OrderStatusPending, snap.Status)
	assert.Equal(t, "234.33", snap.PaymentDetails.TotalPrice)
	assert.Equal(t, "Ada Lovelace", snap.PaymentDetails.Name)
	assert.Len(t, snap.Cart, 2)
}

func TestCheckoutOrderIDsAreDistinctAndIncreasing(t *testing.T) {
	_, carts, checkout, _ := newCheckoutFixture()
	ctx := context.Background()

	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 5; i++ {
		_, err := carts.Add(ctx, "u1", sampleItem("p1", 10, 1))
		require.NoError(t, err)

		orderID, err := checkout.Submit(ctx, "u1", validCheckout())
		require.NoError(t, err)
		assert.False(t, seen[orderID], "duplicate order id %s", orderID)
		seen[orderID] = true
		if prev != "" {
			assert.Greater(t, orderID, prev)
		}
		prev = orderID
	}
}

func TestCheckoutFailedSnapshotWriteKeepsCart(t *testing.T) {
	st, carts, checkout, _ := newCheckoutFixture()
	ctx := context.Background()

	_, err := carts.Add(ctx, "u1", sampleItem("p1", 10, 1))
	require.NoError(t, err)

	st.FailWrites = true
	_, err = checkout.Submit(ctx, "u1", validCheckout())
	assert.Error(t, err)
	st.FailWrites = false

	cart, err := carts.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}
