package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mit-market/models"
	"mit-market/store"
)

type OrderRepository struct {
	store store.Store
}

func NewOrderRepository(st store.Store) *OrderRepository {
	return &OrderRepository{store: st}
}

func ordersPath(userID string) string {
	return fmt.Sprintf("users/%s/payments", userID)
}

func orderPath(userID, orderID string) string {
	return fmt.Sprintf("users/%s/payments/%s", userID, orderID)
}

func (r *OrderRepository) PutOrder(ctx context.Context, userID string, snap models.OrderSnapshot) error {
	if snap.OrderID == "" {
		return fmt.Errorf("order snapshot without orderId")
	}
	orderID := snap.OrderID
	// The id is the document key; the snapshot body does not repeat it.
	snap.OrderID = ""
	return r.store.Set(ctx, orderPath(userID, orderID), snap)
}

func (r *OrderRepository) GetOrders(ctx context.Context, userID string) ([]models.OrderSnapshot, error) {
	children, err := r.store.GetChildren(ctx, ordersPath(userID))
	if err != nil {
		return nil, err
	}

	orders := make([]models.OrderSnapshot, 0, len(children))
	for orderID, doc := range children {
		var snap models.OrderSnapshot
		if err := json.Unmarshal(doc, &snap); err != nil {
			return nil, fmt.Errorf("decode order %s: %w", orderID, err)
		}
		snap.OrderID = orderID
		orders = append(orders, snap)
	}
	return orders, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, userID, orderID string) (*models.OrderSnapshot, error) {
	var snap models.OrderSnapshot
	err := r.store.Get(ctx, orderPath(userID, orderID), &snap)
	if errors.Is(err, store.ErrNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	snap.OrderID = orderID
	return &snap, nil
}
