package services

import (
	"context"
	"sort"
	"strconv"

	"mit-market/models"
	"mit-market/repositories"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderService(orderRepo *repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List returns the user's order snapshots newest first. The ids are numeric
// timestamp strings, sorted numerically rather than relying on the store's
// key order.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.OrderSnapshot, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}

	orders, err := s.orderRepo.GetOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		a, aerr := strconv.ParseInt(orders[i].OrderID, 10, 64)
		b, berr := strconv.ParseInt(orders[j].OrderID, 10, 64)
		if aerr != nil || berr != nil {
			return orders[i].OrderID > orders[j].OrderID
		}
		return a > b
	})
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.OrderSnapshot, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}
	return s.orderRepo.GetOrder(ctx, userID, orderID)
}
