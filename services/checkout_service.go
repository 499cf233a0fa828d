package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"mit-market/models"
	"mit-market/repositories"
)

type CheckoutService struct {
	carts     *CartService
	orderRepo *repositories.OrderRepository
	email     *models.EmailService
}

// NewCheckoutService wires the checkout flow. email may be nil; confirmation
// mails are best-effort.
func NewCheckoutService(carts *CartService, orderRepo *repositories.OrderRepository, email *models.EmailService) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orderRepo: orderRepo,
		email:     email,
	}
}

// lastOrderID makes order ids strictly monotonic within the process. Ids are
// epoch milliseconds as decimal strings, so two submissions in the same
// millisecond still get distinct ids and the key order stays chronological.
var lastOrderID atomic.Int64

func nextOrderID() string {
	for {
		id := time.Now().UnixMilli()
		last := lastOrderID.Load()
		if id <= last {
			id = last + 1
		}
		if lastOrderID.CompareAndSwap(last, id) {
			return strconv.FormatInt(id, 10)
		}
	}
}

// Submit validates the shipping form, freezes the cart into an immutable
// order snapshot, persists it, then clears the cart. The two writes are not
// atomic: a failure after the snapshot write leaves the cart intact and the
// order already recorded, and a retry may produce a duplicate snapshot.
func (s *CheckoutService) Submit(ctx context.Context, userID string, req models.CheckoutRequest) (string, error) {
	if userID == "" {
		return "", models.ErrNotAuthenticated
	}
	if err := validateCheckout(req); err != nil {
		return "", err
	}

	cart, err := s.carts.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(cart) == 0 {
		return "", models.ErrEmptyCart
	}

	totalPrice := CartTotal(cart)
	orderID := nextOrderID()

	snap := models.OrderSnapshot{
		OrderID: orderID,
		PaymentDetails: models.PaymentDetails{
			Name:       req.Name,
			Address:    req.Address,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			TotalPrice: totalPrice,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		},
		Cart:   cart,
		Status: models.OrderStatusPending,
	}

	if err := s.orderRepo.PutOrder(ctx, userID, snap); err != nil {
		return "", err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return "", err
	}

	if s.email != nil && req.Email != "" {
		if err := s.email.SendOrderConfirmationEmail(req.Email, orderID, totalPrice); err != nil {
			log.Println("Failed to send order confirmation:", err)
		}
	}

	return orderID, nil
}

// CartTotal computes sum(price * quantity) with a missing quantity counted
// as 1, rounded to two decimals and formatted for storage.
func CartTotal(cart []models.CartItem) string {
	total := 0.0
	for _, item := range cart {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}
	return strconv.FormatFloat(math.Round(total*100)/100, 'f', 2, 64)
}

func validateCheckout(req models.CheckoutRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"address", req.Address},
		{"city", req.City},
		{"state", req.State},
		{"postalCode", req.PostalCode},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", models.ErrValidation, f.name)
		}
	}
	return nil
}
