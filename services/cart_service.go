package services

import (
	"context"
	"sync"

	"mit-market/models"
	"mit-market/repositories"
)

// CartService keeps an in-memory mirror of each user's cart next to the
// persisted document. Every mutation replaces the whole remote document
// (last-writer-wins across clients) and only updates the mirror once the
// write has succeeded, so mirror and store never diverge on failure.
type CartService struct {
	cartRepo *repositories.CartRepository

	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewCartService(cartRepo *repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		carts:    map[string][]models.CartItem{},
	}
}

// Load returns the current cart, fetching it from the store on first access.
// A missing remote record is an empty cart; a transport error is surfaced
// instead of being silently read as empty.
func (s *CartService) Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, userID)
}

func (s *CartService) loadLocked(ctx context.Context, userID string) ([]models.CartItem, error) {
	if cart, ok := s.carts[userID]; ok {
		return cloneCart(cart), nil
	}

	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.carts[userID] = cart
	return cloneCart(cart), nil
}

// Add appends an item to the cart. Adding a product id that is already
// present is a no-op; quantities are not merged.
func (s *CartService) Add(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range cart {
		if existing.ID == item.ID {
			return cart, nil
		}
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	newCart := append(cart, item)

	if err := s.cartRepo.PutCart(ctx, userID, newCart); err != nil {
		return nil, err
	}

	s.carts[userID] = newCart
	return cloneCart(newCart), nil
}

// Remove filters the item out and persists the result. An unknown product id
// leaves the cart as-is.
func (s *CartService) Remove(ctx context.Context, userID, productID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	newCart := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ID != productID {
			newCart = append(newCart, item)
		}
	}
	if len(newCart) == len(cart) {
		return cart, nil
	}

	if err := s.cartRepo.PutCart(ctx, userID, newCart); err != nil {
		return nil, err
	}

	s.carts[userID] = newCart
	return cloneCart(newCart), nil
}

// UpdateQuantity replaces the matching item's quantity, clamped to a minimum
// of 1. An unknown product id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]models.CartItem, error) {
	if userID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	newCart := cloneCart(cart)
	for i := range newCart {
		if newCart[i].ID == productID {
			newCart[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return cart, nil
	}

	if err := s.cartRepo.PutCart(ctx, userID, newCart); err != nil {
		return nil, err
	}

	s.carts[userID] = newCart
	return cloneCart(newCart), nil
}

// Clear persists an empty sequence and resets the mirror.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return models.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cartRepo.PutCart(ctx, userID, []models.CartItem{}); err != nil {
		return err
	}

	s.carts[userID] = []models.CartItem{}
	return nil
}

// Forget drops the in-memory mirror for a user, forcing the next access to
// re-read the store. Called on login so a returning user never sees a stale
// mirror from a previous session.
func (s *CartService) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// cloneCart returns a value copy so order snapshots and handler responses
// can never alias the mirror.
func cloneCart(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	for i := range out {
		if out[i].Offers != nil {
			offers := make([]string, len(out[i].Offers))
			copy(offers, out[i].Offers)
			out[i].Offers = offers
		}
	}
	return out
}
