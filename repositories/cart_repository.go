package repositories

import (
	"context"
	"errors"
	"fmt"

	"mit-market/models"
	"mit-market/store"
)

type CartRepository struct {
	store store.Store
}

func NewCartRepository(st store.Store) *CartRepository {
	return &CartRepository{store: st}
}

func cartPath(userID string) string {
	return fmt.Sprintf("carts/%s", userID)
}

// GetCart returns the full cart sequence for a user. A missing record reads
// as an empty cart; transport errors are returned to the caller.
func (r *CartRepository) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.store.Get(ctx, cartPath(userID), &items)
	if errors.Is(err, store.ErrNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// PutCart replaces the whole cart document. Concurrent writers race under
// last-writer-wins; there is no merge and no version check.
func (r *CartRepository) PutCart(ctx context.Context, userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	return r.store.Set(ctx, cartPath(userID), items)
}
