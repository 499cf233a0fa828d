package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"mit-market/models"
	"mit-market/store"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = 5 * time.Minute
)

type ProductRepository struct {
	store store.Store
}

func NewProductRepository(st store.Store) *ProductRepository {
	return &ProductRepository{store: st}
}

// GetAll lists the catalog, going through the optional Redis cache first.
// Cache failures are logged and fall through to the store.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productsCacheKey).Bytes()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
		}
	}

	children, err := r.store.GetChildren(ctx, "products")
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(children))
	for id, doc := range children {
		var p models.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", id, err)
		}
		p.ID = id
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	if models.RedisClient != nil {
		if encoded, err := json.Marshal(products); err == nil {
			if err := models.RedisClient.Set(ctx, productsCacheKey, encoded, productsCacheTTL).Err(); err != nil {
				log.Println("Failed to cache products:", err)
			}
		}
	}

	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.store.Get(ctx, fmt.Sprintf("products/%s", id), &p)
	if errors.Is(err, store.ErrNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (r *ProductRepository) GetComments(ctx context.Context, productID string) ([]models.Comment, error) {
	children, err := r.store.GetChildren(ctx, fmt.Sprintf("comments/%s", productID))
	if err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(children))
	for id, doc := range children {
		var c models.Comment
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("decode comment %s: %w", id, err)
		}
		c.ID = id
		comments = append(comments, c)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}
