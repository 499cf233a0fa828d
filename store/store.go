package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mit-market/config"
)

// Store is the raw document store: whole-subtree reads and whole-subtree
// writes addressed by slash-separated key paths, last-writer-wins. Path
// construction and typing live in the repositories package.
type Store interface {
	// Get unmarshals the document at path into dest. Returns ErrNotFound
	// when no document exists there.
	Get(ctx context.Context, path string, dest interface{}) error

	// Set replaces the entire document at path. Writing an empty value is a
	// plain overwrite, not a delete, except on backends (Firebase) that
	// collapse empty nodes; both read back as missing-or-empty consistently.
	Set(ctx context.Context, path string, value interface{}) error

	// GetChildren returns the direct children of path keyed by child name.
	// A missing node yields an empty map.
	GetChildren(ctx context.Context, path string) (map[string]json.RawMessage, error)

	Close() error
}

var ErrNotFound = errors.New("document not found")

// New selects the backend from configuration.
func New(ctx context.Context) (Store, error) {
	switch config.AppConfig.StoreBackend {
	case "firebase":
		return NewFirebaseStore(ctx)
	case "postgres":
		return NewPostgresStore(ctx)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.AppConfig.StoreBackend)
	}
}
