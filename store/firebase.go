package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	fbdb "firebase.google.com/go/v4/db"

	"mit-market/config"
)

// FirebaseStore reads and writes whole subtrees in the Firebase Realtime
// Database, the same layout the web client reads.
type FirebaseStore struct {
	client *fbdb.Client
}

func NewFirebaseStore(ctx context.Context) (*FirebaseStore, error) {
	if err := config.InitFirebase(ctx); err != nil {
		return nil, err
	}
	if config.FirebaseDB == nil {
		return nil, fmt.Errorf("firebase store requires FIREBASE_DATABASE_URL")
	}

	log.Println("Firebase Realtime Database store ready")
	return &FirebaseStore{client: config.FirebaseDB}, nil
}

func (s *FirebaseStore) Get(ctx context.Context, path string, dest interface{}) error {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return fmt.Errorf("firebase get %s: %w", path, err)
	}
	if isEmptyDocument(raw) {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("firebase decode %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Set(ctx context.Context, path string, value interface{}) error {
	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return fmt.Errorf("firebase set %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) GetChildren(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	var children map[string]json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &children); err != nil {
		return nil, fmt.Errorf("firebase get %s: %w", path, err)
	}
	if children == nil {
		return map[string]json.RawMessage{}, nil
	}
	return children, nil
}

func (s *FirebaseStore) Close() error {
	// The Realtime Database client has no Close; connections are per-request.
	return nil
}

func isEmptyDocument(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
