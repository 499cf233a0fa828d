package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mit-market/models"
	"mit-market/store"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// emailKey escapes an email for use as a Realtime Database key, which cannot
// contain '.'.
func emailKey(email string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(email)), ".", ",")
}

func authPath(email string) string {
	return fmt.Sprintf("auth/%s", emailKey(email))
}

// Profile fields live under users/{uid}/profile rather than users/{uid}
// directly: a whole-subtree write at users/{uid} would clobber the payments
// subtree next to it.
func profilePath(uid string) string {
	return fmt.Sprintf("users/%s/profile", uid)
}

func (r *UserRepository) GetAuthUser(ctx context.Context, email string) (*models.AuthUser, error) {
	var user models.AuthUser
	err := r.store.Get(ctx, authPath(email), &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) PutAuthUser(ctx context.Context, user *models.AuthUser) error {
	return r.store.Set(ctx, authPath(user.Email), user)
}

func (r *UserRepository) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.store.Get(ctx, profilePath(uid), &profile)
	if errors.Is(err, store.ErrNotFound) {
		return &models.UserProfile{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) PutProfile(ctx context.Context, uid string, profile *models.UserProfile) error {
	return r.store.Set(ctx, profilePath(uid), profile)
}
