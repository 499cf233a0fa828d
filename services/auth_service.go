package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mit-market/models"
	"mit-market/repositories"
	"mit-market/utils"
)

// AuthService implements local auth mode: credential records live in the
// document store and the service issues its own JWTs. In firebase mode this
// service is not wired; only profile reads and writes go through it.
type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.userRepo.GetAuthUser(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.AuthUser{
		UID:          uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.PutAuthUser(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.userRepo.PutProfile(ctx, user.UID, profile); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.UID, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		UID:   user.UID,
		User:  *profile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetAuthUser(ctx, req.Email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !valid {
		return nil, models.ErrInvalidLogin
	}

	token, err := utils.GenerateToken(user.UID, user.Email)
	if err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetProfile(ctx, user.UID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		UID:   user.UID,
		User:  *profile,
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	return s.userRepo.GetProfile(ctx, uid)
}

func (s *AuthService) UpdateProfile(ctx context.Context, uid string, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := s.userRepo.PutProfile(ctx, uid, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
