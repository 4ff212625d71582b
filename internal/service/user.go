package service

import (
	"context"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/pkg/crypto"
)

// UserService manages account registration and lookup.
type UserService struct {
	userRepo repository.UserRepository
	hasher   *crypto.PasswordHasher
}

// NewUserService creates a user service.
func NewUserService(userRepo repository.UserRepository, hasher *crypto.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

// Register creates a new account with an argon2id-hashed password and
// returns the generated user ID. Usernames are unique.
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (string, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:       domain.NewID(domain.PrefixUser),
		Username: username,
		Password: hashed,
		Fullname: fullname,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetByID returns a user's public profile.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
