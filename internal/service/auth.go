package service

import (
	"context"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/pkg/crypto"
	"github.com/fityannugroho/openmusic-api/pkg/jwt"
)

// TokenPair is an issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// AuthService issues and rotates JWT token pairs. Refresh tokens are
// persisted so logout can revoke them.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    *crypto.PasswordHasher
	tokens    *jwt.Manager
}

// NewAuthService creates an auth service.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, hasher *crypto.PasswordHasher, tokens *jwt.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo, hasher: hasher, tokens: tokens}
}

// Login verifies the credentials and issues a token pair. Unknown usernames
// and wrong passwords report the same error, so accounts cannot be probed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	match, err := s.hasher.Verify(password, user.Password)
	if err != nil || !match {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Add(ctx, refresh); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a stored refresh token and issues a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if err := s.tokenRepo.Verify(ctx, refreshToken); err != nil {
		return "", err
	}

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefresh
	}

	return s.tokens.GenerateToken(claims.UserID)
}

// Logout revokes a refresh token. The token must have been issued and not
// yet revoked.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.Verify(ctx, refreshToken); err != nil {
		return err
	}
	return s.tokenRepo.Delete(ctx, refreshToken)
}
