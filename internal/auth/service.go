// internal/auth/service.go
// Account creation, login and token lifecycle

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartlinkhq/heartlink-backend/internal/common/utils"
	"github.com/heartlinkhq/heartlink-backend/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTokenType   = errors.New("invalid token type")
)

// Service defines authentication operations
type Service interface {
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
	Signin(ctx context.Context, req *SigninRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

type service struct {
	repo Repository
	cfg  *config.Config
}

// NewService creates the authentication service
func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

func (s *service) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	taken, err := s.repo.EmailOrUsernameExists(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(user)
}

func (s *service) Signin(ctx context.Context, req *SigninRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmailOrUsername(ctx, req.EmailOrUsername)
	if err == ErrUserNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := utils.ValidateJWT(refreshToken, s.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, ErrInvalidTokenType
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *service) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
	return utils.ValidateJWT(token, s.cfg.JWTSecret)
}

func (s *service) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// issueTokens mints an access/refresh token pair for a user
func (s *service) issueTokens(user *User) (*AuthResponse, error) {
	now := time.Now()

	access, err := utils.GenerateJWT(&utils.JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Type:      "access",
		ExpiresAt: now.Add(s.cfg.AccessTokenExpiry).Unix(),
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		Issuer:    "heartlink",
		Subject:   fmt.Sprintf("%d", user.ID),
	}, s.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateJWT(&utils.JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Type:      "refresh",
		ExpiresAt: now.Add(s.cfg.RefreshTokenExpiry).Unix(),
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		Issuer:    "heartlink",
		Subject:   fmt.Sprintf("%d", user.ID),
	}, s.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.cfg.AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, nil
}
