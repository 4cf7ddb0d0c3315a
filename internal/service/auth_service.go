package service

import (
	"context"
	"fmt"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileResponse is the session profile the SPA caches locally.
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Category string `json:"category"`
	Points   int    `json:"points"`
	Store    string `json:"store"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// AuthService handles login against the mock user directory.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Profile(ctx context.Context, userID string) (*ProfileResponse, error)
}

type authService struct {
	users  repository.UserRepository
	secret []byte
}

// NewAuthService returns an AuthService signing HS256 tokens with secret.
func NewAuthService(users repository.UserRepository, secret []byte) AuthService {
	return &authService{users: users, secret: secret}
}

func toProfile(u *model.User) ProfileResponse {
	return ProfileResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Category: u.Category,
		Points:   u.Points,
		Store:    u.Store,
	}
}

// Login verifies credentials and issues an access token. Unknown user and
// wrong password collapse into the same error so callers cannot probe the
// directory.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"role":  user.Role,
		"email": user.Email,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResponse{Token: signed, User: toProfile(user)}, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := toProfile(user)
	return &profile, nil
}
