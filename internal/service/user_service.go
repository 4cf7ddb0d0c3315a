package service

import (
	"context"
	"errors"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=seller admin"`
	Name            string `json:"name" binding:"required"`
	Document        string `json:"document" binding:"required"`
	Avatar          string `json:"avatar"`
	Category        string `json:"category"`
	Points          int    `json:"points"`
	Store           string `json:"store"`
	CompanyID       string `json:"company_id"`
}

type UpdateUserRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Role      string `json:"role" binding:"omitempty,oneof=seller admin"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Category  string `json:"category"`
	Points    *int   `json:"points"`
	Store     string `json:"store"`
	CompanyID string `json:"company_id"`
}

var errPasswordMismatch = errors.New("passwords do not match")

// UserService manages the user directory.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errPasswordMismatch
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, model.ErrDuplicateEmail
	}
	if _, err := s.users.GetByDocument(ctx, req.Document); err == nil {
		return nil, model.ErrDuplicateDocument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Email:     req.Email,
		Password:  string(hash),
		Role:      req.Role,
		Name:      req.Name,
		Document:  req.Document,
		Avatar:    req.Avatar,
		Category:  req.Category,
		Points:    req.Points,
		Store:     req.Store,
		CompanyID: req.CompanyID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Update(ctx context.Context, id string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
			return nil, model.ErrDuplicateEmail
		}
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Category != "" {
		user.Category = req.Category
	}
	if req.Points != nil {
		user.Points = *req.Points
	}
	if req.Store != "" {
		user.Store = req.Store
	}
	if req.CompanyID != "" {
		user.CompanyID = req.CompanyID
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
