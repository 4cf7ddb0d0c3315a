package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByDocument(ctx context.Context, document string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	users *collection[model.User]
}

// NewUserRepository returns an empty in-memory user store.
func NewUserRepository() UserRepository {
	return &userRepository{users: newCollection[model.User]()}
}

func (r *userRepository) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users.insert(user.ID, *user)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	user, err := r.users.get(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.findOne(func(u model.User) bool { return u.Email == email })
}

func (r *userRepository) GetByDocument(_ context.Context, document string) (*model.User, error) {
	return r.findOne(func(u model.User) bool { return u.Document == document })
}

func (r *userRepository) List(_ context.Context) ([]model.User, error) {
	return r.users.list(), nil
}

func (r *userRepository) Update(_ context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	return r.users.update(user.ID, *user)
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	return r.users.remove(id)
}

func (r *userRepository) findOne(match func(model.User) bool) (*model.User, error) {
	matches := r.users.filter(match)
	if len(matches) == 0 {
		return nil, model.ErrNotFound
	}
	return &matches[0], nil
}
