package service

import (
	"context"
	"errors"
	"testing"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("seller123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := users.Create(ctx, &model.User{
		Email: "carlos@test", Password: string(hash), Role: model.RoleSeller, Name: "Carlos", Points: 1200,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewAuthService(users, []byte("test-secret"))

	resp, err := svc.Login(ctx, LoginRequest{Email: "carlos@test", Password: "seller123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Name != "Carlos" || resp.User.Role != model.RoleSeller || resp.User.Points != 1200 {
		t.Errorf("profile = %+v", resp.User)
	}

	// Wrong password and unknown user are indistinguishable.
	if _, err := svc.Login(ctx, LoginRequest{Email: "carlos@test", Password: "wrong"}); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "nobody@test", Password: "seller123"}); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}
