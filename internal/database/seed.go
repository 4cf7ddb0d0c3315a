// Package database seeds the in-memory stores with the program's mock
// directory and catalogs, standing in for the persistence layer the
// application deliberately does not have.
package database

import (
	"context"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Stores groups the repositories that receive seed data.
type Stores struct {
	Users     repository.UserRepository
	Companies repository.CompanyRepository
	Products  repository.ProductRepository
	Rewards   repository.RewardRepository
}

// Seed loads the mock users, companies, products and rewards. Passwords are
// bcrypt-hashed at startup; the plaintext values exist only for local login.
func Seed(ctx context.Context, s Stores) error {
	companies := []model.Company{
		{ID: "company-norte", Name: "Distribuciones Norte", Document: "B11111111", City: "Madrid", Phone: "+34 910 000 001", Email: "norte@example.com"},
		{ID: "company-sur", Name: "Comercial Sur", Document: "B22222222", City: "Sevilla", Phone: "+34 950 000 002", Email: "sur@example.com"},
		{ID: "company-este", Name: "Electro Este", Document: "B33333333", City: "Valencia", Phone: "+34 960 000 003", Email: "este@example.com"},
	}
	for i := range companies {
		if err := s.Companies.Create(ctx, &companies[i]); err != nil {
			return err
		}
	}

	users := []struct {
		user     model.User
		password string
	}{
		{
			user: model.User{
				ID: "user-admin", Email: "admin@incentivehub.test", Role: model.RoleAdmin,
				Name: "Laura Gómez", Document: "00000000A", Category: "staff",
				Store: "Central", CompanyID: "company-norte",
			},
			password: "admin123",
		},
		{
			user: model.User{
				ID: "user-carlos", Email: "carlos@incentivehub.test", Role: model.RoleSeller,
				Name: "Carlos Pérez", Document: "11111111B", Category: "gold",
				Points: 1200, Store: "Distribuciones Norte", CompanyID: "company-norte",
			},
			password: "seller123",
		},
		{
			user: model.User{
				ID: "user-marta", Email: "marta@incentivehub.test", Role: model.RoleSeller,
				Name: "Marta Ruiz", Document: "22222222C", Category: "silver",
				Points: 450, Store: "Comercial Sur", CompanyID: "company-sur",
			},
			password: "seller123",
		},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users[i].user.Password = string(hash)
		if err := s.Users.Create(ctx, &users[i].user); err != nil {
			return err
		}
	}

	products := []model.Product{
		{ID: "product-tv55", Code: "TV-55Q", Model: "Vision 55Q", Type: "television", Points: 120, Stock: 10},
		{ID: "product-tv65", Code: "TV-65X", Model: "Vision 65X", Type: "television", Points: 180, Stock: 6},
		{ID: "product-sb01", Code: "SB-01", Model: "SoundBar Uno", Type: "audio", Points: 60, Stock: 15},
		{ID: "product-fr90", Code: "FR-90", Model: "Frost 90", Type: "appliance", Points: 90, Stock: 8},
	}
	for i := range products {
		if err := s.Products.Create(ctx, &products[i]); err != nil {
			return err
		}
	}

	rewards := []model.Reward{
		{ID: "reward-weekend", Name: "Escapada fin de semana", Description: "Dos noches para dos personas", Points: 1000, Stock: 3, Image: "/img/rewards/weekend.jpg"},
		{ID: "reward-tablet", Name: "Tablet 10\"", Description: "Tablet Android de 10 pulgadas", Points: 600, Stock: 5, Image: "/img/rewards/tablet.jpg"},
		{ID: "reward-dinner", Name: "Cena para dos", Description: "Cena en restaurante asociado", Points: 250, Stock: 10, Image: "/img/rewards/dinner.jpg"},
	}
	for i := range rewards {
		if err := s.Rewards.Create(ctx, &rewards[i]); err != nil {
			return err
		}
	}

	return nil
}
