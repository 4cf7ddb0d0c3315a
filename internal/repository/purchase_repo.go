package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// PurchaseRepository defines data access for purchase records.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	GetByID(ctx context.Context, id string) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.Purchase, error)
	Update(ctx context.Context, purchase *model.Purchase) error
}

type purchaseRepository struct {
	purchases *collection[model.Purchase]
}

// NewPurchaseRepository returns an empty in-memory purchase store.
func NewPurchaseRepository() PurchaseRepository {
	return &purchaseRepository{purchases: newCollection[model.Purchase]()}
}

func (r *purchaseRepository) Create(_ context.Context, purchase *model.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.NewString()
	}
	now := time.Now()
	purchase.CreatedAt = now
	purchase.UpdatedAt = now
	r.purchases.insert(purchase.ID, *purchase)
	return nil
}

func (r *purchaseRepository) GetByID(_ context.Context, id string) (*model.Purchase, error) {
	purchase, err := r.purchases.get(id)
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) List(_ context.Context) ([]model.Purchase, error) {
	return r.purchases.list(), nil
}

func (r *purchaseRepository) ListBySeller(_ context.Context, sellerID string) ([]model.Purchase, error) {
	return r.purchases.filter(func(p model.Purchase) bool { return p.Seller.ID == sellerID }), nil
}

func (r *purchaseRepository) Update(_ context.Context, purchase *model.Purchase) error {
	purchase.UpdatedAt = time.Now()
	return r.purchases.update(purchase.ID, *purchase)
}
