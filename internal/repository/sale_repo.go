package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// SaleRepository defines data access for sale records.
type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	GetByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.Sale, error)
	Update(ctx context.Context, sale *model.Sale) error
}

type saleRepository struct {
	sales *collection[model.Sale]
}

// NewSaleRepository returns an empty in-memory sale store.
func NewSaleRepository() SaleRepository {
	return &saleRepository{sales: newCollection[model.Sale]()}
}

func (r *saleRepository) Create(_ context.Context, sale *model.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	now := time.Now()
	sale.CreatedAt = now
	sale.UpdatedAt = now
	r.sales.insert(sale.ID, *sale)
	return nil
}

func (r *saleRepository) GetByID(_ context.Context, id string) (*model.Sale, error) {
	sale, err := r.sales.get(id)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(_ context.Context) ([]model.Sale, error) {
	return r.sales.list(), nil
}

func (r *saleRepository) ListBySeller(_ context.Context, sellerID string) ([]model.Sale, error) {
	return r.sales.filter(func(s model.Sale) bool { return s.Seller.ID == sellerID }), nil
}

func (r *saleRepository) Update(_ context.Context, sale *model.Sale) error {
	sale.UpdatedAt = time.Now()
	return r.sales.update(sale.ID, *sale)
}
