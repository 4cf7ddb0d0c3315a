package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines data access for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByCode(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	products *collection[model.Product]
}

// NewProductRepository returns an empty in-memory product store.
func NewProductRepository() ProductRepository {
	return &productRepository{products: newCollection[model.Product]()}
}

func (r *productRepository) Create(_ context.Context, product *model.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products.insert(product.ID, *product)
	return nil
}

func (r *productRepository) GetByID(_ context.Context, id string) (*model.Product, error) {
	product, err := r.products.get(id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCode(_ context.Context, code string) (*model.Product, error) {
	matches := r.products.filter(func(p model.Product) bool { return p.Code == code })
	if len(matches) == 0 {
		return nil, model.ErrNotFound
	}
	return &matches[0], nil
}

func (r *productRepository) List(_ context.Context) ([]model.Product, error) {
	return r.products.list(), nil
}

func (r *productRepository) Update(_ context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now()
	return r.products.update(product.ID, *product)
}

func (r *productRepository) Delete(_ context.Context, id string) error {
	return r.products.remove(id)
}
