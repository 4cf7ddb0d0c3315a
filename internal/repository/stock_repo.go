package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// StockRepository defines data access for stock snapshots.
type StockRepository interface {
	Create(ctx context.Context, snapshot *model.StockSnapshot) error
	GetByID(ctx context.Context, id string) (*model.StockSnapshot, error)
	List(ctx context.Context) ([]model.StockSnapshot, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.StockSnapshot, error)
}

type stockRepository struct {
	snapshots *collection[model.StockSnapshot]
}

// NewStockRepository returns an empty in-memory stock snapshot store.
func NewStockRepository() StockRepository {
	return &stockRepository{snapshots: newCollection[model.StockSnapshot]()}
}

func (r *stockRepository) Create(_ context.Context, snapshot *model.StockSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	snapshot.CreatedAt = time.Now()
	r.snapshots.insert(snapshot.ID, *snapshot)
	return nil
}

func (r *stockRepository) GetByID(_ context.Context, id string) (*model.StockSnapshot, error) {
	snapshot, err := r.snapshots.get(id)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *stockRepository) List(_ context.Context) ([]model.StockSnapshot, error) {
	return r.snapshots.list(), nil
}

func (r *stockRepository) ListBySeller(_ context.Context, sellerID string) ([]model.StockSnapshot, error) {
	return r.snapshots.filter(func(s model.StockSnapshot) bool { return s.Seller.ID == sellerID }), nil
}
