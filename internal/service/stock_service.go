package service

import (
	"context"
	"fmt"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

// StockItemRequest is one counted product line in a snapshot submission.
type StockItemRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	CurrentStock int    `json:"current_stock" binding:"min=0"`
}

type CreateStockRequest struct {
	Date     string             `json:"date" binding:"required"` // 2006-01-02
	Products []StockItemRequest `json:"products" binding:"required,min=1,dive"`
}

// StockService manages weekly stock snapshots.
type StockService interface {
	Create(ctx context.Context, sellerID string, req CreateStockRequest) (*model.StockSnapshot, error)
	List(ctx context.Context, sellerID string) ([]model.StockSnapshot, error)
}

type stockService struct {
	snapshots repository.StockRepository
	products  repository.ProductRepository
	users     repository.UserRepository
}

func NewStockService(
	snapshots repository.StockRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) StockService {
	return &stockService{snapshots: snapshots, products: products, users: users}
}

// Create records a snapshot. The difference of each line is fixed at
// creation as the counted stock minus the catalog baseline; later catalog
// edits do not rewrite it.
func (s *stockService) Create(ctx context.Context, sellerID string, req CreateStockRequest) (*model.StockSnapshot, error) {
	seller, err := s.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, err
	}

	items := make([]model.StockItem, 0, len(req.Products))
	for _, line := range req.Products {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		items = append(items, model.StockItem{
			ProductID:    product.ID,
			Model:        product.Model,
			CurrentStock: line.CurrentStock,
			Difference:   line.CurrentStock - product.Stock,
		})
	}

	snapshot := &model.StockSnapshot{
		Date:     date,
		Seller:   seller.Ref(),
		Products: items,
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *stockService) List(ctx context.Context, sellerID string) ([]model.StockSnapshot, error) {
	if sellerID != "" {
		return s.snapshots.ListBySeller(ctx, sellerID)
	}
	return s.snapshots.List(ctx)
}
