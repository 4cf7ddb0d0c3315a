package service

import (
	"context"
	"fmt"
	"time"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
	"incentivehub/internal/websocket"
)

// ItemRequest is one product line submitted with a sale or purchase.
type ItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	Date     string        `json:"date" binding:"required"` // 2006-01-02
	Products []ItemRequest `json:"products" binding:"required,min=1,dive"`
}

// SaleService manages seller-logged sales.
type SaleService interface {
	Create(ctx context.Context, sellerID string, req CreateSaleRequest) (*model.Sale, error)
	List(ctx context.Context, sellerID string) ([]model.Sale, error)
	Complete(ctx context.Context, id, adminID string) (*model.Sale, error)
}

type saleService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	users    repository.UserRepository
	audit    AuditService
	notifier Notifier
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	audit AuditService,
	notifier Notifier,
) SaleService {
	return &saleService{sales: sales, products: products, users: users, audit: audit, notifier: notifier}
}

// resolveItems turns submitted product lines into record items, capturing
// the model name and earned points from the catalog at creation time.
func resolveItems(ctx context.Context, products repository.ProductRepository, lines []ItemRequest) ([]model.SaleItem, error) {
	items := make([]model.SaleItem, 0, len(lines))
	for _, line := range lines {
		product, err := products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		items = append(items, model.SaleItem{
			ProductID: product.ID,
			Model:     product.Model,
			Quantity:  line.Quantity,
			Points:    line.Quantity * product.Points,
		})
	}
	return items, nil
}

func parseRecordDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

func (s *saleService) Create(ctx context.Context, sellerID string, req CreateSaleRequest) (*model.Sale, error) {
	seller, err := s.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, err
	}
	items, err := resolveItems(ctx, s.products, req.Products)
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		Date:     date,
		Seller:   seller.Ref(),
		Products: items,
		Status:   model.StatusPending,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.notifier.Notify(websocket.Event{Type: "created", Entity: "sale", EntityID: sale.ID, Status: sale.Status})
	return sale, nil
}

// List returns all sales, or only the given seller's when sellerID is set.
func (s *saleService) List(ctx context.Context, sellerID string) ([]model.Sale, error) {
	if sellerID != "" {
		return s.sales.ListBySeller(ctx, sellerID)
	}
	return s.sales.List(ctx)
}

func (s *saleService) Complete(ctx context.Context, id, adminID string) (*model.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(sale.Status) {
		return nil, model.ErrAlreadyDecided
	}

	sale.Status = model.StatusCompleted
	if err := s.sales.Update(ctx, sale); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, model.ActionCompleteSale, sale.ID, "", nil)
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "sale", EntityID: sale.ID, Status: sale.Status})
	return sale, nil
}
