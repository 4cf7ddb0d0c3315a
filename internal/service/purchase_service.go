package service

import (
	"context"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
	"incentivehub/internal/websocket"
)

type CreatePurchaseRequest struct {
	Date     string        `json:"date" binding:"required"` // 2006-01-02
	Invoice  string        `json:"invoice" binding:"required"`
	Products []ItemRequest `json:"products" binding:"required,min=1,dive"`
}

type ReviewCommentRequest struct {
	Comments string `json:"comments"`
}

// PurchaseService manages seller-logged purchases and their review.
type PurchaseService interface {
	Create(ctx context.Context, sellerID string, req CreatePurchaseRequest) (*model.Purchase, error)
	List(ctx context.Context, sellerID string) ([]model.Purchase, error)
	Approve(ctx context.Context, id, adminID string) (*model.Purchase, error)
	Reject(ctx context.Context, id, adminID, comments string) (*model.Purchase, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	audit     AuditService
	notifier  Notifier
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	audit AuditService,
	notifier Notifier,
) PurchaseService {
	return &purchaseService{purchases: purchases, products: products, users: users, audit: audit, notifier: notifier}
}

func (s *purchaseService) Create(ctx context.Context, sellerID string, req CreatePurchaseRequest) (*model.Purchase, error) {
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

	purchase := &model.Purchase{
		Date:     date,
		Seller:   seller.Ref(),
		Invoice:  req.Invoice,
		Products: items,
		Status:   model.StatusPending,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.notifier.Notify(websocket.Event{Type: "created", Entity: "purchase", EntityID: purchase.ID, Status: purchase.Status})
	return purchase, nil
}

func (s *purchaseService) List(ctx context.Context, sellerID string) ([]model.Purchase, error) {
	if sellerID != "" {
		return s.purchases.ListBySeller(ctx, sellerID)
	}
	return s.purchases.List(ctx)
}

func (s *purchaseService) Approve(ctx context.Context, id, adminID string) (*model.Purchase, error) {
	purchase, err := s.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(purchase.Status) {
		return nil, model.ErrAlreadyDecided
	}

	purchase.Status = model.StatusApproved
	if err := s.purchases.Update(ctx, purchase); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, model.ActionApprovePurchase, purchase.ID, purchase.Invoice, nil)
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "purchase", EntityID: purchase.ID, Status: purchase.Status})
	return purchase, nil
}

func (s *purchaseService) Reject(ctx context.Context, id, adminID, comments string) (*model.Purchase, error) {
	purchase, err := s.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(purchase.Status) {
		return nil, model.ErrAlreadyDecided
	}

	purchase.Status = model.StatusRejected
	purchase.Comments = comments
	if err := s.purchases.Update(ctx, purchase); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, model.ActionRejectPurchase, purchase.ID, purchase.Invoice, map[string]any{"comments": comments})
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "purchase", EntityID: purchase.ID, Status: purchase.Status})
	return purchase, nil
}
