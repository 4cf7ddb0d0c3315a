package service

import (
	"context"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

type CreateProductRequest struct {
	Code   string `json:"code" binding:"required"`
	Model  string `json:"model" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Points int    `json:"points" binding:"required,min=0"`
	Stock  int    `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Model  string `json:"model"`
	Type   string `json:"type"`
	Points *int   `json:"points"`
	Stock  *int   `json:"stock"`
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, req CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, req CreateProductRequest) (*model.Product, error) {
	if _, err := s.products.GetByCode(ctx, req.Code); err == nil {
		return nil, model.ErrDuplicateCode
	}

	product := &model.Product{
		Code:   req.Code,
		Model:  req.Model,
		Type:   req.Type,
		Points: req.Points,
		Stock:  req.Stock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Update(ctx context.Context, id string, req UpdateProductRequest) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Model != "" {
		product.Model = req.Model
	}
	if req.Type != "" {
		product.Type = req.Type
	}
	if req.Points != nil {
		product.Points = *req.Points
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}
