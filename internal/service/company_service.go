package service

import (
	"context"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// CompanyService manages the company directory.
type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, id string) error
}

type companyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) Create(ctx context.Context, req CreateCompanyRequest) (*model.Company, error) {
	if _, err := s.companies.GetByDocument(ctx, req.Document); err == nil {
		return nil, model.ErrDuplicateDocument
	}

	company := &model.Company{
		Name:     req.Name,
		Document: req.Document,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id string) (*model.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context) ([]model.Company, error) {
	return s.companies.List(ctx)
}

func (s *companyService) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.City != "" {
		company.City = req.City
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.Email != "" {
		company.Email = req.Email
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	if _, err := s.companies.GetByID(ctx, id); err != nil {
		return err
	}
	return s.companies.Delete(ctx, id)
}
