package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// CompanyRepository defines data access for the company directory.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByDocument(ctx context.Context, document string) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id string) error
}

type companyRepository struct {
	companies *collection[model.Company]
}

// NewCompanyRepository returns an empty in-memory company store.
func NewCompanyRepository() CompanyRepository {
	return &companyRepository{companies: newCollection[model.Company]()}
}

func (r *companyRepository) Create(_ context.Context, company *model.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	r.companies.insert(company.ID, *company)
	return nil
}

func (r *companyRepository) GetByID(_ context.Context, id string) (*model.Company, error) {
	company, err := r.companies.get(id)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByDocument(_ context.Context, document string) (*model.Company, error) {
	matches := r.companies.filter(func(c model.Company) bool { return c.Document == document })
	if len(matches) == 0 {
		return nil, model.ErrNotFound
	}
	return &matches[0], nil
}

func (r *companyRepository) List(_ context.Context) ([]model.Company, error) {
	return r.companies.list(), nil
}

func (r *companyRepository) Update(_ context.Context, company *model.Company) error {
	company.UpdatedAt = time.Now()
	return r.companies.update(company.ID, *company)
}

func (r *companyRepository) Delete(_ context.Context, id string) error {
	return r.companies.remove(id)
}
