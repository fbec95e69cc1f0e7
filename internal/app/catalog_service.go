package app

import (
	"context"

	"github.com/kaimono-dev/storefront/internal/clock"
	"github.com/kaimono-dev/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CatalogService manages the product catalog: creation with attribute
// validation, plus read access for listing and detail pages.
type CatalogService struct {
	repo  CatalogRepository
	clock clock.Clock
}

func NewCatalogService(repo CatalogRepository, clk clock.Clock) *CatalogService {
	return &CatalogService{
		repo:  repo,
		clock: clk,
	}
}

type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description string
}

func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if in.Name == "" {
		return domain.Product{}, domain.ErrProductNameRequired
	}
	if len(in.Name) > domain.MaxProductNameLen {
		return domain.Product{}, domain.ErrProductNameTooLong
	}
	if !in.Price.IsPositive() {
		return domain.Product{}, domain.ErrInvalidPrice
	}
	if in.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}
	if len(in.Description) > domain.MaxProductDescriptionLen {
		return domain.Product{}, domain.ErrDescriptionTooLong
	}

	now := s.clock.Now()
	return s.repo.CreateProduct(ctx, domain.Product{
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	if productID <= 0 {
		return domain.Product{}, domain.ErrInvalidID
	}
	return s.repo.GetProduct(ctx, productID)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}
