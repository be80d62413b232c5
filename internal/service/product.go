package service

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository"
)

var (
	ErrProductNotFound  = repository.ErrProductNotFound
	ErrProductSKUExists = repository.ErrProductSKUExists
)

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindLowStock(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
	AddStock(ctx context.Context, id string, delta int) error
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return products, nil
}

func (s *ProductService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindLowStock -> %w", err)
	}

	return products, nil
}

// UpdateProductInput carries a partial update; nil fields keep the
// stored value.
type UpdateProductInput struct {
	Name          *string
	SKU           *string
	Category      *string
	Price         *float64
	CostPrice     *float64
	StockQuantity *int
	ReorderLevel  *int
	ImageURL      *string
	Description   *string
}

// UpdateProduct merges the input over the stored row. The existing row
// is read first so the caller gets not-found before any write.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	merged := mergeProduct(existing, input)
	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// mergeProduct keeps stored values for fields the update omitted.
func mergeProduct(existing domain.Product, input UpdateProductInput) domain.Product {
	merged := existing

	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.SKU != nil {
		merged.SKU = *input.SKU
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.CostPrice != nil {
		merged.CostPrice = *input.CostPrice
	}
	if input.StockQuantity != nil {
		merged.StockQuantity = *input.StockQuantity
	}
	if input.ReorderLevel != nil {
		merged.ReorderLevel = *input.ReorderLevel
	}
	if input.ImageURL != nil {
		merged.ImageURL = *input.ImageURL
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}

	return merged
}
