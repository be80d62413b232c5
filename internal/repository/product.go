package repository

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

var (
	ErrProductNotFound  = dao.ErrProductNotFound
	ErrProductSKUExists = dao.ErrProductSKUExists
)

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindByID(ctx context.Context, id string) (dao.Product, error)
	FindAll(ctx context.Context) ([]dao.Product, error)
	FindLowStock(ctx context.Context) ([]dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	Delete(ctx context.Context, id string) error
	AddStock(ctx context.Context, id string, delta int) error
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return productDaoToDomain(created), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return productDaoToDomain(found), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return productsDaoToDomain(found), nil
}

func (r *ProductRepository) FindLowStock(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLowStock -> %w", err)
	}

	return productsDaoToDomain(found), nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return productDaoToDomain(updated), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProductRepository) AddStock(ctx context.Context, id string, delta int) error {
	if err := r.dao.AddStock(ctx, id, delta); err != nil {
		return fmt.Errorf("r.dao.AddStock -> %w", err)
	}

	return nil
}

func productDomainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func productDaoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func productsDaoToDomain(daoProducts []dao.Product) []domain.Product {
	products := make([]domain.Product, len(daoProducts))
	for i, p := range daoProducts {
		products[i] = productDaoToDomain(p)
	}
	return products
}
