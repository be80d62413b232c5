package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository"
)

var ErrSaleNotFound = repository.ErrSaleNotFound

// MissingProductError identifies the line item whose product does not
// exist; the whole sale is rejected before any write.
type MissingProductError struct {
	ProductID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	CreateItem(ctx context.Context, item domain.SaleItem) (domain.SaleItem, error)
	FindByID(ctx context.Context, id string) (domain.Sale, error)
	FindWithCount(ctx context.Context, id string) (domain.Sale, error)
	FindAll(ctx context.Context) ([]domain.Sale, error)
	FindItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error)
	DailySummary(ctx context.Context) ([]domain.DailySummary, error)
}

type MovementRepository interface {
	Create(ctx context.Context, movement domain.Movement) (domain.Movement, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Movement, error)
}

type SaleService struct {
	repo         SaleRepository
	productRepo  ProductRepository
	movementRepo MovementRepository
}

func NewSaleService(repo SaleRepository, productRepo ProductRepository, movementRepo MovementRepository) *SaleService {
	return &SaleService{
		repo:         repo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// CreateSaleInput is one requested line item.
type CreateSaleInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateSale validates every referenced product, then persists the sale
// row, one line item and one negative sale movement per line, and
// decrements each product's stock.
//
// The store runs each statement on its own; a failure partway through
// leaves earlier writes in place, and stock is decremented without a
// floor check. Both behaviors match the backing store's contract.
func (s *SaleService) CreateSale(ctx context.Context, sale domain.Sale, items []CreateSaleInput) (domain.Sale, error) {
	var total float64
	for _, item := range items {
		_, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return domain.Sale{}, &MissingProductError{ProductID: item.ProductID}
			}

			return domain.Sale{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
		}

		total += float64(item.Quantity) * item.UnitPrice
	}

	sale.TotalAmount = total
	created, err := s.repo.CreateSale(ctx, sale)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.CreateSale -> %w", err)
	}

	for _, item := range items {
		_, err = s.repo.CreateItem(ctx, domain.SaleItem{
			SaleID:     created.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: float64(item.Quantity) * item.UnitPrice,
		})
		if err != nil {
			return domain.Sale{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
		}

		_, err = s.movementRepo.Create(ctx, domain.Movement{
			ProductID:     item.ProductID,
			MovementType:  domain.MovementSale,
			Quantity:      -item.Quantity,
			ReferenceType: "sale",
			ReferenceID:   created.ID,
		})
		if err != nil {
			return domain.Sale{}, fmt.Errorf("s.movementRepo.Create -> %w", err)
		}

		if err = s.productRepo.AddStock(ctx, item.ProductID, -item.Quantity); err != nil {
			return domain.Sale{}, fmt.Errorf("s.productRepo.AddStock -> %w", err)
		}
	}

	result, err := s.repo.FindWithCount(ctx, created.ID)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.FindWithCount -> %w", err)
	}

	return result, nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sales, nil
}

func (s *SaleService) GetSale(ctx context.Context, id string) (domain.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	items, err := s.repo.FindItemsBySaleID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.FindItemsBySaleID -> %w", err)
	}
	sale.Items = items

	return sale, nil
}

func (s *SaleService) GetDailySummary(ctx context.Context) ([]domain.DailySummary, error) {
	summary, err := s.repo.DailySummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.DailySummary -> %w", err)
	}

	return summary, nil
}
