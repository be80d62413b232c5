package service

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
)

const recentMovementsLimit = 100

type InventoryService struct {
	productRepo  ProductRepository
	movementRepo MovementRepository
}

func NewInventoryService(productRepo ProductRepository, movementRepo MovementRepository) *InventoryService {
	return &InventoryService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

func (s *InventoryService) GetLevels(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.productRepo.FindAll -> %w", err)
	}

	return products, nil
}

// GetAlerts returns the products currently at or below their reorder
// level, lowest stock first. Alerts carry no identity of their own here;
// they are a view over stock status.
func (s *InventoryService) GetAlerts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.productRepo.FindLowStock -> %w", err)
	}

	return products, nil
}

func (s *InventoryService) GetMovements(ctx context.Context) ([]domain.Movement, error) {
	movements, err := s.movementRepo.FindRecent(ctx, recentMovementsLimit)
	if err != nil {
		return nil, fmt.Errorf("s.movementRepo.FindRecent -> %w", err)
	}

	return movements, nil
}

// Restock adds quantity to the product's stock and appends one restock
// movement.
func (s *InventoryService) Restock(ctx context.Context, productID string, quantity int, notes string) (domain.Product, error) {
	return s.applyMovement(ctx, productID, quantity, domain.MovementRestock, notes)
}

// Adjust applies a signed quantity and appends one adjustment movement.
// No floor is enforced; a negative adjustment can drive stock below zero.
func (s *InventoryService) Adjust(ctx context.Context, productID string, quantity int, reason string) (domain.Product, error) {
	return s.applyMovement(ctx, productID, quantity, domain.MovementAdjustment, reason)
}

func (s *InventoryService) applyMovement(ctx context.Context, productID string, quantity int, kind domain.MovementType, notes string) (domain.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return domain.Product{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	if err := s.productRepo.AddStock(ctx, productID, quantity); err != nil {
		return domain.Product{}, fmt.Errorf("s.productRepo.AddStock -> %w", err)
	}

	_, err := s.movementRepo.Create(ctx, domain.Movement{
		ProductID:    productID,
		MovementType: kind,
		Quantity:     quantity,
		Notes:        notes,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.movementRepo.Create -> %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	return updated, nil
}
