package repository

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

type MovementDAO interface {
	Insert(ctx context.Context, movement dao.Movement) (dao.Movement, error)
	FindRecent(ctx context.Context, limit int) ([]dao.MovementRow, error)
}

type MovementRepository struct {
	dao MovementDAO
}

func NewMovementRepository(dao MovementDAO) *MovementRepository {
	return &MovementRepository{
		dao: dao,
	}
}

func (r *MovementRepository) Create(ctx context.Context, movement domain.Movement) (domain.Movement, error) {
	created, err := r.dao.Insert(ctx, dao.Movement{
		ID:            movement.ID,
		ProductID:     movement.ProductID,
		MovementType:  string(movement.MovementType),
		Quantity:      movement.Quantity,
		ReferenceType: movement.ReferenceType,
		ReferenceID:   movement.ReferenceID,
		Notes:         movement.Notes,
	})
	if err != nil {
		return domain.Movement{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return movementDaoToDomain(created), nil
}

func (r *MovementRepository) FindRecent(ctx context.Context, limit int) ([]domain.Movement, error) {
	rows, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	movements := make([]domain.Movement, len(rows))
	for i, row := range rows {
		movements[i] = movementDaoToDomain(row.Movement)
		movements[i].ProductName = row.ProductName
		movements[i].ProductSKU = row.ProductSKU
	}

	return movements, nil
}

func movementDaoToDomain(m dao.Movement) domain.Movement {
	return domain.Movement{
		ID:            m.ID,
		ProductID:     m.ProductID,
		MovementType:  domain.MovementType(m.MovementType),
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
