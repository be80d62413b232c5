package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movement rows are append-only; there are no update or delete methods.
type Movement struct {
	ID string `gorm:"primaryKey"`

	ProductID     string `gorm:"index;not null"`
	Product       Product
	MovementType  string `gorm:"not null"` // "restock", "adjustment" or "sale"
	Quantity      int    `gorm:"not null"`
	ReferenceType string
	ReferenceID   string
	Notes         string

	CreatedAt time.Time
}

func (Movement) TableName() string {
	return "inventory_movements"
}

// MovementRow is a movement joined with its product's name and sku.
type MovementRow struct {
	Movement
	ProductName string
	ProductSKU  string
}

type MovementDAO struct {
	db *gorm.DB
}

func NewMovementDAO(db *gorm.DB) *MovementDAO {
	return &MovementDAO{
		db: db,
	}
}

func (d *MovementDAO) Insert(ctx context.Context, movement Movement) (Movement, error) {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&movement)
	if result.Error != nil {
		return Movement{}, result.Error
	}

	return movement, nil
}

// FindRecent returns the latest movements joined to product name/sku,
// newest first.
func (d *MovementDAO) FindRecent(ctx context.Context, limit int) ([]MovementRow, error) {
	var rows []MovementRow
	result := d.db.WithContext(ctx).
		Table("inventory_movements").
		Select("inventory_movements.*, products.name AS product_name, products.sku AS product_sku").
		Joins("JOIN products ON products.id = inventory_movements.product_id").
		Order("inventory_movements.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
