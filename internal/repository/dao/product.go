package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductSKUExists = errors.New("product sku already exists")
)

type Product struct {
	ID string `gorm:"primaryKey"`

	Name          string `gorm:"not null"`
	SKU           string `gorm:"uniqueIndex;not null"`
	Category      string
	Price         float64 `gorm:"not null"`
	CostPrice     float64
	StockQuantity int `gorm:"default:0"`
	ReorderLevel  int `gorm:"default:10"`
	ImageURL      string
	Description   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		var sqliteErr sqlite3.Error
		if errors.As(result.Error, &sqliteErr) &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return Product{}, ErrProductSKUExists
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id string) (Product, error) {
	var product Product
	result := d.db.WithContext(ctx).First(&product, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product
	result := d.db.WithContext(ctx).Order("name ASC").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// FindLowStock returns products at or below their reorder level,
// lowest stock first.
func (d *ProductDAO) FindLowStock(ctx context.Context) ([]Product, error) {
	var products []Product
	result := d.db.WithContext(ctx).
		Where("stock_quantity <= reorder_level").
		Order("stock_quantity ASC").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Model(&Product{ID: product.ID}).Updates(map[string]any{
		"name":           product.Name,
		"sku":            product.SKU,
		"category":       product.Category,
		"price":          product.Price,
		"cost_price":     product.CostPrice,
		"stock_quantity": product.StockQuantity,
		"reorder_level":  product.ReorderLevel,
		"image_url":      product.ImageURL,
		"description":    product.Description,
	})
	if result.Error != nil {
		var sqliteErr sqlite3.Error
		if errors.As(result.Error, &sqliteErr) &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return Product{}, ErrProductSKUExists
		}

		return Product{}, result.Error
	}

	return d.FindByID(ctx, product.ID)
}

func (d *ProductDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// AddStock applies a signed delta to the product's stock in place.
// There is no floor check; callers can drive stock negative.
func (d *ProductDAO) AddStock(ctx context.Context, id string, delta int) error {
	result := d.db.WithContext(ctx).Model(&Product{ID: id}).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	return nil
}
