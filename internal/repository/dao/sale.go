package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSaleNotFound = errors.New("sale not found")

type Sale struct {
	ID string `gorm:"primaryKey"`

	CustomerID    string
	CashierID     string
	TotalAmount   float64 `gorm:"not null"`
	PaymentMethod string
	Status        string `gorm:"default:completed"`

	CreatedAt time.Time
}

type SaleItem struct {
	ID string `gorm:"primaryKey"`

	SaleID     string `gorm:"index;not null"`
	ProductID  string `gorm:"index;not null"`
	Quantity   int    `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`

	CreatedAt time.Time
}

func (SaleItem) TableName() string {
	return "sales_items"
}

// SaleRow is a sale with its aggregated line-item count.
type SaleRow struct {
	Sale
	ItemCount int
}

// SaleItemRow is a line item joined with its product's name and sku.
type SaleItemRow struct {
	SaleItem
	ProductName string
	ProductSKU  string
}

// DailySummaryRow is one day's aggregated sales.
type DailySummaryRow struct {
	Date             string
	TransactionCount int
	TotalSales       float64
}

type SaleDAO struct {
	db *gorm.DB
}

func NewSaleDAO(db *gorm.DB) *SaleDAO {
	return &SaleDAO{
		db: db,
	}
}

func (d *SaleDAO) InsertSale(ctx context.Context, sale Sale) (Sale, error) {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&sale)
	if result.Error != nil {
		return Sale{}, result.Error
	}

	return sale, nil
}

func (d *SaleDAO) InsertItem(ctx context.Context, item SaleItem) (SaleItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return SaleItem{}, result.Error
	}

	return item, nil
}

func (d *SaleDAO) FindByID(ctx context.Context, id string) (Sale, error) {
	var sale Sale
	result := d.db.WithContext(ctx).First(&sale, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sale{}, ErrSaleNotFound
		}

		return Sale{}, result.Error
	}

	return sale, nil
}

// FindWithCount returns one sale with its line-item count.
func (d *SaleDAO) FindWithCount(ctx context.Context, id string) (SaleRow, error) {
	var row SaleRow
	result := d.db.WithContext(ctx).
		Table("sales").
		Select("sales.*, COUNT(sales_items.id) AS item_count").
		Joins("LEFT JOIN sales_items ON sales_items.sale_id = sales.id").
		Where("sales.id = ?", id).
		Group("sales.id").
		Scan(&row)
	if result.Error != nil {
		return SaleRow{}, result.Error
	}
	if row.ID == "" {
		return SaleRow{}, ErrSaleNotFound
	}

	return row, nil
}

// FindAll returns every sale with its line-item count, newest first.
func (d *SaleDAO) FindAll(ctx context.Context) ([]SaleRow, error) {
	var rows []SaleRow
	result := d.db.WithContext(ctx).
		Table("sales").
		Select("sales.*, COUNT(sales_items.id) AS item_count").
		Joins("LEFT JOIN sales_items ON sales_items.sale_id = sales.id").
		Group("sales.id").
		Order("sales.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *SaleDAO) FindItemsBySaleID(ctx context.Context, saleID string) ([]SaleItemRow, error) {
	var rows []SaleItemRow
	result := d.db.WithContext(ctx).
		Table("sales_items").
		Select("sales_items.*, products.name AS product_name, products.sku AS product_sku").
		Joins("JOIN products ON products.id = sales_items.product_id").
		Where("sales_items.sale_id = ?", saleID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// DailySummary aggregates sales per day over the most recent 30 days
// with sales, newest first.
func (d *SaleDAO) DailySummary(ctx context.Context) ([]DailySummaryRow, error) {
	var rows []DailySummaryRow
	result := d.db.WithContext(ctx).
		Table("sales").
		Select("DATE(created_at) AS date, COUNT(*) AS transaction_count, SUM(total_amount) AS total_sales").
		Group("DATE(created_at)").
		Order("date DESC").
		Limit(30).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
