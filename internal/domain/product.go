package domain

import "time"

// StockStatus is derived from current stock vs reorder level.
// It is never stored; compute it with Product.StockStatus.
type StockStatus string

const (
	InStock    StockStatus = "in-stock"
	LowStock   StockStatus = "low-stock"
	OutOfStock StockStatus = "out-of-stock"
)

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	CostPrice     float64   `json:"cost_price"`
	StockQuantity int       `json:"stock_quantity"`
	ReorderLevel  int       `json:"reorder_level"`
	ImageURL      string    `json:"image_url"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockStatus classifies the product by its current stock:
// zero is out-of-stock, at or below the reorder level is low-stock,
// anything above is in-stock.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.StockQuantity == 0:
		return OutOfStock
	case p.StockQuantity <= p.ReorderLevel:
		return LowStock
	default:
		return InStock
	}
}
