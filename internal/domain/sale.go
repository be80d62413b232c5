package domain

import "time"

type Sale struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	CashierID     string     `json:"cashier_id,omitempty"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ItemCount     int        `json:"item_count,omitempty"`
	Items         []SaleItem `json:"items,omitempty"`
}

type SaleItem struct {
	ID         string  `json:"id"`
	SaleID     string  `json:"sale_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`

	// Populated on joined reads only.
	ProductName string `json:"name,omitempty"`
	ProductSKU  string `json:"sku,omitempty"`
}

// DailySummary is one row of the daily sales report.
type DailySummary struct {
	Date             string  `json:"date"`
	TransactionCount int     `json:"transaction_count"`
	TotalSales       float64 `json:"total_sales"`
}
