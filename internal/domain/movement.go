package domain

import "time"

type MovementType string

const (
	MovementRestock    MovementType = "restock"
	MovementAdjustment MovementType = "adjustment"
	MovementSale       MovementType = "sale"
)

// Movement is one append-only inventory ledger entry. Rows are never
// updated or deleted; quantity is signed (negative for sales).
type Movement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	MovementType  MovementType `json:"movement_type"`
	Quantity      int          `json:"quantity"`
	ReferenceType string       `json:"reference_type,omitempty"`
	ReferenceID   string       `json:"reference_id,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`

	// Populated on joined reads only.
	ProductName string `json:"name,omitempty"`
	ProductSKU  string `json:"sku,omitempty"`
}
