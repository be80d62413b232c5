package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateProductRequest struct {
	Name          string   `json:"name"`
	SKU           string   `json:"sku"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	CostPrice     float64  `json:"cost_price"`
	StockQuantity int      `json:"stock_quantity"`
	ReorderLevel  int      `json:"reorder_level"`
	ImageURL      string   `json:"image_url"`
	Description   string   `json:"description"`
}

func (req *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.SKU, validation.Required),
		validation.Field(&req.Price, validation.NotNil),
	)
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	SKU           *string  `json:"sku"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	CostPrice     *float64 `json:"cost_price"`
	StockQuantity *int     `json:"stock_quantity"`
	ReorderLevel  *int     `json:"reorder_level"`
	ImageURL      *string  `json:"image_url"`
	Description   *string  `json:"description"`
}

func (req *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.StockQuantity, validation.Min(0)),
	)
}
