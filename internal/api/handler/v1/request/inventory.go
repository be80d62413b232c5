package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RestockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

func (req *RestockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

// AdjustRequest carries a signed quantity; negative values remove stock.
type AdjustRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
	Reason    string `json:"reason"`
}

func (req *AdjustRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.Quantity, validation.NotNil),
	)
}
