package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SaleItemInput struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (i SaleItemInput) Validate() error {
	return validation.ValidateStruct(
		&i,
		validation.Field(&i.ProductID, validation.Required),
		validation.Field(&i.Quantity, validation.Required, validation.Min(1)),
	)
}

type CreateSaleRequest struct {
	CustomerID    string          `json:"customer_id"`
	CashierID     string          `json:"cashier_id"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItemInput `json:"items"`
}

func (req *CreateSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Items, validation.Required, validation.Length(1, 0)),
	)
}
