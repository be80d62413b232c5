package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/easymart/pos-backend/internal/domain"
)

// RemoteStore talks to the backend REST API. Every mutation is a single
// request; callers are expected to re-fetch the full product and sale
// lists afterwards rather than patch incrementally.
type RemoteStore struct {
	baseURL string
	client  *http.Client
}

// NewRemoteStore wires a store against baseURL, e.g.
// "http://localhost:8080/api". A nil client falls back to
// http.DefaultClient.
func NewRemoteStore(baseURL string, client *http.Client) *RemoteStore {
	if client == nil {
		client = http.DefaultClient
	}

	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *RemoteStore) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *RemoteStore) Sales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := s.do(ctx, http.MethodGet, "/sales", nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (s *RemoteStore) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var created domain.Product
	if err := s.do(ctx, http.MethodPost, "/products", product, &created); err != nil {
		return domain.Product{}, err
	}

	return created, nil
}

func (s *RemoteStore) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var updated domain.Product
	if err := s.do(ctx, http.MethodPut, "/products/"+product.ID, product, &updated); err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

func (s *RemoteStore) DeleteProduct(ctx context.Context, productID string) error {
	return s.do(ctx, http.MethodDelete, "/products/"+productID, nil, nil)
}

func (s *RemoteStore) RecordSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	type itemBody struct {
		ProductID string  `json:"product_id"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}
	type saleBody struct {
		CustomerID    string     `json:"customer_id,omitempty"`
		CashierID     string     `json:"cashier_id,omitempty"`
		PaymentMethod string     `json:"payment_method,omitempty"`
		Items         []itemBody `json:"items"`
	}

	body := saleBody{
		CustomerID:    sale.CustomerID,
		CashierID:     sale.CashierID,
		PaymentMethod: sale.PaymentMethod,
	}
	for _, item := range sale.Items {
		body.Items = append(body.Items, itemBody{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	var created domain.Sale
	if err := s.do(ctx, http.MethodPost, "/sales", body, &created); err != nil {
		return domain.Sale{}, err
	}

	return created, nil
}

func (s *RemoteStore) Restock(ctx context.Context, productID string, quantity int, notes string) (domain.Product, error) {
	body := map[string]any{
		"product_id": productID,
		"quantity":   quantity,
		"notes":      notes,
	}

	var updated domain.Product
	if err := s.do(ctx, http.MethodPost, "/inventory/restock", body, &updated); err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

func (s *RemoteStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ProductNotFoundError{ProductID: path[strings.LastIndex(path, "/")+1:]}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return fmt.Errorf("%v %v -> %v: %v", method, path, resp.Status, string(msg))
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}
