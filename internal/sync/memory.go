package sync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easymart/pos-backend/internal/domain"
)

// MemoryStore is the local-authoritative backing used when no backend is
// reachable. Unlike the backend, it refuses a sale that would take stock
// below zero.
type MemoryStore struct {
	mu       sync.Mutex
	products []domain.Product
	sales    []domain.Sale
}

func NewMemoryStore(seed []domain.Product) *MemoryStore {
	products := make([]domain.Product, len(seed))
	copy(products, seed)

	return &MemoryStore{
		products: products,
	}
}

func (s *MemoryStore) Products(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)

	return out, nil
}

func (s *MemoryStore) Sales(_ context.Context) ([]domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)

	return out, nil
}

func (s *MemoryStore) AddProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if idx := s.indexOf(product.ID); idx >= 0 {
		return s.products[idx], nil
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products = append(s.products, product)

	return product, nil
}

func (s *MemoryStore) UpdateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(product.ID)
	if idx < 0 {
		return domain.Product{}, ProductNotFoundError{ProductID: product.ID}
	}

	product.CreatedAt = s.products[idx].CreatedAt
	product.UpdatedAt = time.Now()
	s.products[idx] = product

	return product, nil
}

func (s *MemoryStore) DeleteProduct(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return ProductNotFoundError{ProductID: productID}
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	return nil
}

// RecordSale validates every line against current stock before touching
// anything, so a rejected sale leaves the store unchanged.
func (s *MemoryStore) RecordSale(_ context.Context, sale domain.Sale) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range sale.Items {
		idx := s.indexOf(item.ProductID)
		if idx < 0 {
			return domain.Sale{}, ProductNotFoundError{ProductID: item.ProductID}
		}
		if s.products[idx].StockQuantity < item.Quantity {
			return domain.Sale{}, InsufficientStockError{
				ProductID: item.ProductID,
				Available: s.products[idx].StockQuantity,
				Requested: item.Quantity,
			}
		}
	}

	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	sale.CreatedAt = time.Now()
	sale.Status = "completed"
	sale.TotalAmount = 0
	for i, item := range sale.Items {
		idx := s.indexOf(item.ProductID)
		s.products[idx].StockQuantity -= item.Quantity
		s.products[idx].UpdatedAt = sale.CreatedAt

		sale.Items[i].ID = uuid.NewString()
		sale.Items[i].SaleID = sale.ID
		sale.Items[i].TotalPrice = float64(item.Quantity) * item.UnitPrice
		sale.TotalAmount += sale.Items[i].TotalPrice
	}
	sale.ItemCount = len(sale.Items)

	// Newest first, matching the list order the backend returns.
	s.sales = append([]domain.Sale{sale}, s.sales...)

	return sale, nil
}

func (s *MemoryStore) Restock(_ context.Context, productID string, quantity int, _ string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return domain.Product{}, ProductNotFoundError{ProductID: productID}
	}

	s.products[idx].StockQuantity += quantity
	s.products[idx].UpdatedAt = time.Now()

	return s.products[idx], nil
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(productID string) int {
	for i := range s.products {
		if s.products[i].ID == productID {
			return i
		}
	}

	return -1
}
