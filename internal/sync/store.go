// Package sync implements the client-side state synchronization layer:
// a per-client in-memory projection of products, sales and stock alerts,
// kept eventually consistent with sibling clients through a same-origin
// channel and the cross-device relay, and with the durable store through
// REST. Consistency is best effort; there is no ordering or conflict
// resolution beyond last-write-wins.
package sync

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
)

// Store is the authoritative backing for a sync client. It is chosen
// once at startup: RemoteStore when the backend is reachable,
// MemoryStore when running local-only.
type Store interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Sales(ctx context.Context) ([]domain.Sale, error)

	AddProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	RecordSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	Restock(ctx context.Context, productID string, quantity int, notes string) (domain.Product, error)
}

// ProductNotFoundError reports a mutation against an id the store does
// not hold.
type ProductNotFoundError struct {
	ProductID string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %v not found", e.ProductID)
}

// InsufficientStockError is returned by MemoryStore when a sale asks for
// more units than are on hand. RemoteStore never returns it: the backend
// applies no stock floor.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %v: have %v, want %v", e.ProductID, e.Available, e.Requested)
}
