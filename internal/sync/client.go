package sync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/easymart/pos-backend/internal/domain"
)

// Emitter is where a client publishes its own mutations. Both the
// same-origin Channel and the relay Socket satisfy it.
type Emitter interface {
	Send(payload []byte) error
}

// Client holds one tab's disposable projection of products, sales and
// alerts. Local mutations go through the backing store first and are
// emitted to siblings only after the store has acknowledged them;
// inbound events mutate the projection directly.
type Client struct {
	store    Store
	emitters []Emitter

	mu       sync.RWMutex
	products []domain.Product
	sales    []domain.Sale
	alerts   []domain.Alert
}

// NewClient builds a client over store. Emitters receive every local
// mutation; pass the same-origin channel and the relay socket here.
func NewClient(store Store, emitters ...Emitter) *Client {
	return &Client{
		store:    store,
		emitters: emitters,
	}
}

// Refresh replaces the whole projection from the store and regenerates
// alerts. Mutating operations call it after every acknowledged write;
// call it once at startup to seed the cache.
func (c *Client) Refresh(ctx context.Context) error {
	products, err := c.store.Products(ctx)
	if err != nil {
		return err
	}
	sales, err := c.store.Sales(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.products = products
	c.sales = sales
	c.regenerateAlerts()
	c.mu.Unlock()

	return nil
}

func (c *Client) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := c.store.AddProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}
	if err = c.Refresh(ctx); err != nil {
		return domain.Product{}, err
	}

	c.emit(domain.ProductAddEvent{Product: created})

	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := c.store.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}
	if err = c.Refresh(ctx); err != nil {
		return domain.Product{}, err
	}

	c.emit(domain.ProductUpdateEvent{Product: updated})

	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	if err := c.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}

	c.emit(domain.ProductDeleteEvent{ProductID: productID})

	return nil
}

// Sell records a sale and emits one SALE event plus one STOCK_UPDATE per
// line item carrying the post-sale stock level.
func (c *Client) Sell(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	created, err := c.store.RecordSale(ctx, sale)
	if err != nil {
		return domain.Sale{}, err
	}
	if err = c.Refresh(ctx); err != nil {
		return domain.Sale{}, err
	}

	c.emit(domain.SaleEvent{Sale: created})
	for _, item := range created.Items {
		if product, ok := c.ProductByID(item.ProductID); ok {
			c.emit(domain.StockUpdateEvent{
				ProductID:    item.ProductID,
				NewStock:     product.StockQuantity,
				SoldQuantity: item.Quantity,
			})
		}
	}

	return created, nil
}

func (c *Client) Restock(ctx context.Context, productID string, quantity int, notes string) (domain.Product, error) {
	updated, err := c.store.Restock(ctx, productID, quantity, notes)
	if err != nil {
		return domain.Product{}, err
	}
	if err = c.Refresh(ctx); err != nil {
		return domain.Product{}, err
	}

	c.emit(domain.StockUpdateEvent{
		ProductID: productID,
		NewStock:  updated.StockQuantity,
	})

	return updated, nil
}

// Apply folds one inbound event into the projection. Events are applied
// as-is: last write wins, unknown product ids in STOCK_UPDATE are
// ignored, PRODUCT_ADD and SALE are idempotent on id.
func (c *Client) Apply(event domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := event.(type) {
	case domain.StockUpdateEvent:
		for i := range c.products {
			if c.products[i].ID == e.ProductID {
				c.products[i].StockQuantity = e.NewStock
				break
			}
		}
	case domain.ProductUpdateEvent:
		for i := range c.products {
			if c.products[i].ID == e.Product.ID {
				c.products[i] = e.Product
				break
			}
		}
	case domain.ProductAddEvent:
		if c.indexOfProduct(e.Product.ID) < 0 {
			c.products = append(c.products, e.Product)
		}
	case domain.ProductDeleteEvent:
		if idx := c.indexOfProduct(e.ProductID); idx >= 0 {
			c.products = append(c.products[:idx], c.products[idx+1:]...)
		}
	case domain.SaleEvent:
		for i := range c.sales {
			if c.sales[i].ID == e.Sale.ID {
				c.regenerateAlerts()
				return
			}
		}
		c.sales = append([]domain.Sale{e.Sale}, c.sales...)
	}

	c.regenerateAlerts()
}

// HandleMessage decodes a payload from the channel or the relay and
// applies it. Malformed or unknown payloads are logged and dropped.
func (c *Client) HandleMessage(payload []byte) {
	event, err := domain.UnmarshalEvent(payload)
	if err != nil {
		zap.L().Warn("dropping sync message", zap.Error(err))

		return
	}

	c.Apply(event)
}

func (c *Client) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)

	return out
}

func (c *Client) Sales() []domain.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Sale, len(c.sales))
	copy(out, c.sales)

	return out
}

func (c *Client) ProductByID(productID string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.indexOfProduct(productID); idx >= 0 {
		return c.products[idx], true
	}

	return domain.Product{}, false
}

// ProductBySKU looks a product up by its barcode.
func (c *Client) ProductBySKU(sku string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.products {
		if c.products[i].SKU == sku {
			return c.products[i], true
		}
	}

	return domain.Product{}, false
}

// LowStockProducts returns products at or below their reorder level,
// including those fully out of stock.
func (c *Client) LowStockProducts() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Product
	for _, p := range c.products {
		if p.StockStatus() != domain.InStock {
			out = append(out, p)
		}
	}

	return out
}

// ActiveAlerts returns the alerts not yet resolved, newest state first.
func (c *Client) ActiveAlerts() []domain.Alert {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Alert
	for _, a := range c.alerts {
		if a.Status == domain.AlertActive {
			out = append(out, a)
		}
	}

	return out
}

// ResolveAlert marks one generated alert instance resolved. The next
// regeneration pass produces a fresh instance under a new id if the
// product is still low, so resolution does not stick.
func (c *Client) ResolveAlert(alertID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.alerts {
		if c.alerts[i].ID == alertID {
			c.alerts[i].Status = domain.AlertResolved

			return true
		}
	}

	return false
}

func (c *Client) emit(event domain.Event) {
	payload, err := domain.MarshalEvent(event)
	if err != nil {
		zap.L().Error("marshaling sync event", zap.Error(err))

		return
	}

	for _, emitter := range c.emitters {
		if err := emitter.Send(payload); err != nil {
			// Typically the relay being down; same-origin sync still works.
			zap.L().Debug("sync emit skipped", zap.Error(err))
		}
	}
}

// regenerateAlerts must be called with the write lock held. Alerts are a
// pure function of current stock; each pass mints new ids.
func (c *Client) regenerateAlerts() {
	alerts := make([]domain.Alert, 0, len(c.alerts))
	now := time.Now()
	for _, p := range c.products {
		status := p.StockStatus()
		if status == domain.InStock {
			continue
		}

		alertType := domain.AlertLowStock
		if status == domain.OutOfStock {
			alertType = domain.AlertOutOfStock
		}
		alerts = append(alerts, domain.Alert{
			ID:          uuid.NewString(),
			ProductID:   p.ID,
			ProductName: p.Name,
			AlertType:   alertType,
			Timestamp:   now,
			Status:      domain.AlertActive,
		})
	}
	c.alerts = alerts
}

func (c *Client) indexOfProduct(productID string) int {
	for i := range c.products {
		if c.products[i].ID == productID {
			return i
		}
	}

	return -1
}
