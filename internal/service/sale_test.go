package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymart/pos-backend/internal/domain"
)

func TestSaleService_CreateSale(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)
	inventorySvc := newInventoryService(t, db)

	laptop := createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)

	sale, err := saleSvc.CreateSale(context.Background(),
		domain.Sale{CashierID: "u1", PaymentMethod: "cash"},
		[]CreateSaleInput{
			{ProductID: laptop.ID, Quantity: 2, UnitPrice: 999.99},
		})
	require.NoError(t, err)

	assert.NotEmpty(t, sale.ID)
	assert.InDelta(t, 1999.98, sale.TotalAmount, 0.001)
	assert.Equal(t, 1, sale.ItemCount)
	assert.Equal(t, "completed", sale.Status)

	// Stock decremented.
	got, err := productSvc.GetProduct(context.Background(), laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.StockQuantity)

	// One negative movement referencing the sale.
	movements, err := inventorySvc.GetMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, domain.MovementSale, movements[0].MovementType)
	assert.Equal(t, -2, movements[0].Quantity)
	assert.Equal(t, sale.ID, movements[0].ReferenceID)
	assert.Equal(t, laptop.ID, movements[0].ProductID)
}

func TestSaleService_CreateSale_MultiLine(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)

	laptop := createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)
	mouse := createTestProduct(t, productSvc, "Mouse", "MS200", 24.99, 12, 10)

	sale, err := saleSvc.CreateSale(context.Background(),
		domain.Sale{CashierID: "u1"},
		[]CreateSaleInput{
			{ProductID: laptop.ID, Quantity: 1, UnitPrice: 999.99},
			{ProductID: mouse.ID, Quantity: 3, UnitPrice: 24.99},
		})
	require.NoError(t, err)

	assert.InDelta(t, 1074.96, sale.TotalAmount, 0.001)
	assert.Equal(t, 2, sale.ItemCount)

	got, err := saleSvc.GetSale(context.Background(), sale.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Laptop", got.Items[0].ProductName)
	assert.InDelta(t, 74.97, got.Items[1].TotalPrice, 0.001)
}

func TestSaleService_CreateSale_MissingProductAborts(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)

	laptop := createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)

	_, err := saleSvc.CreateSale(context.Background(),
		domain.Sale{CashierID: "u1"},
		[]CreateSaleInput{
			{ProductID: laptop.ID, Quantity: 1, UnitPrice: 999.99},
			{ProductID: "ghost", Quantity: 1, UnitPrice: 1.00},
		})

	var missingErr *MissingProductError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "ghost", missingErr.ProductID)

	// Validation runs before any write, so nothing was persisted.
	sales, err := saleSvc.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)

	got, err := productSvc.GetProduct(context.Background(), laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.StockQuantity)
}

func TestSaleService_CreateSale_NoStockFloor(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)

	mouse := createTestProduct(t, productSvc, "Mouse", "MS200", 24.99, 2, 10)

	// Overselling is accepted; stock goes negative.
	_, err := saleSvc.CreateSale(context.Background(),
		domain.Sale{CashierID: "u1"},
		[]CreateSaleInput{
			{ProductID: mouse.ID, Quantity: 5, UnitPrice: 24.99},
		})
	require.NoError(t, err)

	got, err := productSvc.GetProduct(context.Background(), mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, got.StockQuantity)
}

func TestSaleService_GetSale_Unknown(t *testing.T) {
	saleSvc := newSaleService(t, newTestDB(t))

	_, err := saleSvc.GetSale(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestSaleService_ListSales_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)

	laptop := createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)

	first, err := saleSvc.CreateSale(context.Background(), domain.Sale{},
		[]CreateSaleInput{{ProductID: laptop.ID, Quantity: 1, UnitPrice: 999.99}})
	require.NoError(t, err)
	second, err := saleSvc.CreateSale(context.Background(), domain.Sale{},
		[]CreateSaleInput{{ProductID: laptop.ID, Quantity: 1, UnitPrice: 999.99}})
	require.NoError(t, err)

	sales, err := saleSvc.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, second.ID, sales[0].ID)
	assert.Equal(t, first.ID, sales[1].ID)
}

func TestSaleService_DailySummary(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	saleSvc := newSaleService(t, db)

	laptop := createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)

	for i := 0; i < 2; i++ {
		_, err := saleSvc.CreateSale(context.Background(), domain.Sale{},
			[]CreateSaleInput{{ProductID: laptop.ID, Quantity: 1, UnitPrice: 999.99}})
		require.NoError(t, err)
	}

	summary, err := saleSvc.GetDailySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].TransactionCount)
	assert.InDelta(t, 1999.98, summary[0].TotalSales, 0.001)
}
