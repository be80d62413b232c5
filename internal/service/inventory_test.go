package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymart/pos-backend/internal/domain"
)

func TestInventoryService_Restock(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	inventorySvc := newInventoryService(t, db)

	mouse := createTestProduct(t, productSvc, "Mouse", "MS200", 24.99, 8, 10)

	updated, err := inventorySvc.Restock(context.Background(), mouse.ID, 25, "weekly delivery")
	require.NoError(t, err)
	assert.Equal(t, 33, updated.StockQuantity)

	movements, err := inventorySvc.GetMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, domain.MovementRestock, movements[0].MovementType)
	assert.Equal(t, 25, movements[0].Quantity)
	assert.Equal(t, "weekly delivery", movements[0].Notes)
}

func TestInventoryService_Restock_UnknownProduct(t *testing.T) {
	inventorySvc := newInventoryService(t, newTestDB(t))

	_, err := inventorySvc.Restock(context.Background(), "nope", 10, "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInventoryService_Adjust_CanGoNegative(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	inventorySvc := newInventoryService(t, db)

	cable := createTestProduct(t, productSvc, "Cable", "CB300", 9.99, 3, 10)

	updated, err := inventorySvc.Adjust(context.Background(), cable.ID, -5, "damaged batch written off")
	require.NoError(t, err)
	assert.Equal(t, -2, updated.StockQuantity)

	movements, err := inventorySvc.GetMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, domain.MovementAdjustment, movements[0].MovementType)
	assert.Equal(t, -5, movements[0].Quantity)
}

func TestInventoryService_GetAlerts(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	inventorySvc := newInventoryService(t, db)

	createTestProduct(t, productSvc, "Laptop", "LP100", 999.99, 15, 5)
	createTestProduct(t, productSvc, "Mouse", "MS200", 24.99, 3, 10)

	alerts, err := inventorySvc.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "MS200", alerts[0].SKU)
}

func TestInventoryService_GetMovements_JoinsProduct(t *testing.T) {
	db := newTestDB(t)
	productSvc := newProductService(t, db)
	inventorySvc := newInventoryService(t, db)

	mouse := createTestProduct(t, productSvc, "Mouse", "MS200", 24.99, 8, 10)

	_, err := inventorySvc.Restock(context.Background(), mouse.ID, 5, "")
	require.NoError(t, err)

	movements, err := inventorySvc.GetMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "Mouse", movements[0].ProductName)
	assert.Equal(t, "MS200", movements[0].ProductSKU)
}
