package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	return db
}

func newProductService(t *testing.T, db *gorm.DB) *ProductService {
	t.Helper()

	return NewProductService(repository.NewProductRepository(dao.NewProductDAO(db)))
}

func newSaleService(t *testing.T, db *gorm.DB) *SaleService {
	t.Helper()

	return NewSaleService(
		repository.NewSaleRepository(dao.NewSaleDAO(db)),
		repository.NewProductRepository(dao.NewProductDAO(db)),
		repository.NewMovementRepository(dao.NewMovementDAO(db)),
	)
}

func newInventoryService(t *testing.T, db *gorm.DB) *InventoryService {
	t.Helper()

	return NewInventoryService(
		repository.NewProductRepository(dao.NewProductDAO(db)),
		repository.NewMovementRepository(dao.NewMovementDAO(db)),
	)
}

func createTestProduct(t *testing.T, svc *ProductService, name, sku string, price float64, stock, reorder int) domain.Product {
	t.Helper()

	created, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:          name,
		SKU:           sku,
		Category:      "Electronics",
		Price:         price,
		StockQuantity: stock,
		ReorderLevel:  reorder,
	})
	require.NoError(t, err)

	return created
}
