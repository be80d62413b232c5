package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var seedUsers = []User{
	{Username: "admin", Password: "admin123", Role: "manager", Name: "Admin User", Email: "admin@easymart.com"},
	{Username: "cashier1", Password: "pass123", Role: "cashier", Name: "Jane Cashier", Email: "cashier1@easymart.com"},
	{Username: "customer1", Password: "pass123", Role: "customer", Name: "John Customer", Email: "customer1@easymart.com"},
}

var seedProducts = []Product{
	{Name: "Laptop", SKU: "LAPTOP-001", Category: "Electronics", Price: 999.99, CostPrice: 500, StockQuantity: 15, ReorderLevel: 5},
	{Name: "Wireless Mouse", SKU: "MOUSE-001", Category: "Accessories", Price: 29.99, CostPrice: 10, StockQuantity: 50, ReorderLevel: 20},
	{Name: "USB-C Cable", SKU: "CABLE-001", Category: "Cables", Price: 14.99, CostPrice: 5, StockQuantity: 100, ReorderLevel: 30},
	{Name: "Monitor 27\"", SKU: "MONITOR-001", Category: "Electronics", Price: 299.99, CostPrice: 150, StockQuantity: 8, ReorderLevel: 3},
	{Name: "Keyboard Mechanical", SKU: "KEYBOARD-001", Category: "Accessories", Price: 89.99, CostPrice: 40, StockQuantity: 25, ReorderLevel: 10},
	{Name: "Webcam HD", SKU: "WEBCAM-001", Category: "Electronics", Price: 59.99, CostPrice: 25, StockQuantity: 32, ReorderLevel: 10},
	{Name: "USB Hub", SKU: "HUB-001", Category: "Accessories", Price: 39.99, CostPrice: 15, StockQuantity: 45, ReorderLevel: 15},
	{Name: "Desk Lamp LED", SKU: "LAMP-001", Category: "Furniture", Price: 44.99, CostPrice: 20, StockQuantity: 2, ReorderLevel: 5},
}

// Seed inserts the demo users and products on a fresh database.
// It is a no-op once any product exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, user := range seedUsers {
		user.ID = uuid.NewString()
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	for _, product := range seedProducts {
		product.ID = uuid.NewString()
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	return nil
}
