package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/easymart/pos-backend/internal/config"
	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository"
	"github.com/easymart/pos-backend/internal/repository/dao"
	"github.com/easymart/pos-backend/internal/service"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment: "test",
			BaseURL:     "localhost:8080",
			Host:        "localhost",
			Port:        "8080",
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return NewServer(conf, db), db
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp := httptest.NewRecorder()
	srv.Router.ServeHTTP(resp, req)

	return resp
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.NotEmpty(t, health["timestamp"])
}

func TestServer_ProductRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/products", map[string]any{
		"name":           "Laptop",
		"sku":            "LP100",
		"category":       "Electronics",
		"price":          999.99,
		"stock_quantity": 15,
		"reorder_level":  5,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	resp = doRequest(t, srv, http.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 999.99, got.Price)
	assert.Equal(t, 15, got.StockQuantity)
}

func TestServer_CreateProduct_MissingField(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/products", map[string]any{
		"sku":   "LP100",
		"price": 999.99,
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "name")
}

func TestServer_GetProduct_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/products/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestServer_SaleFlow(t *testing.T) {
	srv, db := newTestServer(t)
	productSvc := service.NewProductService(repository.NewProductRepository(dao.NewProductDAO(db)))

	laptop, err := productSvc.CreateProduct(context.Background(), domain.Product{
		Name:          "Laptop",
		SKU:           "LP100",
		Price:         999.99,
		StockQuantity: 15,
		ReorderLevel:  5,
	})
	require.NoError(t, err)

	resp := doRequest(t, srv, http.MethodPost, "/api/sales", map[string]any{
		"cashier_id": "u1",
		"items": []map[string]any{
			{"product_id": laptop.ID, "quantity": 2, "unit_price": 999.99},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var sale domain.Sale
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sale))
	assert.InDelta(t, 1999.98, sale.TotalAmount, 0.001)

	resp = doRequest(t, srv, http.MethodGet, "/api/inventory/levels", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 13, products[0].StockQuantity)
}

func TestServer_Sale_UnknownProduct(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/sales", map[string]any{
		"items": []map[string]any{
			{"product_id": "ghost", "quantity": 1, "unit_price": 1.00},
		},
	})

	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "ghost")
}

func TestServer_Sale_EmptyItems(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/sales", map[string]any{
		"items": []map[string]any{},
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestServer_Login(t *testing.T) {
	srv, db := newTestServer(t)
	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	_, err := userSvc.CreateUser(context.Background(), domain.User{
		Username: "admin",
		Password: "admin123",
		Role:     "manager",
	})
	require.NoError(t, err)

	resp := doRequest(t, srv, http.MethodPost, "/api/users/login", map[string]any{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, "manager", user.Role)
	// The password never leaves the server.
	assert.NotContains(t, resp.Body.String(), "admin123")
}

func TestServer_Login_WrongCredentials(t *testing.T) {
	srv, db := newTestServer(t)
	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	_, err := userSvc.CreateUser(context.Background(), domain.User{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	resp := doRequest(t, srv, http.MethodPost, "/api/users/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestServer_Restock(t *testing.T) {
	srv, db := newTestServer(t)
	productSvc := service.NewProductService(repository.NewProductRepository(dao.NewProductDAO(db)))

	mouse, err := productSvc.CreateProduct(context.Background(), domain.Product{
		Name:          "Mouse",
		SKU:           "MS200",
		Price:         24.99,
		StockQuantity: 8,
		ReorderLevel:  10,
	})
	require.NoError(t, err)

	resp := doRequest(t, srv, http.MethodPost, "/api/inventory/restock", map[string]any{
		"product_id": mouse.ID,
		"quantity":   25,
		"notes":      "weekly delivery",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, 33, updated.StockQuantity)
}

func TestServer_Restock_RejectsNonPositive(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/inventory/restock", map[string]any{
		"product_id": "p1",
		"quantity":   0,
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestServer_RoleRedirects(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, role := range []string{"manager", "cashier", "customer"} {
		resp := doRequest(t, srv, http.MethodGet, "/"+role, nil)

		require.Equal(t, http.StatusFound, resp.Code)
		assert.Equal(t, "/?role="+role, resp.Header().Get("Location"))
	}
}
