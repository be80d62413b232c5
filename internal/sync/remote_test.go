package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymart/pos-backend/internal/domain"
)

func TestRemoteStore_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Product{
			{ID: "p1", Name: "Laptop", StockQuantity: 15},
		})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/api", nil)

	products, err := store.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].Name)
}

func TestRemoteStore_RecordSale_PostsLineItems(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Sale{ID: "s1", TotalAmount: 1999.98})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/api", nil)

	sale, err := store.RecordSale(context.Background(), domain.Sale{
		CashierID: "u1",
		Items: []domain.SaleItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 999.99},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", sale.ID)

	assert.Equal(t, "u1", received["cashier_id"])
	items, ok := received["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "p1", item["product_id"])
	assert.Equal(t, float64(2), item["quantity"])
}

func TestRemoteStore_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/api", nil)

	err := store.DeleteProduct(context.Background(), "ghost")

	var notFoundErr ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "ghost", notFoundErr.ProductID)
}

func TestRemoteStore_ServerErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"disk full"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/api", nil)

	_, err := store.Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRemoteStore_Restock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inventory/restock", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body["product_id"])
		assert.Equal(t, float64(25), body["quantity"])

		json.NewEncoder(w).Encode(domain.Product{ID: "p1", StockQuantity: 33})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/api", nil)

	updated, err := store.Restock(context.Background(), "p1", 25, "weekly delivery")
	require.NoError(t, err)
	assert.Equal(t, 33, updated.StockQuantity)
}
