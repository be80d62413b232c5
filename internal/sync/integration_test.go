package sync

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/relay"
)

// Two clients on different "devices" share state through the relay only.
func TestSocket_CrossDeviceSync(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	reg := relay.NewRegistry()
	router.GET("/ws", relay.Handler(reg))

	srv := httptest.NewServer(router)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed := seedProducts()

	clientB := NewClient(NewMemoryStore(seed))
	require.NoError(t, clientB.Refresh(ctx))
	socketB := NewSocket(url, clientB.HandleMessage)
	go socketB.Run(ctx)

	socketA := NewSocket(url, nil)
	go socketA.Run(ctx)
	clientA := NewClient(NewMemoryStore(seed), socketA)
	require.NoError(t, clientA.Refresh(ctx))

	waitFor(t, func() bool {
		return socketA.Connected() && socketB.Connected()
	})

	_, err := clientA.Sell(ctx, domain.Sale{
		Items: []domain.SaleItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 999.99},
		},
	})
	require.NoError(t, err)

	// B applies the STOCK_UPDATE that followed A's sale.
	waitFor(t, func() bool {
		p, ok := clientB.ProductByID("p1")

		return ok && p.StockQuantity == 13
	})

	sales := clientB.Sales()
	require.Len(t, sales, 1)
	assert.InDelta(t, 1999.98, sales[0].TotalAmount, 0.001)

	// A's own projection came from its store, not an echo.
	p, ok := clientA.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, 13, p.StockQuantity)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition never became true")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
