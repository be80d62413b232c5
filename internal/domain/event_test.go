package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalEvent_InlinesTypeTag(t *testing.T) {
	payload, err := MarshalEvent(StockUpdateEvent{
		ProductID:    "p1",
		NewStock:     9,
		SoldQuantity: 3,
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))

	assert.Equal(t, "STOCK_UPDATE", fields["type"])
	assert.Equal(t, "p1", fields["productId"])
	assert.Equal(t, float64(9), fields["newStock"])
	assert.Equal(t, float64(3), fields["soldQuantity"])
}

func TestMarshalEvent_OmitsZeroSoldQuantity(t *testing.T) {
	payload, err := MarshalEvent(StockUpdateEvent{ProductID: "p1", NewStock: 25})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))

	_, present := fields["soldQuantity"]
	assert.False(t, present)
}

func TestUnmarshalEvent_RoundTrip(t *testing.T) {
	product := Product{ID: "p1", Name: "Laptop", SKU: "LP100", StockQuantity: 15}

	events := []Event{
		StockUpdateEvent{ProductID: "p1", NewStock: 13, SoldQuantity: 2},
		ProductUpdateEvent{Product: product},
		ProductAddEvent{Product: product},
		ProductDeleteEvent{ProductID: "p1"},
		SaleEvent{Sale: Sale{ID: "s1", TotalAmount: 1999.98, Status: "completed"}},
	}

	for _, event := range events {
		t.Run(string(event.Type()), func(t *testing.T) {
			payload, err := MarshalEvent(event)
			require.NoError(t, err)

			decoded, err := UnmarshalEvent(payload)
			require.NoError(t, err)
			assert.Equal(t, event, decoded)
		})
	}
}

func TestUnmarshalEvent_UnknownTag(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"type":"CART_UPDATE","productId":"p1"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CART_UPDATE")
}

func TestUnmarshalEvent_MissingTag(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"productId":"p1","newStock":4}`))

	require.Error(t, err)
}

func TestUnmarshalEvent_MalformedPayload(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{"type":`))

	require.Error(t, err)
}
