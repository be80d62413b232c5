package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_StockStatus(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		reorder int
		want    StockStatus
	}{
		{
			name:    "zero stock is out of stock",
			stock:   0,
			reorder: 10,
			want:    OutOfStock,
		},
		{
			name:    "below reorder level is low stock",
			stock:   3,
			reorder: 10,
			want:    LowStock,
		},
		{
			name:    "exactly at reorder level is low stock",
			stock:   10,
			reorder: 10,
			want:    LowStock,
		},
		{
			name:    "above reorder level is in stock",
			stock:   11,
			reorder: 10,
			want:    InStock,
		},
		{
			name:    "zero stock with zero reorder level is out of stock",
			stock:   0,
			reorder: 0,
			want:    OutOfStock,
		},
		{
			name:    "positive stock with zero reorder level is in stock",
			stock:   1,
			reorder: 0,
			want:    InStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{StockQuantity: tt.stock, ReorderLevel: tt.reorder}

			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}
