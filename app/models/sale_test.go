package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveTotal(t *testing.T) {
	tests := []struct {
		name string
		sale Sale
		want float64
	}{
		{
			name: "no discount no deduction",
			sale: Sale{Total: 100},
			want: 100,
		},
		{
			name: "discount only",
			sale: Sale{Total: 100, DiscountPercent: 10},
			want: 90,
		},
		{
			name: "deduction only",
			sale: Sale{Total: 50, MaterialDeduction: 5},
			want: 45,
		},
		{
			name: "discount and deduction",
			sale: Sale{Total: 200, DiscountPercent: 25, MaterialDeduction: 30},
			want: 120,
		},
		{
			name: "deduction larger than discounted total clamps to zero",
			sale: Sale{Total: 20, DiscountPercent: 50, MaterialDeduction: 15},
			want: 0,
		},
		{
			name: "full discount",
			sale: Sale{Total: 80, DiscountPercent: 100},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.sale.EffectiveTotal(), 0.0001)
		})
	}
}

func TestSaleItemLineTotal(t *testing.T) {
	item := SaleItem{UnitPrice: 12.5, Quantity: 3}
	assert.InDelta(t, 37.5, item.LineTotal(), 0.0001)
}

func TestSpecialCategory(t *testing.T) {
	assert.True(t, SpecialCategory(CategoryShopPurchases))
	assert.True(t, SpecialCategory(CategoryDailyLabor))
	assert.True(t, SpecialCategory(CategorySupplierPayments))
	assert.False(t, SpecialCategory(CategoryRent))
	assert.False(t, SpecialCategory("anything else"))
}
