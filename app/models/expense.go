package models

import (
	"time"
)

// Expense categories. The three "special" ones are broken out separately in
// the monthly admin report; everything else rolls into the general bucket.
const (
	CategoryShopPurchases    = "مشتريات للمحل"
	CategoryDailyLabor       = "يوميات العمالة"
	CategorySupplierPayments = "دفعات الموردين"
	CategoryRent             = "إيجار"
	CategoryElectricity      = "كهرباء"
	CategoryWater            = "مياه"
	CategoryInternet         = "إنترنت"
	CategoryOwner            = "مصاريف مينا"
	CategoryOwnerLegacy      = "أخرى" // old databases; displayed as CategoryOwner
)

// ExpenseCategories is the fixed pick-list shown in the expenses screen.
// Free-text categories are still accepted by the recorder.
var ExpenseCategories = []string{
	CategoryRent,
	CategoryElectricity,
	CategoryWater,
	CategoryInternet,
	CategoryShopPurchases,
	CategoryOwner,
	CategoryDailyLabor,
}

// SpecialCategory reports whether the category is one of the three buckets
// reported outside the general expenses total.
func SpecialCategory(cat string) bool {
	return cat == CategoryShopPurchases || cat == CategoryDailyLabor || cat == CategorySupplierPayments
}

// Expense is one cost entry in the ledger
type Expense struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Category string    `gorm:"not null" json:"category"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Note     *string   `json:"note,omitempty"`
	ShiftID  *uint     `gorm:"index" json:"shift_id,omitempty"`
}
