package models

import (
	"time"
)

// Supplier is a vendor with a running ledger of invoices and payments
type Supplier struct {
	ID       uint               `gorm:"primaryKey" json:"id"`
	Name     string             `gorm:"not null;unique" json:"name"`
	Phone    string             `json:"phone"`
	Notes    string             `json:"notes"`
	Invoices []SupplierInvoice  `gorm:"foreignKey:SupplierID" json:"invoices,omitempty"`
	Payments []SupplierPayment  `gorm:"foreignKey:SupplierID" json:"payments,omitempty"`
}

// SupplierInvoice records goods received: the invoiced total and whatever
// was paid on the spot.
type SupplierInvoice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SupplierID  uint      `gorm:"index;not null" json:"supplier_id"`
	Date        time.Time `gorm:"not null" json:"date"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	PaidAmount  float64   `gorm:"default:0" json:"paid_amount"`
}

// SupplierPayment is a later payment against the supplier's balance. Every
// payment is mirrored as an Expense under the supplier-payments category.
type SupplierPayment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SupplierID uint      `gorm:"index;not null" json:"supplier_id"`
	Date       time.Time `gorm:"not null" json:"date"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Note       *string   `json:"note,omitempty"`
}
