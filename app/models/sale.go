package models

import (
	"time"
)

// Sale types
const (
	SaleTypeService = "service"
	SaleTypeProduct = "product"
)

// Buyer types classify the sale's counterparty. Only customer sales count
// toward revenue and employee commission.
const (
	BuyerTypeCustomer = "customer"
	BuyerTypeShop     = "shop"
	BuyerTypeEmployee = "employee"
)

// Sale represents one invoice (services or products)
type Sale struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Date              time.Time  `gorm:"index;not null" json:"date"`
	EmployeeID        *uint      `json:"employee_id,omitempty"`
	Employee          *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	CustomerName      *string    `json:"customer_name,omitempty"`
	IsShop            bool       `gorm:"default:false" json:"is_shop"`
	Total             float64    `gorm:"not null" json:"total"`
	DiscountPercent   int        `gorm:"default:0" json:"discount_percent"`
	Type              string     `gorm:"not null" json:"type"`       // "service" or "product"
	BuyerType         string     `gorm:"not null" json:"buyer_type"` // "customer", "shop", "employee"
	MaterialDeduction float64    `gorm:"default:0" json:"material_deduction"`
	ShiftID           *uint      `gorm:"index" json:"shift_id,omitempty"`
	Shift             *Shift     `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
	Cleared           bool       `gorm:"default:false" json:"cleared"`
	Items             []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	CreatedAt         time.Time  `json:"created_at"`
}

// EffectiveTotal is the sale's value after the customer discount and the
// hidden material cost, clamped at zero.
func (s *Sale) EffectiveTotal() float64 {
	eff := s.Total*(1-float64(s.DiscountPercent)/100.0) - s.MaterialDeduction
	if eff < 0 {
		return 0
	}
	return eff
}

// SaleItem is one invoice line. ProductID links product lines back to
// inventory; service lines leave it nil.
type SaleItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SaleID    uint     `gorm:"index;not null" json:"sale_id"`
	ItemName  string   `gorm:"not null" json:"item_name"`
	UnitPrice float64  `gorm:"not null" json:"unit_price"`
	Quantity  int      `gorm:"default:1" json:"quantity"`
	ProductID *uint    `json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// LineTotal returns unit price times quantity.
func (i *SaleItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
