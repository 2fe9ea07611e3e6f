package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SaleItemInput is one invoice line as entered at the cashier screen
type SaleItemInput struct {
	ItemName  string  `json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ProductID *uint   `json:"product_id,omitempty"`
}

// SaleInput is everything the cashier screen submits for one invoice
type SaleInput struct {
	Date              time.Time       `json:"date"` // zero value means "now"
	EmployeeID        *uint           `json:"employee_id,omitempty"`
	CustomerName      *string         `json:"customer_name,omitempty"`
	Type              string          `json:"type"`
	BuyerType         string          `json:"buyer_type"`
	Total             float64         `json:"total"`
	DiscountPercent   int             `json:"discount_percent"`
	MaterialDeduction float64         `json:"material_deduction"`
	Items             []SaleItemInput `json:"items"`
}

// SalesService records and manages invoices
type SalesService struct {
	db     *gorm.DB
	shifts *ShiftService
}

// NewSalesService creates a new sales service
func NewSalesService(shifts *ShiftService) *SalesService {
	return &SalesService{db: database.GetDB(), shifts: shifts}
}

// RecordSale writes one invoice with its lines, decrements inventory for
// product lines, and for shop purchases mirrors every line as an expense
// under the shop-purchases category. All of it commits or none of it does.
func (s *SalesService) RecordSale(input SaleInput) (*models.Sale, error) {
	if input.Type != models.SaleTypeService && input.Type != models.SaleTypeProduct {
		return nil, fmt.Errorf("invalid sale type: %q", input.Type)
	}
	if input.BuyerType == "" {
		input.BuyerType = models.BuyerTypeCustomer
	}
	if input.BuyerType != models.BuyerTypeCustomer &&
		input.BuyerType != models.BuyerTypeShop &&
		input.BuyerType != models.BuyerTypeEmployee {
		return nil, fmt.Errorf("invalid buyer type: %q", input.BuyerType)
	}
	if input.Total < 0 {
		return nil, fmt.Errorf("sale total cannot be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, fmt.Errorf("discount percent must be between 0 and 100")
	}
	if input.MaterialDeduction < 0 {
		return nil, fmt.Errorf("material deduction cannot be negative")
	}
	for _, item := range input.Items {
		if item.ItemName == "" {
			return nil, fmt.Errorf("item name is required")
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	date, shiftID, err := s.shifts.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		Date:              date,
		EmployeeID:        input.EmployeeID,
		CustomerName:      input.CustomerName,
		IsShop:            input.BuyerType == models.BuyerTypeShop,
		Total:             input.Total,
		DiscountPercent:   input.DiscountPercent,
		Type:              input.Type,
		BuyerType:         input.BuyerType,
		MaterialDeduction: input.MaterialDeduction,
		ShiftID:           shiftID,
	}
	if sale.IsShop {
		sale.CustomerName = nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		for _, item := range input.Items {
			line := models.SaleItem{
				SaleID:    sale.ID,
				ItemName:  item.ItemName,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
				ProductID: item.ProductID,
			}
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("failed to create sale item: %w", err)
			}
			sale.Items = append(sale.Items, line)

			if item.ProductID != nil {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", *item.ProductID).
					Update("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error; err != nil {
					return fmt.Errorf("failed to update stock: %w", err)
				}
			}

			if sale.IsShop {
				note := item.ItemName
				expense := models.Expense{
					Date:     date,
					Category: models.CategoryShopPurchases,
					Amount:   line.LineTotal(),
					Note:     &note,
					ShiftID:  shiftID,
				}
				if err := tx.Create(&expense).Error; err != nil {
					return fmt.Errorf("failed to record shop purchase expense: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// GetSale returns one invoice with its lines.
func (s *SalesService) GetSale(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Preload("Items").Preload("Employee").First(&sale, id).Error; err != nil {
		return nil, fmt.Errorf("sale not found: %w", err)
	}
	return &sale, nil
}

// SalesInMonth returns all invoices in the given month, newest first.
func (s *SalesService) SalesInMonth(year int, month time.Month) ([]models.Sale, error) {
	start, end := monthRange(year, month)

	var sales []models.Sale
	err := s.db.Preload("Items").Preload("Employee").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return sales, nil
}

// SalesByEmployeeInMonth returns an employee's invoices in the given month.
func (s *SalesService) SalesByEmployeeInMonth(employeeID uint, year int, month time.Month) ([]models.Sale, error) {
	start, end := monthRange(year, month)

	var sales []models.Sale
	err := s.db.Preload("Items").
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, start, end).
		Order("date").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load employee sales: %w", err)
	}
	return sales, nil
}

// DeleteSale removes an invoice and its lines. Inventory is not restocked;
// corrections to stock go through the inventory screen.
func (s *SalesService) DeleteSale(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete sale items: %w", err)
		}
		result := tx.Delete(&models.Sale{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete sale: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("sale not found")
		}
		return nil
	})
}

// ClearSale marks an invoice as settled so it no longer counts toward
// commission or employee balances. Monthly revenue is unaffected.
func (s *SalesService) ClearSale(id uint) error {
	result := s.db.Model(&models.Sale{}).Where("id = ?", id).Update("cleared", true)
	if result.Error != nil {
		return fmt.Errorf("failed to clear sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sale not found")
	}
	return nil
}

// monthRange returns the half-open interval covering the given month.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}
