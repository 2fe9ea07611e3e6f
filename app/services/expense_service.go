package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ExpenseService records cost entries
type ExpenseService struct {
	db     *gorm.DB
	shifts *ShiftService
}

// NewExpenseService creates a new expense service
func NewExpenseService(shifts *ShiftService) *ExpenseService {
	return &ExpenseService{db: database.GetDB(), shifts: shifts}
}

// Categories returns the fixed pick-list shown in the expenses screen.
func (s *ExpenseService) Categories() []string {
	return models.ExpenseCategories
}

// RecordExpense writes one cost entry, dated to the active shift's day when
// a shift is open.
func (s *ExpenseService) RecordExpense(category string, amount float64, note *string) (*models.Expense, error) {
	if category == "" {
		return nil, fmt.Errorf("expense category is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}

	date, shiftID, err := s.shifts.NormalizeDate(time.Now())
	if err != nil {
		return nil, err
	}

	expense := models.Expense{
		Date:     date,
		Category: category,
		Amount:   amount,
		Note:     note,
		ShiftID:  shiftID,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	return &expense, nil
}

// ExpensesInMonth returns all cost entries in the given month, newest first.
func (s *ExpenseService) ExpensesInMonth(year int, month time.Month) ([]models.Expense, error) {
	start, end := monthRange(year, month)

	var expenses []models.Expense
	err := s.db.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes a single cost entry.
func (s *ExpenseService) DeleteExpense(id uint) error {
	result := s.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

// DeleteShopDataInMonth purges a month's shop purchases on both sides of the
// ledger: the shop-buyer invoices with their lines, and the expenses they
// fanned out to. Used when the owner re-enters a month's purchases.
func (s *ExpenseService) DeleteShopDataInMonth(year int, month time.Month) error {
	start, end := monthRange(year, month)

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("category = ? AND date >= ? AND date < ?",
			models.CategoryShopPurchases, start, end).
			Delete(&models.Expense{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete shop expenses: %w", err)
		}

		var saleIDs []uint
		err = tx.Model(&models.Sale{}).
			Where("is_shop = ? AND date >= ? AND date < ?", true, start, end).
			Pluck("id", &saleIDs).Error
		if err != nil {
			return fmt.Errorf("failed to find shop sales: %w", err)
		}
		if len(saleIDs) == 0 {
			return nil
		}

		if err := tx.Where("sale_id IN ?", saleIDs).Delete(&models.SaleItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete shop sale items: %w", err)
		}
		if err := tx.Delete(&models.Sale{}, saleIDs).Error; err != nil {
			return fmt.Errorf("failed to delete shop sales: %w", err)
		}
		return nil
	})
}
