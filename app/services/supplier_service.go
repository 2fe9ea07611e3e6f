package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SupplierSummary is one vendor's ledger position
type SupplierSummary struct {
	SupplierID    uint    `json:"supplier_id"`
	Name          string  `json:"name"`
	TotalInvoices float64 `json:"total_invoices"`
	PaidOnInvoice float64 `json:"paid_on_invoice"`
	TotalPayments float64 `json:"total_payments"`
	Remaining     float64 `json:"remaining"`
}

// SupplierService manages vendor ledgers. Payments against a supplier are
// mirrored into the expense ledger in the same transaction, so supplier money
// always shows up in the monthly report.
type SupplierService struct {
	db     *gorm.DB
	shifts *ShiftService
}

// NewSupplierService creates a new supplier service
func NewSupplierService(shifts *ShiftService) *SupplierService {
	return &SupplierService{db: database.GetDB(), shifts: shifts}
}

// AddSupplier registers a vendor. Names are unique.
func (s *SupplierService) AddSupplier(name, phone, notes string) (*models.Supplier, error) {
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	supplier := models.Supplier{Name: name, Phone: phone, Notes: notes}
	if err := s.db.Create(&supplier).Error; err != nil {
		return nil, fmt.Errorf("failed to add supplier: %w", err)
	}
	return &supplier, nil
}

// ListSuppliers returns all vendors ordered by name.
func (s *SupplierService) ListSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Order("name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}
	return suppliers, nil
}

// RecordInvoice records goods received from a supplier. An amount paid on
// the spot is recorded as a payment, which mirrors into the expense ledger.
func (s *SupplierService) RecordInvoice(supplierID uint, total, paid float64) (*models.SupplierInvoice, error) {
	if total <= 0 {
		return nil, fmt.Errorf("invoice total must be positive")
	}
	if paid < 0 || paid > total {
		return nil, fmt.Errorf("paid amount must be between 0 and the invoice total")
	}

	var supplier models.Supplier
	if err := s.db.First(&supplier, supplierID).Error; err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	date, shiftID, err := s.shifts.NormalizeDate(time.Now())
	if err != nil {
		return nil, err
	}

	invoice := models.SupplierInvoice{
		SupplierID:  supplierID,
		Date:        date,
		TotalAmount: total,
		PaidAmount:  paid,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to record supplier invoice: %w", err)
		}
		if paid > 0 {
			// The on-the-spot portion reaches the expense ledger here; the
			// invoice's paid_amount is excluded from the payments table so it
			// is not subtracted twice from the balance.
			return s.mirrorExpense(tx, &supplier, paid, date, shiftID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// RecordPayment records a payment against the supplier's balance and mirrors
// it into the expense ledger in the same transaction.
func (s *SupplierService) RecordPayment(supplierID uint, amount float64, note *string) (*models.SupplierPayment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	var supplier models.Supplier
	if err := s.db.First(&supplier, supplierID).Error; err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	date, shiftID, err := s.shifts.NormalizeDate(time.Now())
	if err != nil {
		return nil, err
	}

	payment := models.SupplierPayment{
		SupplierID: supplierID,
		Date:       date,
		Amount:     amount,
		Note:       note,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record supplier payment: %w", err)
		}
		return s.mirrorExpense(tx, &supplier, amount, date, shiftID)
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// mirrorExpense writes the expense-ledger twin of a supplier payment.
func (s *SupplierService) mirrorExpense(tx *gorm.DB, supplier *models.Supplier, amount float64, date time.Time, shiftID *uint) error {
	note := supplier.Name
	expense := models.Expense{
		Date:     date,
		Category: models.CategorySupplierPayments,
		Amount:   amount,
		Note:     &note,
		ShiftID:  shiftID,
	}
	if err := tx.Create(&expense).Error; err != nil {
		return fmt.Errorf("failed to mirror supplier payment as expense: %w", err)
	}
	return nil
}

// Summary computes one vendor's ledger position. The remaining balance is
// invoiced totals minus on-invoice payments minus later payments, clamped at
// zero so overpayment never shows as negative debt.
func (s *SupplierService) Summary(supplierID uint) (*SupplierSummary, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, supplierID).Error; err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	summary := &SupplierSummary{SupplierID: supplier.ID, Name: supplier.Name}

	row := struct {
		Total float64
		Paid  float64
	}{}
	err := s.db.Model(&models.SupplierInvoice{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COALESCE(SUM(paid_amount), 0) AS paid").
		Where("supplier_id = ?", supplierID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum supplier invoices: %w", err)
	}
	summary.TotalInvoices = row.Total
	summary.PaidOnInvoice = row.Paid

	err = s.db.Model(&models.SupplierPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("supplier_id = ?", supplierID).
		Scan(&summary.TotalPayments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum supplier payments: %w", err)
	}

	remaining := summary.TotalInvoices - summary.PaidOnInvoice - summary.TotalPayments
	if remaining < 0 {
		remaining = 0
	}
	summary.Remaining = remaining

	return summary, nil
}

// PendingBalance sums the remaining balance across all suppliers.
func (s *SupplierService) PendingBalance() (float64, error) {
	suppliers, err := s.ListSuppliers()
	if err != nil {
		return 0, err
	}

	var total float64
	for _, supplier := range suppliers {
		summary, err := s.Summary(supplier.ID)
		if err != nil {
			return 0, err
		}
		total += summary.Remaining
	}
	return total, nil
}

// Invoices returns a vendor's invoices, newest first.
func (s *SupplierService) Invoices(supplierID uint) ([]models.SupplierInvoice, error) {
	var invoices []models.SupplierInvoice
	err := s.db.Where("supplier_id = ?", supplierID).Order("date DESC").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier invoices: %w", err)
	}
	return invoices, nil
}

// Payments returns a vendor's payments, newest first.
func (s *SupplierService) Payments(supplierID uint) ([]models.SupplierPayment, error) {
	var payments []models.SupplierPayment
	err := s.db.Where("supplier_id = ?", supplierID).Order("date DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier payments: %w", err)
	}
	return payments, nil
}

// DeleteInvoice removes a received-goods record. The mirrored expense for
// any on-the-spot payment stays; money that left the drawer stays recorded.
func (s *SupplierService) DeleteInvoice(id uint) error {
	result := s.db.Delete(&models.SupplierInvoice{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supplier invoice not found")
	}
	return nil
}
