package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrShiftAlreadyOpen is returned when opening a shift while one is active.
	ErrShiftAlreadyOpen = errors.New("a shift is already open")
	// ErrShiftClosed is returned when closing a shift that is not active.
	ErrShiftClosed = errors.New("shift is already closed")
)

// SummaryScope selects how shift totals are gathered. The business has
// always reconciled by calendar day (every sale and expense dated on the
// shift's opening day, whatever shift stamped them); SummaryByShift narrows
// to rows stamped with the shift's own id. Both are kept until the owners
// settle on one.
type SummaryScope int

const (
	SummaryByDay SummaryScope = iota
	SummaryByShift
)

// ShiftService is the single authority on the current shift. All recorders
// go through it to date their rows, so "which shift is open" is answered in
// exactly one place.
type ShiftService struct {
	db *gorm.DB
}

// NewShiftService creates a new shift service
func NewShiftService() *ShiftService {
	return &ShiftService{db: database.GetDB()}
}

// ActiveShift returns the currently open shift, or nil when none is open.
func (s *ShiftService) ActiveShift() (*models.Shift, error) {
	var shift models.Shift
	err := s.db.Where("active = ?", true).Order("opened_at DESC").First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up active shift: %w", err)
	}
	return &shift, nil
}

// OpenShift opens a new shift for the given cashier. At most one shift may
// be active at a time.
func (s *ShiftService) OpenShift(cashierName string) (*models.Shift, error) {
	if cashierName == "" {
		return nil, fmt.Errorf("cashier name is required")
	}

	active, err := s.ActiveShift()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrShiftAlreadyOpen
	}

	var maxNumber int
	if err := s.db.Model(&models.Shift{}).
		Select("COALESCE(MAX(shift_number), 0)").
		Scan(&maxNumber).Error; err != nil {
		return nil, fmt.Errorf("failed to determine next shift number: %w", err)
	}

	shift := models.Shift{
		ShiftNumber: maxNumber + 1,
		CashierName: cashierName,
		OpenedAt:    time.Now(),
		Active:      true,
	}
	if err := s.db.Create(&shift).Error; err != nil {
		return nil, fmt.Errorf("failed to open shift: %w", err)
	}

	return &shift, nil
}

// CloseShift closes the shift exactly once; closed shifts never reopen.
func (s *ShiftService) CloseShift(id uint) (*models.Shift, error) {
	var shift models.Shift
	if err := s.db.First(&shift, id).Error; err != nil {
		return nil, fmt.Errorf("shift not found: %w", err)
	}
	if !shift.Active {
		return nil, ErrShiftClosed
	}

	now := time.Now()
	shift.ClosedAt = &now
	shift.Active = false
	if err := s.db.Save(&shift).Error; err != nil {
		return nil, fmt.Errorf("failed to close shift: %w", err)
	}

	return &shift, nil
}

// NormalizeDate forces t's calendar day to the active shift's opening day,
// preserving the time of day, so activity after midnight still lands on the
// shift that opened earlier. With no active shift t is returned unchanged.
// The second return value is the active shift id to stamp on the row.
func (s *ShiftService) NormalizeDate(t time.Time) (time.Time, *uint, error) {
	shift, err := s.ActiveShift()
	if err != nil {
		return t, nil, err
	}
	if shift == nil {
		return t, nil, nil
	}

	y, m, d := shift.OpenedAt.Date()
	normalized := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	id := shift.ID
	return normalized, &id, nil
}

// ShiftSummary is the end-of-shift reconciliation report
type ShiftSummary struct {
	ShiftID            uint       `json:"shift_id"`
	ShiftNumber        int        `json:"shift_number"`
	CashierName        string     `json:"cashier_name"`
	OpenedAt           time.Time  `json:"opened_at"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	Duration           string     `json:"duration"` // HH:MM
	TotalSales         float64    `json:"total_sales"`
	InvoiceCount       int        `json:"invoice_count"`
	CustomerDiscounts  float64    `json:"customer_discounts"`
	MaterialDeductions float64    `json:"material_deductions"`
	TotalExpenses      float64    `json:"total_expenses"`
}

// Summary computes the reconciliation figures for a shift.
func (s *ShiftService) Summary(shiftID uint, scope SummaryScope) (*ShiftSummary, error) {
	var shift models.Shift
	if err := s.db.First(&shift, shiftID).Error; err != nil {
		return nil, fmt.Errorf("shift not found: %w", err)
	}

	day := shift.Day()
	next := day.AddDate(0, 0, 1)

	salesQuery := s.db.Model(&models.Sale{})
	expenseQuery := s.db.Model(&models.Expense{})
	if scope == SummaryByShift {
		salesQuery = salesQuery.Where("shift_id = ?", shiftID)
		expenseQuery = expenseQuery.Where("shift_id = ?", shiftID)
	} else {
		salesQuery = salesQuery.Where("date >= ? AND date < ?", day, next)
		expenseQuery = expenseQuery.Where("date >= ? AND date < ?", day, next)
	}

	var sales []models.Sale
	if err := salesQuery.Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to load shift sales: %w", err)
	}

	summary := &ShiftSummary{
		ShiftID:     shift.ID,
		ShiftNumber: shift.ShiftNumber,
		CashierName: shift.CashierName,
		OpenedAt:    shift.OpenedAt,
		ClosedAt:    shift.ClosedAt,
		Duration:    formatShiftDuration(shift.OpenedAt, shift.ClosedAt),
	}

	var gross float64
	for _, sale := range sales {
		gross += sale.Total
		summary.CustomerDiscounts += sale.Total * float64(sale.DiscountPercent) / 100.0
		summary.MaterialDeductions += sale.MaterialDeduction
		summary.InvoiceCount++
	}
	summary.TotalSales = gross - summary.CustomerDiscounts

	var expenses float64
	if err := expenseQuery.Select("COALESCE(SUM(amount), 0)").Scan(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to sum shift expenses: %w", err)
	}
	summary.TotalExpenses = expenses

	return summary, nil
}

// formatShiftDuration renders the open interval as HH:MM. Shifts are
// same-day sessions; anything longer wraps at 24 hours.
func formatShiftDuration(openedAt time.Time, closedAt *time.Time) string {
	end := time.Now()
	if closedAt != nil {
		end = *closedAt
	}
	delta := end.Sub(openedAt)
	if delta < 0 {
		delta = 0
	}
	minutes := int(delta.Minutes())
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}
