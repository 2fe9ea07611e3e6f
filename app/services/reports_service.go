package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EmployeeCommission is one employee's commission line in the monthly report
type EmployeeCommission struct {
	EmployeeID uint    `json:"employee_id"`
	Name       string  `json:"name"`
	Commission float64 `json:"commission"`
	Loans      float64 `json:"loans"`
	Balance    float64 `json:"balance"`
}

// MonthlyAdminReport is the owner's month-end statement
type MonthlyAdminReport struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	NetServices  float64 `json:"net_services"`
	NetProducts  float64 `json:"net_products"`
	TotalRevenue float64 `json:"total_revenue"`

	GeneralExpenses  float64 `json:"general_expenses"`
	ShopPurchases    float64 `json:"shop_purchases"`
	DailyLabor       float64 `json:"daily_labor"`
	SupplierPayments float64 `json:"supplier_payments"`
	TotalExpenses    float64 `json:"total_expenses"`

	NetProfit float64 `json:"net_profit"`

	MaterialDeductions     float64              `json:"material_deductions"`
	InventoryValue         float64              `json:"inventory_value"`
	PendingSupplierBalance float64              `json:"pending_supplier_balance"`
	EmployeeCommissions    []EmployeeCommission `json:"employee_commissions"`
}

// ReportsService is the read-only aggregation layer over the ledger. It
// never writes; every figure is recomputed from the rows on each call.
type ReportsService struct {
	db        *gorm.DB
	suppliers *SupplierService
}

// NewReportsService creates a new reports service
func NewReportsService(suppliers *SupplierService) *ReportsService {
	return &ReportsService{db: database.GetDB(), suppliers: suppliers}
}

// netRevenueInMonth sums total after discount for customer sales of one
// type. Material deductions do not reduce revenue; they move money from the
// employee's commission to the house.
func (s *ReportsService) netRevenueInMonth(saleType string, year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var net float64
	err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total * (1 - discount_percent / 100.0)), 0)").
		Where("type = ? AND buyer_type = ? AND date >= ? AND date < ?",
			saleType, models.BuyerTypeCustomer, start, end).
		Scan(&net).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum %s revenue: %w", saleType, err)
	}
	return net, nil
}

// NetServicesInMonth returns the month's service revenue after discounts.
func (s *ReportsService) NetServicesInMonth(year int, month time.Month) (float64, error) {
	return s.netRevenueInMonth(models.SaleTypeService, year, month)
}

// NetProductsInMonth returns the month's product revenue after discounts.
func (s *ReportsService) NetProductsInMonth(year int, month time.Month) (float64, error) {
	return s.netRevenueInMonth(models.SaleTypeProduct, year, month)
}

// EmployeeCommissionInMonth sums an employee's effective totals over their
// uncleared customer service sales in the month.
func (s *ReportsService) EmployeeCommissionInMonth(employeeID uint, year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var sales []models.Sale
	err := s.db.Where(
		"employee_id = ? AND type = ? AND buyer_type = ? AND cleared = ? AND date >= ? AND date < ?",
		employeeID, models.SaleTypeService, models.BuyerTypeCustomer, false, start, end).
		Find(&sales).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load commission sales: %w", err)
	}

	var commission float64
	for _, sale := range sales {
		commission += sale.EffectiveTotal()
	}
	return commission, nil
}

// EmployeeLoansInMonth sums an employee's uncleared advances in the month.
func (s *ReportsService) EmployeeLoansInMonth(employeeID uint, year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var loans float64
	err := s.db.Model(&models.Loan{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("employee_id = ? AND cleared = ? AND date >= ? AND date < ?",
			employeeID, false, start, end).
		Scan(&loans).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum loans: %w", err)
	}
	return loans, nil
}

// EmployeeBalanceInMonth is commission minus advances for the month.
func (s *ReportsService) EmployeeBalanceInMonth(employeeID uint, year int, month time.Month) (float64, error) {
	commission, err := s.EmployeeCommissionInMonth(employeeID, year, month)
	if err != nil {
		return 0, err
	}
	loans, err := s.EmployeeLoansInMonth(employeeID, year, month)
	if err != nil {
		return 0, err
	}
	return commission - loans, nil
}

// CategoryExpensesInMonth sums a single expense category for the month.
func (s *ReportsService) CategoryExpensesInMonth(category string, year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var total float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ? AND date >= ? AND date < ?", category, start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum category expenses: %w", err)
	}
	return total, nil
}

// TotalExpensesInMonth sums every expense in the month.
func (s *ReportsService) TotalExpensesInMonth(year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var total float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date >= ? AND date < ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// GeneralExpensesInMonth is the month's expenses outside the three special
// buckets (shop purchases, daily labor, supplier payments).
func (s *ReportsService) GeneralExpensesInMonth(year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var total float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category NOT IN ? AND date >= ? AND date < ?",
			[]string{models.CategoryShopPurchases, models.CategoryDailyLabor, models.CategorySupplierPayments},
			start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum general expenses: %w", err)
	}
	return total, nil
}

// MaterialDeductionsInMonth sums the hidden material costs the house kept
// back from commissions during the month.
func (s *ReportsService) MaterialDeductionsInMonth(year int, month time.Month) (float64, error) {
	start, end := monthRange(year, month)

	var total float64
	err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(material_deduction), 0)").
		Where("date >= ? AND date < ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum material deductions: %w", err)
	}
	return total, nil
}

// InventoryValue is the stock on hand valued at sale price. Negative
// quantities count as negative value so oversold stock is visible.
func (s *ReportsService) InventoryValue() (float64, error) {
	var total float64
	err := s.db.Model(&models.Product{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to value inventory: %w", err)
	}
	return total, nil
}

// MonthlyAdminReport assembles the owner's month-end statement.
func (s *ReportsService) MonthlyAdminReport(year int, month time.Month) (*MonthlyAdminReport, error) {
	report := &MonthlyAdminReport{Year: year, Month: month}

	var err error
	if report.NetServices, err = s.NetServicesInMonth(year, month); err != nil {
		return nil, err
	}
	if report.NetProducts, err = s.NetProductsInMonth(year, month); err != nil {
		return nil, err
	}
	report.TotalRevenue = report.NetServices + report.NetProducts

	if report.GeneralExpenses, err = s.GeneralExpensesInMonth(year, month); err != nil {
		return nil, err
	}
	if report.ShopPurchases, err = s.CategoryExpensesInMonth(models.CategoryShopPurchases, year, month); err != nil {
		return nil, err
	}
	if report.DailyLabor, err = s.CategoryExpensesInMonth(models.CategoryDailyLabor, year, month); err != nil {
		return nil, err
	}
	if report.SupplierPayments, err = s.CategoryExpensesInMonth(models.CategorySupplierPayments, year, month); err != nil {
		return nil, err
	}
	report.TotalExpenses = report.GeneralExpenses + report.ShopPurchases +
		report.DailyLabor + report.SupplierPayments
	report.NetProfit = report.TotalRevenue - report.TotalExpenses

	if report.MaterialDeductions, err = s.MaterialDeductionsInMonth(year, month); err != nil {
		return nil, err
	}
	if report.InventoryValue, err = s.InventoryValue(); err != nil {
		return nil, err
	}
	if report.PendingSupplierBalance, err = s.suppliers.PendingBalance(); err != nil {
		return nil, err
	}

	var employees []models.Employee
	if err := s.db.Order("name").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	for _, employee := range employees {
		commission, err := s.EmployeeCommissionInMonth(employee.ID, year, month)
		if err != nil {
			return nil, err
		}
		loans, err := s.EmployeeLoansInMonth(employee.ID, year, month)
		if err != nil {
			return nil, err
		}
		report.EmployeeCommissions = append(report.EmployeeCommissions, EmployeeCommission{
			EmployeeID: employee.ID,
			Name:       employee.Name,
			Commission: commission,
			Loans:      loans,
			Balance:    commission - loans,
		})
	}

	return report, nil
}
