package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EmployeeService manages staff records and payroll advances
type EmployeeService struct {
	db     *gorm.DB
	shifts *ShiftService
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(shifts *ShiftService) *EmployeeService {
	return &EmployeeService{db: database.GetDB(), shifts: shifts}
}

// AddEmployee registers a staff member. Names are unique.
func (s *EmployeeService) AddEmployee(name string) (*models.Employee, error) {
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}

	employee := models.Employee{Name: name}
	if err := s.db.Create(&employee).Error; err != nil {
		return nil, fmt.Errorf("failed to add employee: %w", err)
	}
	return &employee, nil
}

// ListEmployees returns all staff ordered by name.
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Order("name").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes a staff member, but only when nothing references
// them. History stays intact; departed staff with records are kept.
func (s *EmployeeService) DeleteEmployee(id uint) error {
	for _, ref := range []struct {
		model any
		label string
	}{
		{&models.Sale{}, "sales"},
		{&models.Loan{}, "loans"},
		{&models.Attendance{}, "attendance entries"},
	} {
		var count int64
		if err := s.db.Model(ref.model).Where("employee_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check employee references: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("employee has %s on record and cannot be deleted", ref.label)
		}
	}

	result := s.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

// AddLoan records a payroll advance for an employee.
func (s *EmployeeService) AddLoan(employeeID uint, amount float64, note *string) (*models.Loan, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("loan amount must be positive")
	}

	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}

	date, _, err := s.shifts.NormalizeDate(time.Now())
	if err != nil {
		return nil, err
	}

	loan := models.Loan{
		EmployeeID: employeeID,
		Date:       date,
		Amount:     amount,
		Note:       note,
	}
	if err := s.db.Create(&loan).Error; err != nil {
		return nil, fmt.Errorf("failed to record loan: %w", err)
	}

	return &loan, nil
}

// ListLoans returns an employee's advances, newest first.
func (s *EmployeeService) ListLoans(employeeID uint) ([]models.Loan, error) {
	var loans []models.Loan
	err := s.db.Where("employee_id = ?", employeeID).Order("date DESC").Find(&loans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	return loans, nil
}

// ClearAccount settles an employee: every outstanding loan and every
// uncleared commission-bearing sale is marked cleared in one transaction, so
// the balance resets to zero without losing history.
func (s *EmployeeService) ClearAccount(employeeID uint) error {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		return fmt.Errorf("employee not found: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Loan{}).
			Where("employee_id = ? AND cleared = ?", employeeID, false).
			Update("cleared", true).Error
		if err != nil {
			return fmt.Errorf("failed to clear loans: %w", err)
		}

		err = tx.Model(&models.Sale{}).
			Where("employee_id = ? AND cleared = ?", employeeID, false).
			Update("cleared", true).Error
		if err != nil {
			return fmt.Errorf("failed to clear sales: %w", err)
		}
		return nil
	})
}
