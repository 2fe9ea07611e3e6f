package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNoOpenAttendance is returned on check-out when the employee has no open
// attendance row to close.
var ErrNoOpenAttendance = errors.New("no open attendance entry for employee")

// AttendanceService tracks employee presence intervals
type AttendanceService struct {
	db     *gorm.DB
	shifts *ShiftService
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(shifts *ShiftService) *AttendanceService {
	return &AttendanceService{db: database.GetDB(), shifts: shifts}
}

// CheckIn opens a new presence interval for the employee. The row is dated
// to the active shift's day when a shift is open; the clock time is real.
func (s *AttendanceService) CheckIn(employeeID uint) (*models.Attendance, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}

	now, _, err := s.shifts.NormalizeDate(time.Now())
	if err != nil {
		return nil, err
	}

	entry := models.Attendance{
		EmployeeID: employeeID,
		Date:       now.Format("2006-01-02"),
		CheckIn:    time.Now().Format("15:04:05"),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	return &entry, nil
}

// CheckOut closes the employee's most recent open interval.
func (s *AttendanceService) CheckOut(employeeID uint) (*models.Attendance, error) {
	var entry models.Attendance
	err := s.db.Where("employee_id = ? AND check_out IS NULL", employeeID).
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenAttendance
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up attendance: %w", err)
	}

	out := time.Now().Format("15:04:05")
	entry.CheckOut = &out
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record check-out: %w", err)
	}

	return &entry, nil
}

// AddManualEntry records an interval entered after the fact, flagged so
// reports can tell it apart from live clock punches.
func (s *AttendanceService) AddManualEntry(employeeID uint, date, checkIn string, checkOut *string, note *string) (*models.Attendance, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if _, err := time.Parse("15:04:05", checkIn); err != nil {
		return nil, fmt.Errorf("invalid check-in time %q: %w", checkIn, err)
	}
	if checkOut != nil {
		if _, err := time.Parse("15:04:05", *checkOut); err != nil {
			return nil, fmt.Errorf("invalid check-out time %q: %w", *checkOut, err)
		}
	}

	entry := models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Manual:     true,
		Note:       note,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record manual attendance: %w", err)
	}

	return &entry, nil
}

// OpenEntry returns the employee's current open interval, or nil when the
// employee is checked out.
func (s *AttendanceService) OpenEntry(employeeID uint) (*models.Attendance, error) {
	var entry models.Attendance
	err := s.db.Where("employee_id = ? AND check_out IS NULL", employeeID).
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up attendance: %w", err)
	}
	return &entry, nil
}

// MonthlyReport returns a month's attendance rows with employees preloaded,
// ordered by day then check-in time.
func (s *AttendanceService) MonthlyReport(year int, month time.Month) ([]models.Attendance, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	var entries []models.Attendance
	err := s.db.Preload("Employee").
		Where("date LIKE ?", prefix+"%").
		Order("date, check_in").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance report: %w", err)
	}
	return entries, nil
}

// DeleteAll wipes the attendance log. Admin-only reset before a new period.
func (s *AttendanceService) DeleteAll() error {
	if err := s.db.Where("1 = 1").Delete(&models.Attendance{}).Error; err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}
	return nil
}

// DeleteEntry removes a single attendance row.
func (s *AttendanceService) DeleteEntry(id uint) error {
	result := s.db.Delete(&models.Attendance{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attendance entry not found")
	}
	return nil
}
