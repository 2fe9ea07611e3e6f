package models

import (
	"time"
)

// Employee represents a staff member referenced by sales, attendance and loans
type Employee struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
}

// Attendance is one presence interval for an employee. An employee may have
// several rows per day; each check-in opens a new row and check-out closes
// the most recent open one.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       string    `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	CheckIn    string    `json:"check_in"`                   // HH:MM:SS
	CheckOut   *string   `json:"check_out,omitempty"`
	Manual     bool      `gorm:"default:false" json:"manual"`
	Note       *string   `json:"note,omitempty"`
}

// TableName keeps the singular table name used by existing stores.
func (Attendance) TableName() string {
	return "attendance"
}

// Open reports whether the row is still waiting for a check-out.
func (a *Attendance) Open() bool {
	return a.CheckOut == nil
}

// Loan is a payroll advance, subtracted from the employee balance in reports
// until it is cleared.
type Loan struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       time.Time `gorm:"not null" json:"date"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Note       *string   `json:"note,omitempty"`
	Cleared    bool      `gorm:"default:false" json:"cleared"`
}
