package models

import (
	"time"
)

// Shift is a cashier's open-to-close work session. At most one shift is
// active at a time; while it is, recorded sales, expenses and check-ins are
// dated to the shift's opening day so late-night activity after midnight
// still counts toward it.
type Shift struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ShiftNumber int        `gorm:"not null" json:"shift_number"`
	CashierName string     `gorm:"not null" json:"cashier_name"`
	OpenedAt    time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	Active      bool       `gorm:"default:false;index" json:"active"`
}

// Day returns the calendar day the shift opened on, at midnight.
func (s *Shift) Day() time.Time {
	y, m, d := s.OpenedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.OpenedAt.Location())
}
