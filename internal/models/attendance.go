package models

import (
	"time"

	"github.com/google/uuid"
)

// SalesmanAttendance is a daily punch-in/punch-out with location.
type SalesmanAttendance struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	AttendanceDate  time.Time  `gorm:"type:date;not null;index" json:"attendanceDate"`
	LocationName    string     `gorm:"size:255" json:"locationName"`
	InTimeTimestamp *time.Time `json:"inTimeTimestamp,omitempty"`
	OutTimeTimestamp *time.Time `json:"outTimeTimestamp,omitempty"`
	InTimeLatitude  float64    `gorm:"type:decimal(10,7)" json:"inTimeLatitude"`
	InTimeLongitude float64    `gorm:"type:decimal(10,7)" json:"inTimeLongitude"`
	OutTimeLatitude float64    `gorm:"type:decimal(10,7)" json:"outTimeLatitude"`
	OutTimeLongitude float64   `gorm:"type:decimal(10,7)" json:"outTimeLongitude"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// LeaveApplication is a staff leave request reviewed by an admin.
type LeaveApplication struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	LeaveType    string    `gorm:"size:50;not null" json:"leaveType"`
	StartDate    time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate      time.Time `gorm:"type:date;not null" json:"endDate"`
	Reason       string    `gorm:"size:1000" json:"reason"`
	Status       string    `gorm:"size:20;default:'PENDING'" json:"status"`
	AdminRemarks string    `gorm:"size:1000" json:"adminRemarks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
