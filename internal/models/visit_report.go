package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyVisitReport is a salesperson's record of a single dealer visit.
type DailyVisitReport struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	DealerID             *uuid.UUID `gorm:"type:uuid;index" json:"dealerId,omitempty"`
	ReportDate           time.Time  `gorm:"type:date;not null;index" json:"reportDate"`
	DealerType           string     `gorm:"size:50" json:"dealerType"`
	Location             string     `gorm:"size:255" json:"location"`
	Latitude             float64    `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude            float64    `gorm:"type:decimal(10,7)" json:"longitude"`
	VisitType            string     `gorm:"size:50" json:"visitType"`
	TodayOrderMT         float64    `json:"todayOrderMt"`
	TodayCollectionRupees float64   `json:"todayCollectionRupees"`
	FeedbackFromDealer   string     `gorm:"size:1000" json:"feedbackFromDealer"`
	SolutionBySalesperson string    `gorm:"size:1000" json:"solutionBySalesperson"`
	CheckInTime          *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime         *time.Time `json:"checkOutTime,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// TechnicalVisitReport is a technical staff member's record of a site visit.
type TechnicalVisitReport struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	ReportDate          time.Time  `gorm:"type:date;not null;index" json:"reportDate"`
	VisitType           string     `gorm:"size:50" json:"visitType"`
	SiteName            string     `gorm:"size:255" json:"siteNameConcernedPerson"`
	Phone               string     `gorm:"size:20" json:"phoneNo"`
	EmailID             string     `gorm:"size:255" json:"emailId"`
	ClientsRemarks      string     `gorm:"size:1000" json:"clientsRemarks"`
	SalespersonRemarks  string     `gorm:"size:1000" json:"salespersonRemarks"`
	ServiceType         string     `gorm:"size:100" json:"serviceType"`
	ConversionStatus    string     `gorm:"size:50" json:"conversionStatus"`
	CheckInTime         *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime        *time.Time `json:"checkOutTime,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
