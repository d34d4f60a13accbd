package models

import (
	"time"

	"github.com/google/uuid"
)

// SalesReport tracks monthly target vs. achievement per salesperson.
type SalesReport struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ReportDate          time.Time `gorm:"type:date;not null;index" json:"reportDate"`
	MonthlyTarget       float64   `json:"monthlyTarget"`
	TillDateAchievement float64   `json:"tillDateAchievement"`
	YesterdayTarget     float64   `json:"yesterdayTarget"`
	YesterdayAchievement float64  `json:"yesterdayAchievement"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CollectionReport records a payment collected from a dealer.
type CollectionReport struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	DealerID        uuid.UUID `gorm:"type:uuid;not null;index" json:"dealerId"`
	CollectedOn     time.Time `gorm:"type:date;not null;index" json:"collectedOn"`
	CollectedAmount float64   `gorm:"not null" json:"collectedAmount"`
	PaymentMode     string    `gorm:"size:50" json:"paymentMode"`
	Remarks         string    `gorm:"size:1000" json:"remarks"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CompetitionReport captures competitor brand intelligence from the field.
type CompetitionReport struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ReportDate   time.Time `gorm:"type:date;not null;index" json:"reportDate"`
	BrandName    string    `gorm:"size:255;not null" json:"brandName"`
	Billing      float64   `json:"billing"`
	NOD          float64   `json:"nod"`
	Retail       float64   `json:"retail"`
	SchemesYesNo string    `gorm:"size:10" json:"schemesYesNo"`
	AvgSchemeCost float64  `json:"avgSchemeCost"`
	Remarks      string    `gorm:"size:1000" json:"remarks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Brand is the master list of brands dealers can sell.
type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
