package models

import (
	"time"

	"github.com/google/uuid"
)

// PermanentJourneyPlan is a planned route assigned to a salesperson.
type PermanentJourneyPlan struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedByID      *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	PlanDate         time.Time  `gorm:"type:date;not null;index" json:"planDate"`
	AreaToBeVisited  string     `gorm:"size:500;not null" json:"areaToBeVisited"`
	Description      string     `gorm:"size:1000" json:"description"`
	Status           string     `gorm:"size:20;default:'PLANNED'" json:"status"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
