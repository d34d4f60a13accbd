package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SalesOrder records an order taken from a dealer.
type SalesOrder struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SalesmanID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"salesmanId"`
	DealerID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"dealerId"`
	OrderDate         time.Time      `gorm:"type:date;not null;index" json:"orderDate"`
	Quantity          float64        `gorm:"not null" json:"quantity"`
	Unit              string         `gorm:"size:20;default:'MT'" json:"unit"`
	OrderTotal        float64        `json:"orderTotal"`
	AdvancePayment    float64        `json:"advancePayment"`
	PendingPayment    float64        `json:"pendingPayment"`
	EstimatedDelivery *time.Time     `gorm:"type:date" json:"estimatedDelivery,omitempty"`
	ItemDetails       datatypes.JSON `gorm:"type:jsonb" json:"itemDetails,omitempty"`
	Remarks           string         `gorm:"size:1000" json:"remarks"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
