package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Dealer verification states.
const (
	VerificationPending  = "PENDING"
	VerificationVerified = "VERIFIED"
)

// Dealer is a point of sale managed by a salesperson. A dealer with
// coordinates has exactly one geofence at the external provider, keyed
// by "dealer:<id>". ParentDealerID models sub-dealers.
type Dealer struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             *uuid.UUID     `gorm:"type:uuid;index" json:"userId,omitempty"`
	ParentDealerID     *uuid.UUID     `gorm:"type:uuid;index" json:"parentDealerId,omitempty"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	Region             string         `gorm:"size:100" json:"region"`
	Area               string         `gorm:"size:100" json:"area"`
	Phone              string         `gorm:"size:20" json:"phoneNo"`
	Address            string         `gorm:"size:500" json:"address"`
	PinCode            string         `gorm:"size:10" json:"pinCode"`
	Latitude           float64        `gorm:"type:decimal(10,7);not null" json:"latitude"`
	Longitude          float64        `gorm:"type:decimal(10,7);not null" json:"longitude"`
	GeofenceRadius     float64        `gorm:"default:25" json:"geofenceRadius"`
	TotalPotential     float64        `json:"totalPotential"`
	BestPotential      float64        `json:"bestPotential"`
	BrandSelling       pq.StringArray `gorm:"type:text[]" json:"brandSelling"`
	VerificationStatus string         `gorm:"size:20;default:'PENDING'" json:"verificationStatus"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
