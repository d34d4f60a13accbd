package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles.
const (
	RoleSalesperson = "salesperson"
	RoleTechnical   = "technical"
	RoleAdmin       = "admin"
)

// User is a field-staff account (salesperson, technical staff or admin).
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FirstName string         `gorm:"size:100" json:"firstName"`
	LastName  string         `gorm:"size:100" json:"lastName"`
	Phone     string         `gorm:"size:20" json:"phoneNumber"`
	Role      string         `gorm:"size:20;default:'salesperson'" json:"role"`
	Region    string         `gorm:"size:100" json:"region"`
	Area      string         `gorm:"size:100" json:"area"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
