package dto

import "github.com/google/uuid"

type CreateDealerRequest struct {
	UserID         *uuid.UUID `json:"userId"`
	ParentDealerID *uuid.UUID `json:"parentDealerId"`
	Name           string     `json:"name"`
	Region         string     `json:"region"`
	Area           string     `json:"area"`
	Phone          string     `json:"phoneNo"`
	Address        string     `json:"address"`
	PinCode        string     `json:"pinCode"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	GeofenceRadius *float64   `json:"geofenceRadius"`
	TotalPotential float64    `json:"totalPotential"`
	BestPotential  float64    `json:"bestPotential"`
	BrandSelling   []string   `json:"brandSelling"`
}

// UpdateDealerRequest is a partial patch; only non-nil fields apply.
type UpdateDealerRequest struct {
	UserID             *uuid.UUID `json:"userId"`
	ParentDealerID     *uuid.UUID `json:"parentDealerId"`
	Name               *string    `json:"name"`
	Region             *string    `json:"region"`
	Area               *string    `json:"area"`
	Phone              *string    `json:"phoneNo"`
	Address            *string    `json:"address"`
	PinCode            *string    `json:"pinCode"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	GeofenceRadius     *float64   `json:"geofenceRadius"`
	TotalPotential     *float64   `json:"totalPotential"`
	BestPotential      *float64   `json:"bestPotential"`
	BrandSelling       []string   `json:"brandSelling"`
	VerificationStatus *string    `json:"verificationStatus"`
}

// DealerResponse carries the stored record plus the provider-side
// geofence reference when the operation touched the provider.
type DealerResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	GeofenceRef interface{} `json:"geofenceRef,omitempty"`
}
