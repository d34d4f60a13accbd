package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/dto"
	"github.com/habibieebhy/fieldforce-backend/internal/geofence"
	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
	"github.com/lib/pq"
)

// GeofenceTag groups all dealer fences at the provider.
const GeofenceTag = "dealer"

// ExternalID is the deterministic provider-side key for a dealer's fence.
func ExternalID(id uuid.UUID) string {
	return "dealer:" + id.String()
}

// DealerService coordinates dealer writes with the external geofence
// provider. The two stores have no shared transaction, so every mutation
// follows a fixed two-step order with a compensating action:
//
//   - create: insert record, then create fence; on fence failure the
//     record insert is compensated with a delete.
//   - update: upsert fence (when spatial/identity fields change) before
//     writing the record, so a provider failure leaves the record as-is.
//   - delete: remove the fence first (404 counts as removed), then the
//     record; a provider failure keeps both intact.
type DealerService struct {
	store  DealerStore
	fences geofence.Provider
}

func NewDealerService(store DealerStore, fences geofence.Provider) *DealerService {
	return &DealerService{store: store, fences: fences}
}

type BulkDeleteResult struct {
	DeletedCount int
	TotalCount   int
	Failures     []dto.BulkDeleteFailure
}

func (s *DealerService) Create(ctx context.Context, req *dto.CreateDealerRequest) (*models.Dealer, *geofence.Ref, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, apperrors.Validation("name is required")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, nil, apperrors.Validation("latitude and longitude are required")
	}
	if err := validateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return nil, nil, err
	}

	radius := float64(geofence.DefaultRadiusMeters)
	if req.GeofenceRadius != nil {
		radius = geofence.ClampRadius(*req.GeofenceRadius)
	}

	dealer := &models.Dealer{
		ID:                 uuid.New(),
		UserID:             req.UserID,
		ParentDealerID:     req.ParentDealerID,
		Name:               strings.TrimSpace(req.Name),
		Region:             req.Region,
		Area:               req.Area,
		Phone:              req.Phone,
		Address:            req.Address,
		PinCode:            req.PinCode,
		Latitude:           *req.Latitude,
		Longitude:          *req.Longitude,
		GeofenceRadius:     radius,
		TotalPotential:     req.TotalPotential,
		BestPotential:      req.BestPotential,
		BrandSelling:       pq.StringArray(req.BrandSelling),
		VerificationStatus: models.VerificationPending,
	}

	if err := s.store.Insert(ctx, dealer); err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	ref, err := s.fences.Upsert(ctx, GeofenceTag, ExternalID(dealer.ID), fenceFor(dealer))
	if err != nil {
		// Compensate the record insert so no dealer exists without a fence.
		if delErr := s.store.Delete(ctx, dealer.ID); delErr != nil {
			slog.Error("dealer compensation delete failed",
				"dealer_id", dealer.ID, "error", delErr)
		}
		return nil, nil, err
	}

	return dealer, ref, nil
}

func (s *DealerService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDealerRequest) (*models.Dealer, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	spatial := false

	if req.Latitude != nil {
		if err := validateCoordinates(*req.Latitude, current.Longitude); err != nil {
			return nil, err
		}
		updates["latitude"] = *req.Latitude
		spatial = true
	}
	if req.Longitude != nil {
		if err := validateCoordinates(current.Latitude, *req.Longitude); err != nil {
			return nil, err
		}
		updates["longitude"] = *req.Longitude
		spatial = true
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, apperrors.Validation("name cannot be empty")
		}
		updates["name"] = trimmed
		spatial = true
	}
	if req.GeofenceRadius != nil {
		updates["geofence_radius"] = geofence.ClampRadius(*req.GeofenceRadius)
		spatial = true
	}
	if req.VerificationStatus != nil {
		status := strings.ToUpper(*req.VerificationStatus)
		if status != models.VerificationPending && status != models.VerificationVerified {
			return nil, apperrors.Validation("verificationStatus must be PENDING or VERIFIED")
		}
		updates["verification_status"] = status
	}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	if req.ParentDealerID != nil {
		updates["parent_dealer_id"] = *req.ParentDealerID
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Area != nil {
		updates["area"] = *req.Area
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PinCode != nil {
		updates["pin_code"] = *req.PinCode
	}
	if req.TotalPotential != nil {
		updates["total_potential"] = *req.TotalPotential
	}
	if req.BestPotential != nil {
		updates["best_potential"] = *req.BestPotential
	}
	if req.BrandSelling != nil {
		updates["brand_selling"] = pq.StringArray(req.BrandSelling)
	}

	if len(updates) == 0 {
		return current, nil
	}

	if spatial {
		// Upsert with the effective post-patch values before touching the
		// record, so a provider failure leaves the stored pair consistent.
		effective := *current
		if req.Latitude != nil {
			effective.Latitude = *req.Latitude
		}
		if req.Longitude != nil {
			effective.Longitude = *req.Longitude
		}
		if req.Name != nil {
			effective.Name = strings.TrimSpace(*req.Name)
		}
		if req.GeofenceRadius != nil {
			effective.GeofenceRadius = geofence.ClampRadius(*req.GeofenceRadius)
		}
		if _, err := s.fences.Upsert(ctx, GeofenceTag, ExternalID(id), fenceFor(&effective)); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.Update(ctx, id, updates)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return updated, nil
}

func (s *DealerService) Delete(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	dealer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Fence goes first; the record is only removed once the provider has
	// confirmed the fence is gone (or was never there).
	if _, err := s.fences.Delete(ctx, GeofenceTag, ExternalID(id)); err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}
	return dealer, nil
}

// BulkDelete removes every dealer matching f, best-effort: fence
// deletions that fail are collected instead of aborting the batch, and
// only records whose fence was confirmed gone are deleted. This is a
// deliberate contrast to the all-or-nothing single delete.
func (s *DealerService) BulkDelete(ctx context.Context, f *query.Filter) (*BulkDeleteResult, error) {
	dealers, err := s.store.Find(ctx, f)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := &BulkDeleteResult{
		TotalCount: len(dealers),
		Failures:   []dto.BulkDeleteFailure{},
	}

	var deletable []uuid.UUID
	for _, d := range dealers {
		if _, err := s.fences.Delete(ctx, GeofenceTag, ExternalID(d.ID)); err != nil {
			result.Failures = append(result.Failures, dto.BulkDeleteFailure{
				ID:    d.ID.String(),
				Error: err.Error(),
			})
			continue
		}
		deletable = append(deletable, d.ID)
	}

	if len(deletable) > 0 {
		n, err := s.store.DeleteByIDs(ctx, deletable)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		result.DeletedCount = int(n)
	}

	return result, nil
}

func (s *DealerService) BulkDeleteByUser(ctx context.Context, userID uuid.UUID) (*BulkDeleteResult, error) {
	return s.BulkDelete(ctx, &query.Filter{Conditions: []query.Condition{
		{Expr: "user_id = ?", Args: []interface{}{userID}},
	}})
}

func (s *DealerService) BulkDeleteByParent(ctx context.Context, parentID uuid.UUID) (*BulkDeleteResult, error) {
	return s.BulkDelete(ctx, &query.Filter{Conditions: []query.Condition{
		{Expr: "parent_dealer_id = ?", Args: []interface{}{parentID}},
	}})
}

// fenceFor carries only fields kept in sync by the update path; mutable
// record state like verification status stays out of the metadata so it
// cannot go stale at the provider.
func fenceFor(d *models.Dealer) geofence.Geofence {
	return geofence.Geofence{
		Coordinates:  [2]float64{d.Longitude, d.Latitude},
		RadiusMeters: d.GeofenceRadius,
		Description:  d.Name,
		Metadata: map[string]interface{}{
			"dealerId": d.ID.String(),
		},
	}
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.Validation("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return apperrors.Validation("longitude must be between -180 and 180")
	}
	return nil
}
