package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/dto"
	"github.com/habibieebhy/fieldforce-backend/internal/geofence"
	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
)

// fakeDealerStore keeps dealers in a map and records call order.
type fakeDealerStore struct {
	dealers   map[uuid.UUID]*models.Dealer
	insertErr error
	calls     []string
}

func newFakeStore() *fakeDealerStore {
	return &fakeDealerStore{dealers: make(map[uuid.UUID]*models.Dealer)}
}

func (f *fakeDealerStore) Insert(_ context.Context, d *models.Dealer) error {
	f.calls = append(f.calls, "insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	cp := *d
	f.dealers[d.ID] = &cp
	return nil
}

func (f *fakeDealerStore) FindByID(_ context.Context, id uuid.UUID) (*models.Dealer, error) {
	f.calls = append(f.calls, "findByID")
	d, ok := f.dealers[id]
	if !ok {
		return nil, apperrors.NotFound("dealer not found")
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDealerStore) Find(_ context.Context, _ *query.Filter) ([]models.Dealer, error) {
	f.calls = append(f.calls, "find")
	out := make([]models.Dealer, 0, len(f.dealers))
	for _, d := range f.dealers {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDealerStore) Update(_ context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Dealer, error) {
	f.calls = append(f.calls, "update")
	d, ok := f.dealers[id]
	if !ok {
		return nil, apperrors.NotFound("dealer not found")
	}
	if v, ok := patch["latitude"]; ok {
		d.Latitude = v.(float64)
	}
	if v, ok := patch["longitude"]; ok {
		d.Longitude = v.(float64)
	}
	if v, ok := patch["name"]; ok {
		d.Name = v.(string)
	}
	if v, ok := patch["geofence_radius"]; ok {
		d.GeofenceRadius = v.(float64)
	}
	if v, ok := patch["verification_status"]; ok {
		d.VerificationStatus = v.(string)
	}
	if v, ok := patch["region"]; ok {
		d.Region = v.(string)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDealerStore) Delete(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "delete")
	if _, ok := f.dealers[id]; !ok {
		return apperrors.NotFound("dealer not found")
	}
	delete(f.dealers, id)
	return nil
}

func (f *fakeDealerStore) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	f.calls = append(f.calls, "deleteByIDs")
	var n int64
	for _, id := range ids {
		if _, ok := f.dealers[id]; ok {
			delete(f.dealers, id)
			n++
		}
	}
	return n, nil
}

// fakeProvider records provider calls and can fail selectively.
type fakeProvider struct {
	upserts    []string
	deletes    []string
	lastFence  geofence.Geofence
	upsertErr  error
	deleteErr  error
	failDelete map[string]bool
}

func (f *fakeProvider) Upsert(_ context.Context, tag, externalID string, fence geofence.Geofence) (*geofence.Ref, error) {
	f.upserts = append(f.upserts, externalID)
	f.lastFence = fence
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return &geofence.Ref{ID: "gf_1", Tag: tag, ExternalID: externalID}, nil
}

func (f *fakeProvider) Delete(_ context.Context, _, externalID string) (bool, error) {
	f.deletes = append(f.deletes, externalID)
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.failDelete[externalID] {
		return false, apperrors.Dependency("geofence provider returned status 500", nil)
	}
	return true, nil
}

func ptr[T any](v T) *T { return &v }

func validCreate() *dto.CreateDealerRequest {
	return &dto.CreateDealerRequest{
		Name:      "North Agency",
		Latitude:  ptr(26.14),
		Longitude: ptr(91.75),
	}
}

func seedDealer(store *fakeDealerStore) *models.Dealer {
	d := &models.Dealer{
		ID:                 uuid.New(),
		Name:               "Seeded Dealer",
		Latitude:           26.14,
		Longitude:          91.75,
		GeofenceRadius:     25,
		VerificationStatus: models.VerificationPending,
	}
	store.dealers[d.ID] = d
	return d
}

func TestExternalID(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assert.Equal(t, "dealer:11111111-2222-3333-4444-555555555555", ExternalID(id))
}

func TestCreateValidation(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)

	cases := []*dto.CreateDealerRequest{
		{Latitude: ptr(26.14), Longitude: ptr(91.75)},              // no name
		{Name: "   ", Latitude: ptr(26.14), Longitude: ptr(91.75)}, // blank name
		{Name: "X", Longitude: ptr(91.75)},                         // no latitude
		{Name: "X", Latitude: ptr(26.14)},                          // no longitude
		{Name: "X", Latitude: ptr(95.0), Longitude: ptr(91.75)},    // lat out of range
		{Name: "X", Latitude: ptr(26.14), Longitude: ptr(181.0)},   // lng out of range
	}
	for i, req := range cases {
		_, _, err := svc.Create(context.Background(), req)
		require.Error(t, err, "case %d", i)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "case %d", i)
	}

	// Validation failures never reach the store or the provider.
	assert.Empty(t, store.calls)
	assert.Empty(t, provider.upserts)
}

func TestCreateSuccess(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)

	req := validCreate()
	req.BrandSelling = []string{"Alpha", "Beta"}
	dealer, ref, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, dealer)
	require.NotNil(t, ref)
	assert.Equal(t, ExternalID(dealer.ID), ref.ExternalID)
	assert.Equal(t, models.VerificationPending, dealer.VerificationStatus)
	assert.Equal(t, float64(geofence.DefaultRadiusMeters), dealer.GeofenceRadius)
	assert.Contains(t, store.dealers, dealer.ID)

	// Fence coordinates are [lng, lat]; metadata holds only the
	// immutable correlation key.
	assert.Equal(t, [2]float64{91.75, 26.14}, provider.lastFence.Coordinates)
	assert.Equal(t, map[string]interface{}{"dealerId": dealer.ID.String()}, provider.lastFence.Metadata)
	assert.Equal(t, []string{"insert"}, store.calls)
}

func TestCreateClampsRadius(t *testing.T) {
	svc := NewDealerService(newFakeStore(), &fakeProvider{})

	req := validCreate()
	req.GeofenceRadius = ptr(3.0)
	dealer, _, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, float64(geofence.MinRadiusMeters), dealer.GeofenceRadius)
}

func TestCreateCompensatesOnFenceFailure(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{upsertErr: apperrors.Dependency("provider down", nil)}
	svc := NewDealerService(store, provider)

	dealer, ref, err := svc.Create(context.Background(), validCreate())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDependency))
	assert.Nil(t, dealer)
	assert.Nil(t, ref)

	// The record insert was compensated; no orphan remains.
	assert.Empty(t, store.dealers)
	assert.Equal(t, []string{"insert", "delete"}, store.calls)
}

func TestCreateStoreFailureSkipsProvider(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("db down")
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)

	_, _, err := svc.Create(context.Background(), validCreate())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))
	assert.Empty(t, provider.upserts)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewDealerService(newFakeStore(), &fakeProvider{})

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateDealerRequest{Name: ptr("X")})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateNonSpatialSkipsProvider(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	updated, err := svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{
		Region: ptr("East"),
	})

	require.NoError(t, err)
	assert.Equal(t, "East", updated.Region)
	assert.Empty(t, provider.upserts)
}

func TestUpdateSpatialUpsertsBeforeWrite(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	updated, err := svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{
		Latitude: ptr(27.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 27.0, updated.Latitude)
	require.Len(t, provider.upserts, 1)
	assert.Equal(t, ExternalID(seeded.ID), provider.upserts[0])

	// The fence carries the effective post-patch values.
	assert.Equal(t, [2]float64{seeded.Longitude, 27.0}, provider.lastFence.Coordinates)
}

func TestUpdateSpatialProviderFailureLeavesRecordUntouched(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{upsertErr: apperrors.Dependency("provider down", nil)}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	_, err := svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{
		Latitude: ptr(27.0),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDependency))
	assert.Equal(t, 26.14, store.dealers[seeded.ID].Latitude)
	assert.NotContains(t, store.calls, "update")
}

func TestUpdateVerificationStatus(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	updated, err := svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{
		VerificationStatus: ptr("verified"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, updated.VerificationStatus)
	assert.Empty(t, provider.upserts)

	_, err = svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{
		VerificationStatus: ptr("REJECTED"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	updated, err := svc.Update(context.Background(), seeded.ID, &dto.UpdateDealerRequest{})

	require.NoError(t, err)
	assert.Equal(t, seeded.Name, updated.Name)
	assert.Empty(t, provider.upserts)
	assert.NotContains(t, store.calls, "update")
}

func TestDeleteFenceFirst(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	deleted, err := svc.Delete(context.Background(), seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, deleted.ID)
	assert.Empty(t, store.dealers)
	assert.Equal(t, []string{ExternalID(seeded.ID)}, provider.deletes)
}

func TestDeleteProviderFailureKeepsRecord(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{deleteErr: apperrors.Dependency("provider down", nil)}
	svc := NewDealerService(store, provider)
	seeded := seedDealer(store)

	_, err := svc.Delete(context.Background(), seeded.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDependency))
	assert.Contains(t, store.dealers, seeded.ID)
	assert.NotContains(t, store.calls, "delete")
}

func TestDeleteNotFound(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewDealerService(newFakeStore(), provider)

	_, err := svc.Delete(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Empty(t, provider.deletes)
}

func TestBulkDeleteBestEffort(t *testing.T) {
	store := newFakeStore()
	a := seedDealer(store)
	b := seedDealer(store)
	c := seedDealer(store)

	provider := &fakeProvider{failDelete: map[string]bool{ExternalID(b.ID): true}}
	svc := NewDealerService(store, provider)

	result, err := svc.BulkDelete(context.Background(), &query.Filter{Conditions: []query.Condition{
		{Expr: "region = ?", Args: []interface{}{"any"}},
	}})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 2, result.DeletedCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, b.ID.String(), result.Failures[0].ID)

	// The dealer whose fence survived keeps its record too.
	assert.Contains(t, store.dealers, b.ID)
	assert.NotContains(t, store.dealers, a.ID)
	assert.NotContains(t, store.dealers, c.ID)
}

func TestBulkDeleteEmptyMatch(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := NewDealerService(store, provider)

	result, err := svc.BulkDelete(context.Background(), &query.Filter{Conditions: []query.Condition{
		{Expr: "region = ?", Args: []interface{}{"nowhere"}},
	}})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0, result.DeletedCount)
	assert.Empty(t, result.Failures)
	assert.NotNil(t, result.Failures)
	assert.Empty(t, provider.deletes)
}
