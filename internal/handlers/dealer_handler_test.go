package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/geofence"
	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
	"github.com/habibieebhy/fieldforce-backend/internal/services"
)

// In-memory doubles; the handler is exercised through a real
// DealerService so the response envelopes reflect the full write path.

type memStore struct {
	dealers map[uuid.UUID]*models.Dealer
}

func newMemStore() *memStore {
	return &memStore{dealers: make(map[uuid.UUID]*models.Dealer)}
}

func (m *memStore) Insert(_ context.Context, d *models.Dealer) error {
	cp := *d
	m.dealers[d.ID] = &cp
	return nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*models.Dealer, error) {
	d, ok := m.dealers[id]
	if !ok {
		return nil, apperrors.NotFound("dealer not found")
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) Find(_ context.Context, _ *query.Filter) ([]models.Dealer, error) {
	out := make([]models.Dealer, 0, len(m.dealers))
	for _, d := range m.dealers {
		out = append(out, *d)
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Dealer, error) {
	d, ok := m.dealers[id]
	if !ok {
		return nil, apperrors.NotFound("dealer not found")
	}
	if v, ok := patch["region"]; ok {
		d.Region = v.(string)
	}
	if v, ok := patch["latitude"]; ok {
		d.Latitude = v.(float64)
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.dealers[id]; !ok {
		return apperrors.NotFound("dealer not found")
	}
	delete(m.dealers, id)
	return nil
}

func (m *memStore) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.dealers[id]; ok {
			delete(m.dealers, id)
			n++
		}
	}
	return n, nil
}

type memProvider struct {
	upsertErr error
}

func (p *memProvider) Upsert(_ context.Context, tag, externalID string, _ geofence.Geofence) (*geofence.Ref, error) {
	if p.upsertErr != nil {
		return nil, p.upsertErr
	}
	return &geofence.Ref{ID: "gf_1", Tag: tag, ExternalID: externalID}, nil
}

func (p *memProvider) Delete(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func newDealerApp(store services.DealerStore, provider geofence.Provider) *fiber.App {
	h := NewDealerHandler(services.NewDealerService(store, provider))
	app := fiber.New()
	app.Post("/api/dealers", h.Create)
	app.Patch("/api/dealers/:id", h.Update)
	app.Delete("/api/dealers/user/:userId", h.DeleteByUser)
	app.Delete("/api/dealers/:id", h.Delete)
	app.Delete("/api/dealers", h.BulkDelete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestCreateDealerEndpoint(t *testing.T) {
	store := newMemStore()
	app := newDealerApp(store, &memProvider{})

	status, body := doJSON(t, app, fiber.MethodPost, "/api/dealers", map[string]interface{}{
		"name":      "North Agency",
		"latitude":  26.14,
		"longitude": 91.75,
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	id := data["id"].(string)
	assert.Equal(t, "North Agency", data["name"])

	ref := body["geofenceRef"].(map[string]interface{})
	assert.Equal(t, "dealer:"+id, ref["externalId"])
	assert.Equal(t, "dealer", ref["tag"])
}

func TestCreateDealerMissingCoordinates(t *testing.T) {
	app := newDealerApp(newMemStore(), &memProvider{})

	status, body := doJSON(t, app, fiber.MethodPost, "/api/dealers", map[string]interface{}{
		"name": "No Coordinates",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "latitude")
}

func TestCreateDealerProviderDown(t *testing.T) {
	store := newMemStore()
	provider := &memProvider{upsertErr: apperrors.Dependency("provider down", nil)}
	app := newDealerApp(store, provider)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/dealers", map[string]interface{}{
		"name":      "Unlucky",
		"latitude":  26.14,
		"longitude": 91.75,
	})

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, store.dealers)
}

func TestUpdateDealerEndpoint(t *testing.T) {
	store := newMemStore()
	seeded := &models.Dealer{ID: uuid.New(), Name: "Seed", Latitude: 26, Longitude: 91}
	store.dealers[seeded.ID] = seeded
	app := newDealerApp(store, &memProvider{})

	status, body := doJSON(t, app, fiber.MethodPatch, "/api/dealers/"+seeded.ID.String(),
		map[string]interface{}{"region": "East"})

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "East", data["region"])
}

func TestUpdateDealerBadID(t *testing.T) {
	app := newDealerApp(newMemStore(), &memProvider{})

	status, body := doJSON(t, app, fiber.MethodPatch, "/api/dealers/not-a-uuid",
		map[string]interface{}{"region": "East"})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestDeleteDealerNotFound(t *testing.T) {
	app := newDealerApp(newMemStore(), &memProvider{})

	status, body := doJSON(t, app, fiber.MethodDelete, "/api/dealers/"+uuid.NewString(), nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestBulkDeleteRequiresConfirm(t *testing.T) {
	app := newDealerApp(newMemStore(), &memProvider{})

	status, body := doJSON(t, app, fiber.MethodDelete, "/api/dealers?region=East", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "confirm")
}

func TestBulkDeleteRequiresFilter(t *testing.T) {
	app := newDealerApp(newMemStore(), &memProvider{})

	status, body := doJSON(t, app, fiber.MethodDelete, "/api/dealers?confirm=true", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "filter")
}

func TestBulkDeleteByUserEndpoint(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	d := &models.Dealer{ID: uuid.New(), Name: "Owned", UserID: &userID, Latitude: 26, Longitude: 91}
	store.dealers[d.ID] = d
	app := newDealerApp(store, &memProvider{})

	status, body := doJSON(t, app, fiber.MethodDelete,
		"/api/dealers/user/"+userID.String()+"?confirm=true", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["deletedCount"])
	assert.Equal(t, float64(1), body["totalCount"])
	assert.Empty(t, store.dealers)
}
