package geofence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
)

// Radius bounds in meters, enforced before any provider call.
const (
	DefaultRadiusMeters = 25
	MinRadiusMeters     = 10
	MaxRadiusMeters     = 10000
)

// Geofence is the provider-side representation of a circular fence.
// Coordinates are [longitude, latitude].
type Geofence struct {
	Coordinates  [2]float64             `json:"coordinates"`
	RadiusMeters float64                `json:"radiusMeters"`
	Description  string                 `json:"description"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// Ref identifies a fence at the provider.
type Ref struct {
	ID         string `json:"id"`
	Tag        string `json:"tag"`
	ExternalID string `json:"externalId"`
}

// Provider is the external geofencing API consumed by the dealer
// consistency protocol. Upsert is idempotent per (tag, externalID);
// Delete treats a remote "not found" as success.
type Provider interface {
	Upsert(ctx context.Context, tag, externalID string, fence Geofence) (*Ref, error)
	Delete(ctx context.Context, tag, externalID string) (bool, error)
}

// Client talks to a Radar-style geofence HTTP API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", secretKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: client}
}

// ClampRadius forces radius into the provider-accepted range, using the
// default when unset.
func ClampRadius(radius float64) float64 {
	if radius == 0 {
		return DefaultRadiusMeters
	}
	if radius < MinRadiusMeters {
		return MinRadiusMeters
	}
	if radius > MaxRadiusMeters {
		return MaxRadiusMeters
	}
	return radius
}

type upsertResponse struct {
	Geofence *Ref `json:"geofence"`
}

// Upsert creates or replaces the fence addressed by (tag, externalID).
func (c *Client) Upsert(ctx context.Context, tag, externalID string, fence Geofence) (*Ref, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fence).
		Put("/geofences/" + tag + "/" + externalID)
	if err != nil {
		return nil, apperrors.Dependency("geofence provider unreachable", err)
	}
	if resp.IsError() {
		return nil, apperrors.Dependency(
			fmt.Sprintf("geofence provider returned status %d", resp.StatusCode()), nil)
	}

	var out upsertResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil || out.Geofence == nil {
		return nil, apperrors.Dependency("malformed geofence provider response", err)
	}
	return out.Geofence, nil
}

// Delete removes the fence addressed by (tag, externalID). A remote 404
// is reported as a successful (idempotent) delete.
func (c *Client) Delete(ctx context.Context, tag, externalID string) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/geofences/" + tag + "/" + externalID)
	if err != nil {
		return false, apperrors.Dependency("geofence provider unreachable", err)
	}
	if resp.StatusCode() == 404 {
		return true, nil
	}
	if resp.IsError() {
		return false, apperrors.Dependency(
			fmt.Sprintf("geofence provider returned status %d", resp.StatusCode()), nil)
	}
	return true, nil
}
