package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/collections"
	"github.com/habibieebhy/fieldforce-backend/internal/dto"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
	"github.com/habibieebhy/fieldforce-backend/internal/services"
)

// DealerHandler owns the dealer write paths, which run through the
// geofence consistency protocol instead of the generic CRUD handlers.
type DealerHandler struct {
	dealers *services.DealerService
}

func NewDealerHandler(dealers *services.DealerService) *DealerHandler {
	return &DealerHandler{dealers: dealers}
}

func (h *DealerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	dealer, ref, err := h.dealers.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DealerResponse{
		Success:     true,
		Data:        dealer,
		GeofenceRef: ref,
	})
}

func (h *DealerHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid dealer id"))
	}

	var req dto.UpdateDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	dealer, err := h.dealers.Update(c.Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: dealer})
}

func (h *DealerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid dealer id"))
	}

	dealer, err := h.dealers.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: dealer})
}

func (h *DealerHandler) DeleteByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}
	if !confirmed(c) {
		return respondError(c, apperrors.ConfirmationRequired("bulk delete requires confirm=true"))
	}

	result, err := h.dealers.BulkDeleteByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bulkResponse(result))
}

func (h *DealerHandler) DeleteByParent(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Params("parentId"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid parent dealer id"))
	}
	if !confirmed(c) {
		return respondError(c, apperrors.ConfirmationRequired("bulk delete requires confirm=true"))
	}

	result, err := h.dealers.BulkDeleteByParent(c.Context(), parentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bulkResponse(result))
}

// BulkDelete removes every dealer matching the request filters,
// geofences included, with per-dealer failure reporting.
func (h *DealerHandler) BulkDelete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return respondError(c, apperrors.ConfirmationRequired("bulk delete requires confirm=true"))
	}

	filter := query.BuildFilter(collections.Dealers, queryParams(c))
	if filter == nil {
		return respondError(c, apperrors.Validation("bulk delete requires at least one filter"))
	}

	result, err := h.dealers.BulkDelete(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bulkResponse(result))
}

func bulkResponse(result *services.BulkDeleteResult) dto.BulkDeleteResponse {
	return dto.BulkDeleteResponse{
		Success:      true,
		DeletedCount: result.DeletedCount,
		TotalCount:   result.TotalCount,
		Failures:     result.Failures,
	}
}
