package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/dto"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
	"gorm.io/gorm"
)

// CollectionHandler serves the generic CRUD surface for every
// collection. All per-collection behavior comes from the descriptor
// passed at route registration.
type CollectionHandler struct {
	db *gorm.DB
}

func NewCollectionHandler(db *gorm.DB) *CollectionHandler {
	return &CollectionHandler{db: db}
}

func (h *CollectionHandler) List(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := query.BuildFilter(d, queryParams(c))
		sort := query.BuildSort(d, c.Query("sortBy"), c.Query("sortDir"))
		page := query.BuildPage(c.Query("limit"), c.Query("page"))

		result, err := query.Execute(h.db, d, filter, sort, page)
		if err != nil {
			return respondError(c, apperrors.Internal(err))
		}

		return c.JSON(dto.ListResponse{
			Success: true,
			Page:    result.Page,
			Limit:   result.Limit,
			Count:   result.Count,
			Data:    result.Items,
		})
	}
}

func (h *CollectionHandler) Get(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(d, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		record := d.Model()
		if err := h.db.First(record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return respondError(c, apperrors.NotFound(d.Name+" record not found"))
			}
			return respondError(c, apperrors.Internal(err))
		}

		return c.JSON(dto.DataResponse{Success: true, Data: record})
	}
}

func (h *CollectionHandler) Create(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record := d.Model()
		if err := c.BodyParser(record); err != nil {
			return respondError(c, apperrors.Validation("invalid request body"))
		}

		if err := h.db.Create(record).Error; err != nil {
			return respondError(c, apperrors.Internal(err))
		}

		return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: record})
	}
}

func (h *CollectionHandler) Patch(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(d, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		var body map[string]interface{}
		if err := c.BodyParser(&body); err != nil {
			return respondError(c, apperrors.Validation("invalid request body"))
		}

		updates := d.PatchColumns(body)
		if len(updates) == 0 {
			return respondError(c, apperrors.Validation("no updatable fields in request"))
		}

		result := h.db.Model(d.Model()).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return respondError(c, apperrors.Internal(result.Error))
		}
		if result.RowsAffected == 0 {
			return respondError(c, apperrors.NotFound(d.Name+" record not found"))
		}

		record := d.Model()
		if err := h.db.First(record, "id = ?", id).Error; err != nil {
			return respondError(c, apperrors.Internal(err))
		}
		return c.JSON(dto.DataResponse{Success: true, Data: record})
	}
}

func (h *CollectionHandler) Delete(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(d, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		result := h.db.Where("id = ?", id).Delete(d.Model())
		if result.Error != nil {
			return respondError(c, apperrors.Internal(result.Error))
		}
		if result.RowsAffected == 0 {
			return respondError(c, apperrors.NotFound(d.Name+" record not found"))
		}

		return c.JSON(dto.MessageResponse{Success: true, Message: d.Name + " record deleted"})
	}
}

// BulkDelete removes every record matching the request filters. It
// refuses to run without both an explicit confirm flag and at least one
// recognized filter, so a bare DELETE can never wipe a table.
func (h *CollectionHandler) BulkDelete(d *query.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !confirmed(c) {
			return respondError(c, apperrors.ConfirmationRequired("bulk delete requires confirm=true"))
		}

		filter := query.BuildFilter(d, queryParams(c))
		if filter == nil {
			return respondError(c, apperrors.Validation("bulk delete requires at least one filter"))
		}

		result := query.ApplyFilter(h.db, filter).Delete(d.Model())
		if result.Error != nil {
			return respondError(c, apperrors.Internal(result.Error))
		}

		return c.JSON(dto.MessageResponse{
			Success: true,
			Message: fmt.Sprintf("deleted %d %s records", result.RowsAffected, d.Name),
		})
	}
}
