package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/dto"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
)

// respondError maps a failure onto the error envelope. Internal details
// are logged but never exposed to the caller.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperrors.Error
	if !errors.As(err, &ae) {
		ae = apperrors.Internal(err)
	}

	message := ae.Message
	if ae.Kind == apperrors.KindInternal {
		slog.Error("request failed",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "internal server error"
	}

	return c.Status(apperrors.StatusCode(ae)).JSON(dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// queryParams collects every query-string key with all of its values,
// preserving repeated parameters (?brand=A&brand=B).
func queryParams(c *fiber.Ctx) map[string][]string {
	params := make(map[string][]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		params[k] = append(params[k], string(value))
	})
	return params
}

// parseID enforces the descriptor's primary-key kind and returns the
// value to bind; a non-numeric id for an integer-keyed collection is a
// client error.
func parseID(d *query.Descriptor, raw string) (interface{}, error) {
	if d.IDKind == query.IDNumeric {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, apperrors.Validation("invalid id: must be an integer")
		}
		return n, nil
	}
	return raw, nil
}

func confirmed(c *fiber.Ctx) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
