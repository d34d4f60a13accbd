package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{Validation("bad input"), fiber.StatusBadRequest},
		{ConfirmationRequired("confirm it"), fiber.StatusBadRequest},
		{NotFound("missing"), fiber.StatusNotFound},
		{Dependency("provider down", nil), fiber.StatusBadGateway},
		{Internal(errors.New("boom")), fiber.StatusInternalServerError},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, StatusCode(tc.err), tc.err.Error())
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while deleting: %w", NotFound("dealer not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindValidation))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad input", Validation("bad input").Error())

	e := Dependency("provider down", errors.New("connection refused"))
	assert.Equal(t, "provider down: connection refused", e.Error())
	assert.EqualError(t, errors.Unwrap(e), "connection refused")
}
