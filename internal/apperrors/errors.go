package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure so handlers can map it to an HTTP status
// without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindDependency
	KindConfirmationRequired
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Dependency marks a failure of an external collaborator (geofence
// provider unreachable, non-2xx response, malformed body, timeout).
func Dependency(message string, err error) *Error {
	return &Error{Kind: KindDependency, Message: message, Err: err}
}

func ConfirmationRequired(message string) *Error {
	return &Error{Kind: KindConfirmationRequired, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf returns the classification of err, defaulting to KindInternal
// for anything that is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConfirmationRequired:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindDependency:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
