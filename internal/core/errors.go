// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by repositories and services. Handlers translate
// them into the HTTP error envelope via JSONError.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrUpstream     = errors.New("upstream failure")
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func UnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHENTICATED",
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

func ForbiddenError(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
	}
}

func NotFoundError(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: resource + " not found",
		Status:  http.StatusNotFound,
	}
}

func InvalidArgumentError(message string) *AppError {
	return &AppError{
		Code:    "INVALID_ARGUMENT",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func UpstreamError(message string) *AppError {
	return &AppError{
		Code:    "UPSTREAM_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
	}
}

func DuplicateKeyError() *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: "resource already exists",
		Status:  http.StatusConflict,
	}
}

func StoreError() *AppError {
	return &AppError{
		Code:    "STORE_ERROR",
		Message: "storage temporarily unavailable",
		Status:  http.StatusInternalServerError,
	}
}

// MapError converts a wrapped sentinel into its HTTP representation.
// Unknown errors are treated as store failures and kept opaque.
func MapError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NotFoundError("resource")
	case errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return UnauthorizedError("authentication required")
	case errors.Is(err, ErrForbidden):
		return ForbiddenError("insufficient permissions")
	case errors.Is(err, ErrDuplicateKey):
		return DuplicateKeyError()
	case errors.Is(err, ErrUpstream):
		return UpstreamError("payment provider unavailable")
	default:
		return StoreError()
	}
}
