package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned in API responses.
const (
	CodeValidation   = "VALIDATION"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// AppError is a domain error carrying a stable code, a user-facing message,
// and an optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates an error for malformed or out-of-enumeration input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewConflictError creates an error for uniqueness violations.
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewUnauthorizedError creates an error for failed credential checks.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewForbiddenError creates an error for non-owner mutation attempts.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewNotFoundError creates an error for unknown records.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewInternalError wraps an unexpected failure behind a generic message so
// internal details never leak to the client.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Terjadi kesalahan pada server", Err: err}
}

// RespondWithError writes an AppError (or a generic 500 for anything else)
// as a JSON error response with the given HTTP status.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(status).JSON(ErrorResponse{Message: appErr.Message, Code: appErr.Code})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Terjadi kesalahan pada server",
		Code:    CodeInternal,
	})
}
