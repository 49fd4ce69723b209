package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Machine-readable error codes surfaced in every error body.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUpstream     = "UPSTREAM_FAILURE"
	CodePartialState = "PARTIAL_STATE"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError carries an HTTP status and a machine code alongside the message.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: fiber.StatusNotFound, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Status: fiber.StatusBadRequest, Message: message}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: CodeUpstream, Status: fiber.StatusBadGateway, Message: message, Err: err}
}

// NewPartialStateError marks a multi-step pipeline that failed after some
// steps committed. The reconciler sweep is responsible for repairing drift.
func NewPartialStateError(message string, err error) *AppError {
	return &AppError{Code: CodePartialState, Status: fiber.StatusInternalServerError, Message: message, Err: err}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
