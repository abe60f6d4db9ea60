package errors

import (
	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so errors.Is works
// across copies produced by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Offer-related errors
	ErrOfferNotFound = NewBaseError(
		"OFFER_NOT_FOUND",
		"No se encontró la oferta",
		"",
	)

	// Proposal-related errors
	ErrInvalidProposal = NewBaseError(
		"INVALID_PROPOSAL",
		"La propuesta no es válida",
		"",
	)

	ErrActiveCampaignExists = NewBaseError(
		"ACTIVE_CAMPAIGN_EXISTS",
		"Ya tienes una campaña abierta con este negocio",
		"",
	)

	// Campaign-related errors
	ErrCampaignNotFound = NewBaseError(
		"CAMPAIGN_NOT_FOUND",
		"No se encontró la campaña",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		"INVALID_CAMPAIGN_TRANSITION",
		"La campaña no puede cambiar a ese estado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"Los datos de entrada no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)
