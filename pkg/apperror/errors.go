package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
	Err        error                  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails attaches structured detail fields and returns the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Validation returns a 400 VALIDATION_ERROR for missing or malformed input.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

// MissingFields returns a 400 VALIDATION_ERROR naming the absent fields.
func MissingFields(fields []string) *AppError {
	return Validation("Missing required fields").
		WithDetails(map[string]interface{}{"fields": fields})
}

// NotFound returns a 404 for an unknown token, trader, order or user.
func NotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InsufficientBalance is a business-rule rejection, not a system fault.
// required/available name the USD cost or token amount the trade needed.
func InsufficientBalance(required, available float64) *AppError {
	return New("INSUFFICIENT_BALANCE", "Insufficient balance", http.StatusBadRequest).
		WithDetails(map[string]interface{}{
			"required":  required,
			"available": available,
		})
}

// TradeFailed covers ledger rejections not otherwise classified.
func TradeFailed(message string) *AppError {
	return New("TRADE_FAILED", message, http.StatusBadRequest)
}

// Conflict signals a duplicate registration.
func Conflict(message string) *AppError {
	return New("CONFLICT", message, http.StatusConflict)
}

// RateLimited returns a 429 when a client exhausts its request budget.
func RateLimited() *AppError {
	return New("RATE_LIMIT_EXCEEDED", "Rate limit exceeded", http.StatusTooManyRequests)
}

// Auth returns a 401 for missing or invalid credentials/tokens.
func Auth(message string) *AppError {
	return New("AUTH_ERROR", message, http.StatusUnauthorized)
}

// Internal wraps an upstream or unexpected fault as a 500.
func Internal(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError, err)
}

// InternalMsg is Internal with a caller-supplied client-facing message.
func InternalMsg(message string) *AppError {
	return New("INTERNAL_ERROR", message, http.StatusInternalServerError)
}
