package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Cart (CART) ----

func ErrUnknownDenomination(id string) *AppError {
	return New("CART_001", fmt.Sprintf("Unknown voucher denomination %q", id), http.StatusBadRequest)
}

// ---- Wizard (WIZ) ----

func ErrSessionNotFound() *AppError {
	return New("WIZ_001", "Checkout session not found or expired", http.StatusNotFound)
}

func ErrInvalidStep(event string, step string) *AppError {
	return New("WIZ_002", fmt.Sprintf("Action %q is not valid at step %q", event, step), http.StatusConflict)
}

func ErrEmptyCart() *AppError {
	return New("WIZ_003", "Select at least one voucher to continue", http.StatusBadRequest)
}

func ErrNoBackAction(step string) *AppError {
	return New("WIZ_004", fmt.Sprintf("No back action from step %q", step), http.StatusConflict)
}

func ErrInvalidSelection(message string) *AppError {
	return New("WIZ_005", message, http.StatusBadRequest)
}

// ---- Redeem PIN (PIN) ----

func ErrInvalidPin() *AppError {
	return New("PIN_001", "Redeem PIN must be exactly 16 digits", http.StatusBadRequest)
}

// ---- Distribution (DIST) ----

func ErrNothingToSend() *AppError {
	return New("DIST_001", "Allocate Mobi to at least one recipient before sending", http.StatusBadRequest)
}

func ErrUnknownRecipient(id string) *AppError {
	return New("DIST_002", fmt.Sprintf("Unknown recipient %q", id), http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrSessionStore(err error) *AppError {
	return Wrap("SYS_002", "Session store failure", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("WIZ_005", message, http.StatusBadRequest)
}
