package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WIZ_003", "Select at least one voucher to continue", http.StatusBadRequest),
			expected: "[WIZ_003] Select at least one voucher to continue",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_002", "Session store failure", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_002] Session store failure: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WIZ_003", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWizardErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"SessionNotFound", ErrSessionNotFound(), "WIZ_001", 404},
		{"InvalidStep", ErrInvalidStep("pay", "vouchers"), "WIZ_002", 409},
		{"EmptyCart", ErrEmptyCart(), "WIZ_003", 400},
		{"NoBackAction", ErrNoBackAction("processing"), "WIZ_004", 409},
		{"InvalidSelection", ErrInvalidSelection("unknown country"), "WIZ_005", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestCartAndDistributionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UnknownDenomination", ErrUnknownDenomination("M999"), "CART_001", 400},
		{"InvalidPin", ErrInvalidPin(), "PIN_001", 400},
		{"NothingToSend", ErrNothingToSend(), "DIST_001", 400},
		{"UnknownRecipient", ErrUnknownRecipient("u42"), "DIST_002", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvalidStepMessage(t *testing.T) {
	err := ErrInvalidStep("send", "vouchers")
	assert.Contains(t, err.Message, "send")
	assert.Contains(t, err.Message, "vouchers")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("redis: connection closed")
	storeErr := ErrSessionStore(inner)
	assert.Equal(t, "SYS_002", storeErr.Code)
	assert.Equal(t, 500, storeErr.HTTPStatus)
	assert.True(t, errors.Is(storeErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
