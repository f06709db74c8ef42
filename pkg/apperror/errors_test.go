package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   Validation("company_name is required"),
			expected: "[VAL_001] company_name is required",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
		{
			name:     "with upstream status",
			appErr:   ErrUpstreamAuth(401, "denied"),
			expected: "[UPS_001] Upstream authorization failed (upstream status 401)",
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
	assert.Nil(t, Validation("x").Unwrap())
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", ErrUpstreamSubmission(422, `{"error":"bad"}`))

	appErr := As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, CodeUpstreamSubmission, appErr.Code)
	assert.Equal(t, 422, appErr.UpstreamStatus)
	assert.Equal(t, `{"error":"bad"}`, appErr.Details)

	assert.Nil(t, As(errors.New("plain")))
	assert.True(t, HasCode(wrapped, CodeUpstreamSubmission))
	assert.False(t, HasCode(wrapped, CodeUpstreamAuth))
}

func TestErrGatewayProvisioning_StatusPassthrough(t *testing.T) {
	tests := []struct {
		name     string
		upstream int
		want     int
	}{
		{"client error passes through", http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"server error passes through", http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{"redirect becomes bad gateway", http.StatusFound, http.StatusBadGateway},
		{"unknown becomes bad gateway", 0, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrGatewayProvisioning(tt.upstream, "body")
			assert.Equal(t, tt.want, err.HTTPStatus)
			assert.Equal(t, tt.upstream, err.UpstreamStatus)
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", Validation("bad"), CodeValidation, http.StatusBadRequest},
		{"invalid payload", ErrInvalidPayload(nil), CodeInvalidPayload, http.StatusBadRequest},
		{"method not allowed", ErrMethodNotAllowed(), CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"invalid signature", ErrInvalidSignature(), CodeInvalidSignature, http.StatusUnauthorized},
		{"upstream auth", ErrUpstreamAuth(401, ""), CodeUpstreamAuth, http.StatusInternalServerError},
		{"upstream submission", ErrUpstreamSubmission(400, ""), CodeUpstreamSubmission, http.StatusInternalServerError},
		{"malformed", ErrMalformedResponse("access_token"), CodeMalformedResponse, http.StatusInternalServerError},
		{"unavailable", ErrUpstreamUnavailable(errors.New("dial")), CodeUpstreamUnavailable, http.StatusInternalServerError},
		{"configuration", ErrConfiguration("gateway.affiliate_key"), CodeConfiguration, http.StatusInternalServerError},
		{"internal", InternalError(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestErrConfiguration_HidesSettingName(t *testing.T) {
	err := ErrConfiguration("gateway.affiliate_key")
	assert.NotContains(t, err.Message, "affiliate")
	assert.Contains(t, err.Error(), "gateway.affiliate_key")
}
