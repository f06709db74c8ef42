package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code           string `json:"error_code"`
	Message        string `json:"message"`
	HTTPStatus     int    `json:"-"`
	UpstreamStatus int    `json:"-"` // Status returned by the upstream provider, 0 if none
	Details        string `json:"-"` // Upstream body, only exposed where a boundary allows it
	Err            error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.UpstreamStatus != 0 {
		msg += fmt.Sprintf(" (upstream status %d)", e.UpstreamStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
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

// As extracts an *AppError from err, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr := As(err)
	return appErr != nil && appErr.Code == code
}

const (
	CodeValidation          = "VAL_001"
	CodeInvalidPayload      = "VAL_002"
	CodeMethodNotAllowed    = "HTTP_405"
	CodeInvalidSignature    = "SEC_001"
	CodeUpstreamAuth        = "UPS_001"
	CodeUpstreamSubmission  = "UPS_002"
	CodeGatewayProvisioning = "UPS_003"
	CodeMalformedResponse   = "UPS_004"
	CodeUpstreamUnavailable = "UPS_005"
	CodeConfiguration       = "CFG_001"
	CodeInternal            = "SYS_001"
)

// ---- Client input (VAL / HTTP) ----

// Validation reports malformed or missing client input.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ErrInvalidPayload reports a body that is not valid JSON.
func ErrInvalidPayload(err error) *AppError {
	return Wrap(CodeInvalidPayload, "Invalid JSON", http.StatusBadRequest, err)
}

func ErrMethodNotAllowed() *AppError {
	return New(CodeMethodNotAllowed, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized)
}

// ---- Upstream provider (UPS) ----

// ErrUpstreamAuth reports a rejected client-credential exchange.
func ErrUpstreamAuth(status int, body string) *AppError {
	return &AppError{
		Code:           CodeUpstreamAuth,
		Message:        "Upstream authorization failed",
		HTTPStatus:     http.StatusInternalServerError,
		UpstreamStatus: status,
		Details:        body,
	}
}

// ErrUpstreamSubmission reports a rejected application submission.
func ErrUpstreamSubmission(status int, body string) *AppError {
	return &AppError{
		Code:           CodeUpstreamSubmission,
		Message:        "Upstream application submission failed",
		HTTPStatus:     http.StatusInternalServerError,
		UpstreamStatus: status,
		Details:        body,
	}
}

// ErrGatewayProvisioning reports a rejected gateway creation. The upstream
// status is passed through when it is an error status, otherwise 502.
func ErrGatewayProvisioning(status int, body string) *AppError {
	httpStatus := status
	if httpStatus < http.StatusBadRequest || httpStatus > 599 {
		httpStatus = http.StatusBadGateway
	}
	return &AppError{
		Code:           CodeGatewayProvisioning,
		Message:        "Failed to create gateway",
		HTTPStatus:     httpStatus,
		UpstreamStatus: status,
		Details:        body,
	}
}

func ErrMalformedResponse(what string) *AppError {
	return New(CodeMalformedResponse, fmt.Sprintf("Malformed upstream response: %s", what), http.StatusInternalServerError)
}

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap(CodeUpstreamUnavailable, "Upstream provider unreachable", http.StatusInternalServerError, err)
}

// ---- Configuration (CFG) ----

// ErrConfiguration hides which setting is missing from clients; the name is
// kept in the wrapped error for logs.
func ErrConfiguration(setting string) *AppError {
	return Wrap(CodeConfiguration, "Service is not configured", http.StatusInternalServerError,
		fmt.Errorf("missing configuration: %s", setting))
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
