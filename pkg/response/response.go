package response

import (
	"net/http"

	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the gin context key holding the request id.
const CtxRequestID = "request_id"

// ErrorResponse is the JSON error body shared by the JSON boundaries.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id"`
}

// OK sends a 200 response with the given body.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Error sends a JSON error. *apperror.AppError values keep their status and
// message; anything else becomes a generic 500. Upstream details are omitted.
func Error(c *gin.Context, err error) {
	writeError(c, 0, err, false)
}

// ErrorWithDetails is Error but also forwards AppError.Details, for
// operator-facing boundaries.
func ErrorWithDetails(c *gin.Context, err error) {
	writeError(c, 0, err, true)
}

// ErrorStatus sends a JSON error with a fixed HTTP status regardless of the
// error's own mapping.
func ErrorStatus(c *gin.Context, status int, err error) {
	writeError(c, status, err, false)
}

// Text sends a plain-text body.
func Text(c *gin.Context, status int, body string) {
	c.String(status, body)
}

// TextError sends an AppError's message as plain text.
func TextError(c *gin.Context, err error) {
	status, body := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	if appErr := apperror.As(err); appErr != nil {
		status, body = appErr.HTTPStatus, appErr.Message
	}
	c.String(status, body)
}

func writeError(c *gin.Context, status int, err error, withDetails bool) {
	resp := ErrorResponse{
		Success:   false,
		Error:     "Internal server error",
		ErrorCode: apperror.CodeInternal,
		RequestID: RequestID(c),
	}
	httpStatus := http.StatusInternalServerError

	if appErr := apperror.As(err); appErr != nil {
		resp.Error = appErr.Message
		resp.ErrorCode = appErr.Code
		httpStatus = appErr.HTTPStatus
		if withDetails {
			resp.Details = appErr.Details
		}
	}
	if status != 0 {
		httpStatus = status
	}

	c.JSON(httpStatus, resp)
}

// RequestID retrieves the request id from context, or generates one.
func RequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
