package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxRequestID  = response.CtxRequestID
	CtxResourceID = "audit_resource_id"
)

// Inbound request ids are echoed only when they look like an id.
var requestIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{1,64}$`)

// RequestID assigns every request an id, reusing a well-formed X-Request-ID
// from the caller, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if !requestIDRe.MatchString(id) {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Metrics records request count and latency per matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(CtxRequestID)).
					Msg("panic recovered")
				if !c.Writer.Written() {
					response.Error(c, apperror.New(apperror.CodeInternal, "Internal server error", http.StatusInternalServerError))
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
