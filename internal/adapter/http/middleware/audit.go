package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// Handlers may set CtxResourceID to name the created or received resource.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			RequestID:    c.GetString(CtxRequestID),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	if method != http.MethodPost {
		return "", ""
	}
	switch route {
	case "/api/v1/applications":
		return domain.AuditActionSubmitApplication, "application"
	case "/api/v1/gateways":
		return domain.AuditActionProvisionGateway, "gateway"
	case "/api/v1/events":
		return domain.AuditActionReceiveEvent, "event"
	}
	return "", ""
}
