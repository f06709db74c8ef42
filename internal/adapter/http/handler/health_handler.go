package handler

import (
	"net/http"
	"strings"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health, a deep check of every configured dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// MethodNotAllowed answers a known path called with the wrong method, in the
// body format of the route it missed: plain text for provider events, JSON
// elsewhere.
func MethodNotAllowed(textPaths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimSuffix(c.Request.URL.Path, "/")
		for _, p := range textPaths {
			if path == p {
				response.TextError(c, apperror.ErrMethodNotAllowed())
				return
			}
		}
		response.Error(c, apperror.ErrMethodNotAllowed())
	}
}
