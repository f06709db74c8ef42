package handler

import (
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/middleware"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	ApplicationsPath = "/api/v1/applications"
	GatewaysPath     = "/api/v1/gateways"
	EventsPath       = "/api/v1/events"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OnboardingSvc  ports.OnboardingService
	Provisioner    ports.GatewayProvisioner
	EventSvc       ports.EventService
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService  // nil = audit logging disabled
	Metrics        *metrics.Metrics    // nil = request metrics disabled
	Gatherer       prometheus.Gatherer // nil = no metrics endpoint
	MetricsPath    string
	MaxBodySize    int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(deps.MaxBodySize))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.NoMethod(MethodNotAllowed(EventsPath))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Gatherer != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Public boundaries; no authentication. Events authenticate by signature
	// inside the event service.
	applicationHandler := NewApplicationHandler(deps.OnboardingSvc, deps.Logger)
	gatewayHandler := NewGatewayHandler(deps.Provisioner, deps.Logger)
	eventHandler := NewEventHandler(deps.EventSvc, deps.Logger)

	r.POST(ApplicationsPath, applicationHandler.Submit)
	r.POST(GatewaysPath, gatewayHandler.Provision)
	r.POST(EventsPath, eventHandler.Receive)

	return r
}
