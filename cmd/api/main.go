package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/config"
	httpHandler "github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/handler"
	pgStorage "github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/storage/postgres"
	redisStorage "github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/storage/redis"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/upstream"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/service"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(os.Getenv("MHO_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("submission_mode", cfg.Submission.Mode).
		Str("idempotency_mode", cfg.Submission.IdempotencyMode).
		Msg("Starting merchant onboarding service")

	ctx := context.Background()

	var (
		healthCheckers []ports.HealthChecker
		eventRepo      ports.EventRepository
		auditRepo      ports.AuditRepository
		tokenCache     ports.TokenCache
		replayCache    ports.SubmissionCache
		eventDedup     ports.EventDeduplicator
	)

	// Initialize PostgreSQL pool (event log, audit log)
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare database schema")
		}
		log.Info().Msg("PostgreSQL connected")

		eventRepo = pgStorage.NewEventRepo(pool)
		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Initialize Redis client (token cache, replay cache, event claims)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		if cfg.Upstream.TokenCache {
			tokenCache = redisStorage.NewTokenCache(rdb)
		}
		if cfg.Submission.ReplayCache {
			replayCache = redisStorage.NewSubmissionCache(rdb)
		}
		eventDedup = redisStorage.NewEventDeduplicator(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Metrics
	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		gatherer = reg
	}

	// Upstream clients
	httpClient := upstream.NewHTTPClient(cfg.Upstream.Timeout)
	tokenProvider := upstream.NewTokenProvider(cfg.Upstream, httpClient, tokenCache, m, log)
	bearerClient := upstream.NewBearerClient(httpClient, m, metrics.OperationApplication)
	affiliateClient := upstream.NewAffiliateKeyClient(httpClient, m, cfg.Gateway.AffiliateKey, metrics.OperationGateway)

	// Submission pipeline
	submitter := service.NewApplicationSubmitter(bearerClient, cfg.Upstream.ApplicationEndpoint(), log)
	onboardingSvc := service.NewOnboardingService(
		tokenProvider,
		submitter,
		service.NewIdempotencyKeyer(cfg.Submission),
		replayCache,
		service.OnboardingConfig{
			PackageID: cfg.Submission.PackageID,
			Mode:      domain.IntakeMode(cfg.Submission.Mode),
			ReplayTTL: cfg.Submission.IdempotencyWindow,
		},
		log,
	)

	// Gateway provisioning
	provisioner := service.NewGatewayProvisioner(affiliateClient, service.GatewayDefaults{
		Endpoint:      cfg.Gateway.Endpoint(),
		Timezone:      cfg.Gateway.DefaultTimezone,
		FeeScheduleID: cfg.Gateway.FeeScheduleID,
	}, log)

	// Event pipeline
	if cfg.Events.SigningSecret == "" {
		log.Warn().Msg("events.signing_secret not set, event signatures will not be verified")
	}
	eventSvc := service.NewEventService(
		service.NewHMACSignatureService(),
		eventDedup,
		eventRepo,
		service.NewDefaultEventRegistry(provisioner, cfg.Events.AutoProvision, log),
		service.EventConfig{
			SigningSecret: cfg.Events.SigningSecret,
			Tolerance:     cfg.Events.SignatureTolerance,
			DedupTTL:      cfg.Events.DedupTTL,
		},
		m,
		log,
	)

	auditSvc := service.NewAuditService(auditRepo, log)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	gin.SetMode(cfg.Server.Mode)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		Provisioner:    provisioner,
		EventSvc:       eventSvc,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Metrics:        m,
		Gatherer:       gatherer,
		MetricsPath:    cfg.Metrics.Path,
		MaxBodySize:    cfg.Server.MaxBodySize,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
