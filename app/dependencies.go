package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/upb/authgate/auth"
	"github.com/upb/authgate/config"
	"github.com/upb/authgate/internal/observability"
	"github.com/upb/authgate/middleware"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Metrics
	Registry *prometheus.Registry
	Metrics  *observability.AuthMetrics

	// Auth
	Verifier       *auth.HMACVerifier
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initMetrics(cfg)
	deps.initAuth(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initMetrics creates a dedicated registry so tests can build several
// dependency sets without duplicate registration panics
func (d *Dependencies) initMetrics(cfg *config.Config) {
	if !cfg.Observability.MetricsEnabled {
		d.Logger.Info("metrics disabled")
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	d.Registry = reg
	d.Metrics = observability.NewAuthMetrics(reg)
	d.Logger.Info("metrics initialized")
}

func (d *Dependencies) initAuth(cfg *config.Config) {
	d.Verifier = auth.NewHMACVerifier(auth.Config{
		Secret: cfg.Auth.JWTSecret,
		Leeway: cfg.Auth.Leeway,
	})
	if !d.Verifier.HasSecret() {
		d.Logger.Warn("JWT_SECRET not configured, every bearer token will be rejected")
	}

	d.AuthMiddleware = middleware.NewAuthMiddleware(d.Verifier, d.Logger, d.Metrics)
	d.Logger.Info("auth middleware initialized",
		zap.Duration("leeway", cfg.Auth.Leeway))
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close() error {
	d.Logger.Info("shutting down dependencies")

	// Sync logger; stderr/stdout sync errors are expected on some platforms
	_ = d.Logger.Sync()

	return nil
}
