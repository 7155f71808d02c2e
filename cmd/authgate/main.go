package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/upb/authgate/app"
	"github.com/upb/authgate/config"
	"github.com/upb/authgate/internal/observability"
	"github.com/upb/authgate/routes"
	"github.com/upb/authgate/utils"
	"go.uber.org/zap"
)

func main() {
	// bootstrap logger covers failures before the configured one exists
	bootstrap := zap.Must(zap.NewProduction())

	if err := run(); err != nil {
		logStartupError(bootstrap, err)
		_ = bootstrap.Sync()
		os.Exit(1)
	}
}

// initLogger builds the process logger from the loaded configuration
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		return nil, err
	}
	if cfg.IsDevelopment() {
		logger = logger.WithOptions(zap.Development())
	}
	return logger, nil
}

// logStartupError reports err, listing offending fields for config validation failures
func logStartupError(logger *zap.Logger, err error) {
	if utils.IsValidationError(err) {
		logger.Error("invalid configuration",
			zap.Error(err),
			zap.Any("fields", utils.GetValidationFields(err)))
		return
	}
	logger.Error("server error", zap.Error(err))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New(ctx)
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	deps, err := app.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = deps.Close() }()

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      routes.SetupRoutes(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("authgate listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		logger.Error("listener failed", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
