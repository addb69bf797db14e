// Package main provides the entry point for the portal and dashboard server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/admin"
	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/config"
	dashboardRouter "github.com/festy23/tournament_portal/internal/dashboard/router"
	"github.com/festy23/tournament_portal/internal/health"
	"github.com/festy23/tournament_portal/internal/middleware"
	portalRouter "github.com/festy23/tournament_portal/internal/portal/router"
	"github.com/festy23/tournament_portal/internal/referee"
	"github.com/festy23/tournament_portal/internal/session"
	"github.com/festy23/tournament_portal/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig("portal", cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("Server stopped with error", "error", err)
	}
}

func run(cfg config.Config, logger *zap.SugaredLogger) error {
	client := backend.New(cfg.Backend, logger)

	store := admin.NewStore()
	reconciler := admin.NewFullReload(admin.NewLoader(client, nil), store, logger)
	orchestrator := admin.New(client, reconciler, store, logger)
	sessions := session.NewManager(cfg.Auth, nil)
	assistant := referee.NewOffline(client.GetRules)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.Recovery(logger))

	healthHandler := health.New(map[string]health.Checker{"backend": client}, logger)
	r.GET("/health", healthHandler.Check)

	portalRouter.RegisterRoutes(r, client, orchestrator, assistant, logger)
	dashboardRouter.RegisterRoutes(r, orchestrator, sessions, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      c.Handler(r),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the dashboard view so the first /admin/data does not wait.
	go func() {
		if err := reconciler.Reconcile(ctx); err != nil {
			logger.Warnw("Initial dashboard load failed", "error", err)
		}
	}()

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done and then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *zap.SugaredLogger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("Shutting down server", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Infow("Server stopped")
	return nil
}
