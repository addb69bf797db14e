// Package main runs the reference spreadsheet backend: the action endpoint
// the portal talks to, backed by PostgreSQL or SQLite.
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
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/tournament_portal/internal/config"
	"github.com/festy23/tournament_portal/internal/database"
	dbConfig "github.com/festy23/tournament_portal/internal/database/config"
	"github.com/festy23/tournament_portal/internal/health"
	"github.com/festy23/tournament_portal/internal/middleware"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
	sheetRouter "github.com/festy23/tournament_portal/internal/sheet/router"
	"github.com/festy23/tournament_portal/internal/sheet/service"
	"github.com/festy23/tournament_portal/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	sheetCfg := config.LoadSheetConfigFromEnv()
	if err := sheetCfg.Validate(); err != nil {
		log.Fatalf("invalid sheet configuration: %v", err)
	}
	logCfg := config.LoadLoggerConfigFromEnv()
	if err := logCfg.Validate(); err != nil {
		log.Fatalf("invalid logger configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig("sheetd", logCfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	db, err := database.Open(dbConfig.LoadConfigFromEnv())
	if err != nil {
		sugar.Fatalw("Failed to open database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	if err := run(db, sheetCfg, sugar); err != nil {
		sugar.Errorw("Server stopped with error", "error", err)
	}
}

func run(db *gorm.DB, cfg config.SheetConfig, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.New(repository.New(db), cfg.PhotoBaseURL, logger)
	if cfg.SeedAdminEmail != "" {
		if err := svc.SeedAdmin(ctx, cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.Recovery(logger))

	healthHandler := health.New(map[string]health.Checker{
		"database": health.CheckerFunc(func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		}),
	}, logger)
	r.GET("/health", healthHandler.Check)
	sheetRouter.RegisterRoutes(r, svc, logger)

	timeouts := config.LoadServerConfigFromEnv()
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      r,
		ReadTimeout:  timeouts.ReadTimeout,
		WriteTimeout: timeouts.WriteTimeout,
		IdleTimeout:  timeouts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Starting reference backend", "address", srv.Addr, "photo_base_url", cfg.PhotoBaseURL)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Infow("Reference backend stopped")
	return nil
}
