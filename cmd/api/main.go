package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meridia-ab/supplier-score-api/docs"
	"github.com/meridia-ab/supplier-score-api/internal/config"
	"github.com/meridia-ab/supplier-score-api/internal/http/handler"
	"github.com/meridia-ab/supplier-score-api/internal/http/middleware"
	"github.com/meridia-ab/supplier-score-api/internal/http/router"
	"github.com/meridia-ab/supplier-score-api/internal/jobs"
	"github.com/meridia-ab/supplier-score-api/internal/logger"
	"github.com/meridia-ab/supplier-score-api/internal/service"
	"github.com/meridia-ab/supplier-score-api/internal/store"
	"go.uber.org/zap"
)

// @title Meridia Supplier Score API
// @version 1.0
// @description Supplier scoring engine: import, scoring, ABC classification and adjustments

// @contact.name API Support
// @contact.email support@meridia.se

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	// In-process state: scored batch, run history, adjustments
	memStore := store.NewMemory()

	// Initialize services
	importService := service.NewImportService(memStore, log)
	scoreService := service.NewScoreService(memStore, log)
	adjustmentService := service.NewAdjustmentService(memStore, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, log)
	scoreHandler := handler.NewScoreHandler(scoreService, log)
	adjustmentHandler := handler.NewAdjustmentHandler(adjustmentService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		importHandler,
		scoreHandler,
		adjustmentHandler,
	)

	// Start scheduler with the run-history retention job
	scheduler := jobs.NewScheduler(log)
	retentionJob := jobs.NewRetentionJob(importService, cfg.Retention.MaxRuns, log)
	if err := scheduler.AddJob(jobs.RetentionJobName, cfg.Retention.PruneSchedule, retentionJob.Run); err != nil {
		log.Error("Failed to register retention job", zap.Error(err))
	} else {
		scheduler.Start()
		log.Info("Scheduler started with retention job",
			zap.String("cron_expr", cfg.Retention.PruneSchedule),
			zap.Int("max_runs", cfg.Retention.MaxRuns),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		schedCtx := scheduler.Stop()
		<-schedCtx.Done()
		log.Info("Scheduler stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
