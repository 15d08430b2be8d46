// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/config"
	"github.com/dangerclosesec/adoptionhub/internal/handler"
	"github.com/dangerclosesec/adoptionhub/internal/middleware"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/dangerclosesec/adoptionhub/internal/service"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Initialize structured logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize database
	db, err := repository.OpenDatabase(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	defer sqlDB.Close()

	pool, err := repository.OpenPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up pgx pool: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	metricRepo := repository.NewMetricRepository(db)
	aggregateRepo := repository.NewDepartmentAggregateRepository(db)
	learningRepo := repository.NewLearningRepository(db)
	toolRepo := repository.NewToolRepository(db)
	gamificationRepo := repository.NewGamificationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	population := repository.NewPopulationScanner(pool)

	// Initialize auth
	tokenManager, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ExpiryPeriod)
	if err != nil {
		return fmt.Errorf("creating token manager: %w", err)
	}

	// Initialize services
	auditLogService := service.NewAuditLogService(auditLogRepo)
	adoptionService := service.NewAdoptionService(
		metricRepo,
		employeeRepo,
		departmentRepo,
		aggregateRepo,
		population,
		learningRepo,
		auditLogService,
		service.AnalyticsConfigFrom(cfg),
		service.WithTransactions(repository.NewTransactionManager(db)),
	)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := handler.Options{Debug: cfg.Debug, Now: time.Now}
	r := newRouter(routerDeps{
		cfg:          cfg,
		logger:       logger,
		tokens:       tokenManager,
		employees:    employeeRepo,
		auditLogger:  auditLogService,
		metrics:      middleware.NewMetrics(registry),
		gatherer:     registry,
		system:       handler.NewSystemHandler(sqlDB, opts),
		directory:    handler.NewDirectoryHandler(service.NewDirectoryService(employeeRepo, departmentRepo), opts),
		adoption:     handler.NewAdoptionHandler(adoptionService, service.NewAccessGate(auditLogService), opts),
		catalog:      handler.NewCatalogHandler(service.NewCatalogService(toolRepo), opts),
		learning:     handler.NewLearningHandler(service.NewLearningService(learningRepo), opts),
		gamification: handler.NewGamificationHandler(service.NewGamificationService(gamificationRepo), opts),
		notification: handler.NewNotificationHandler(service.NewNotificationService(notificationRepo), opts),
		auditLog:     handler.NewAuditLogHandler(auditLogService, opts),
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, handler.ErrorResponse{
						StatusCode: http.StatusInternalServerError,
						Message:    "Internal server error",
						Detail:     "An error occurred",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
