package main

import (
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/config"
	"github.com/dangerclosesec/adoptionhub/internal/handler"
	"github.com/dangerclosesec/adoptionhub/internal/middleware"
	"github.com/dangerclosesec/adoptionhub/internal/model"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	cfg         *config.Config
	logger      *slog.Logger
	tokens      middleware.TokenValidator
	employees   middleware.EmployeeResolver
	auditLogger audit.Logger
	metrics     *middleware.Metrics
	gatherer    prometheus.Gatherer

	system       *handler.SystemHandler
	directory    *handler.DirectoryHandler
	adoption     *handler.AdoptionHandler
	catalog      *handler.CatalogHandler
	learning     *handler.LearningHandler
	gamification *handler.GamificationHandler
	notification *handler.NotificationHandler
	auditLog     *handler.AuditLogHandler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestAuditMiddleware)
	r.Use(d.metrics.Collect)
	r.Use(loggingMiddleware(d.logger))
	r.Use(recoveryMiddleware(d.logger))
	r.Use(chimw.Timeout(d.cfg.Server.RequestTimeout))

	r.Get("/", d.system.Root)
	r.Get("/health", d.system.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(d.tokens, d.employees, d.metrics))

		r.Get("/me", d.directory.Me)
		r.Get("/me/scorecard", d.adoption.MyScorecard)
		r.Get("/employees/{id}/scorecard", d.adoption.EmployeeScorecard)
		r.Get("/departments/{id}/overview", d.adoption.DepartmentOverview)

		r.Route("/adoption-metrics", func(r chi.Router) {
			r.With(middleware.RequireContentType("application/json")).Post("/", d.adoption.UpsertMetric)
			r.Get("/history", d.adoption.History)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/trends", d.adoption.Trends)
			r.Get("/roi", d.adoption.ROI)
			r.With(middleware.RequireRole(d.auditLogger, model.RoleAdmin)).Post("/rollup", d.adoption.Rollup)
		})

		r.Route("/tools", func(r chi.Router) {
			r.Get("/catalog", d.catalog.Catalog)
			r.Get("/categories", d.catalog.Categories)
			r.Post("/{id}/access", d.catalog.LogAccess)
		})

		r.Route("/learning", func(r chi.Router) {
			r.Get("/resources", d.learning.Resources)
			r.Get("/progress", d.learning.Progress)
			r.With(middleware.RequireContentType("application/json")).Post("/{id}/progress", d.learning.UpdateProgress)
		})

		r.Get("/badges", d.gamification.Badges)
		r.Get("/leaderboard", d.gamification.Leaderboard)
		r.Get("/points", d.gamification.Points)
		r.Get("/challenges", d.gamification.Challenges)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", d.notification.List)
			r.Post("/{id}/read", d.notification.MarkRead)
		})

		r.With(middleware.RequireRole(d.auditLogger, model.RoleAdmin)).Get("/audit-logs", d.auditLog.GetAuditLogs)
	})

	return r
}
