package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meridia-ab/supplier-score-api/internal/config"
	"github.com/meridia-ab/supplier-score-api/internal/http/handler"
	"github.com/meridia-ab/supplier-score-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/meridia-ab/supplier-score-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	rateLimiter       *middleware.RateLimiter
	importHandler     *handler.ImportHandler
	scoreHandler      *handler.ScoreHandler
	adjustmentHandler *handler.AdjustmentHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	importHandler *handler.ImportHandler,
	scoreHandler *handler.ScoreHandler,
	adjustmentHandler *handler.AdjustmentHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		rateLimiter:       rateLimiter,
		importHandler:     importHandler,
		scoreHandler:      scoreHandler,
		adjustmentHandler: adjustmentHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Imports
		r.Route("/imports", func(r chi.Router) {
			r.Post("/", rt.importHandler.Run)
			r.Get("/", rt.importHandler.ListRuns)
		})

		// Scores
		r.Route("/scores", func(r chi.Router) {
			r.Get("/", rt.scoreHandler.List)
			r.Get("/{supplierId}", rt.scoreHandler.GetBySupplierID)
			r.Get("/{supplierId}/adjusted", rt.scoreHandler.GetAdjusted)
		})

		// Adjustments
		r.Route("/suppliers/{supplierId}", func(r chi.Router) {
			r.Put("/bonus", rt.adjustmentHandler.SetBonus)
			r.Delete("/bonus", rt.adjustmentHandler.ClearBonus)
			r.Post("/factors", rt.adjustmentHandler.CreateFactor)
			r.Get("/factors", rt.adjustmentHandler.ListFactors)
			r.Delete("/factors/{factorId}", rt.adjustmentHandler.DeleteFactor)
		})
	})

	return r
}
