package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meridia-ab/supplier-score-api/internal/service"
	"go.uber.org/zap"
)

// ScoreHandler handles HTTP requests for scored suppliers
type ScoreHandler struct {
	scoreService *service.ScoreService
	logger       *zap.Logger
}

// NewScoreHandler creates a new score handler instance
func NewScoreHandler(scoreService *service.ScoreService, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		logger:       logger,
	}
}

// List godoc
// @Summary List scored suppliers
// @Description Returns the latest scored batch in classified order (descending revenue)
// @Tags Scores
// @Produce json
// @Success 200 {object} domain.ScoreListResponse
// @Failure 404 {object} domain.APIError
// @Router /scores [get]
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.scoreService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoImportRun) {
			respondWithError(w, http.StatusNotFound, "No import has been run yet")
			return
		}
		h.logger.Error("failed to list scores", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list scores")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetBySupplierID godoc
// @Summary Get one scored supplier
// @Description Returns the scored record for a supplier from the current batch
// @Tags Scores
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} domain.ScoredSupplier
// @Failure 404 {object} domain.APIError
// @Router /scores/{supplierId} [get]
func (h *ScoreHandler) GetBySupplierID(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	scored, err := h.scoreService.GetBySupplierID(r.Context(), supplierID)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found in current batch")
			return
		}
		h.logger.Error("failed to get score", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to get score")
		return
	}

	respondJSON(w, http.StatusOK, scored)
}

// GetAdjusted godoc
// @Summary Get the adjusted view of a supplier
// @Description Recomputes the score with the current bonus/tender support and custom factors applied; the stored base score is untouched
// @Tags Scores
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} domain.AdjustedView
// @Failure 404 {object} domain.APIError
// @Router /scores/{supplierId}/adjusted [get]
func (h *ScoreHandler) GetAdjusted(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	view, err := h.scoreService.GetAdjustedView(r.Context(), supplierID)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found in current batch")
			return
		}
		h.logger.Error("failed to get adjusted view", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to get adjusted view")
		return
	}

	respondJSON(w, http.StatusOK, view)
}
