package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/service"
	"go.uber.org/zap"
)

// AdjustmentHandler handles HTTP requests for bonus adjustments and custom factors
type AdjustmentHandler struct {
	adjustmentService *service.AdjustmentService
	logger            *zap.Logger
}

// NewAdjustmentHandler creates a new adjustment handler instance
func NewAdjustmentHandler(adjustmentService *service.AdjustmentService, logger *zap.Logger) *AdjustmentHandler {
	return &AdjustmentHandler{
		adjustmentService: adjustmentService,
		logger:            logger,
	}
}

// SetBonus godoc
// @Summary Set the bonus adjustment for a supplier
// @Description Stores or replaces the bonus and tender-support amounts; the adjusted score is recomputed on every read
// @Tags Adjustments
// @Accept json
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Param request body domain.SetBonusRequest true "Bonus amounts"
// @Success 200 {object} domain.BonusAdjustment
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{supplierId}/bonus [put]
func (h *AdjustmentHandler) SetBonus(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	var req domain.SetBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	bonus, err := h.adjustmentService.SetBonus(r.Context(), supplierID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found in current batch")
			return
		}
		h.logger.Error("failed to set bonus", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to set bonus")
		return
	}

	respondJSON(w, http.StatusOK, bonus)
}

// ClearBonus godoc
// @Summary Clear the bonus adjustment for a supplier
// @Tags Adjustments
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 204 {object} nil
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{supplierId}/bonus [delete]
func (h *AdjustmentHandler) ClearBonus(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	if err := h.adjustmentService.ClearBonus(r.Context(), supplierID); err != nil {
		if errors.Is(err, service.ErrBonusNotFound) {
			respondWithError(w, http.StatusNotFound, "No bonus adjustment for supplier")
			return
		}
		h.logger.Error("failed to clear bonus", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to clear bonus")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// CreateFactor godoc
// @Summary Create a custom factor for a supplier
// @Description Attaches a user-entered factor whose contribution is value * weight
// @Tags Adjustments
// @Accept json
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Param request body domain.CreateCustomFactorRequest true "Custom factor"
// @Success 201 {object} domain.CustomFactor
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{supplierId}/factors [post]
func (h *AdjustmentHandler) CreateFactor(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	var req domain.CreateCustomFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	factor, err := h.adjustmentService.CreateFactor(r.Context(), supplierID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found in current batch")
			return
		}
		h.logger.Error("failed to create factor", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to create factor")
		return
	}

	respondJSON(w, http.StatusCreated, factor)
}

// ListFactors godoc
// @Summary List the custom factors attached to a supplier
// @Tags Adjustments
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} domain.CustomFactorListResponse
// @Router /suppliers/{supplierId}/factors [get]
func (h *AdjustmentHandler) ListFactors(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")
	respondJSON(w, http.StatusOK, h.adjustmentService.ListFactors(r.Context(), supplierID))
}

// DeleteFactor godoc
// @Summary Delete a custom factor
// @Description Removing a factor reverts the visible adjusted score on the next read
// @Tags Adjustments
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Param factorId path string true "Factor ID" format(uuid)
// @Success 204 {object} nil
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{supplierId}/factors/{factorId} [delete]
func (h *AdjustmentHandler) DeleteFactor(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "supplierId")

	factorID, err := uuid.Parse(chi.URLParam(r, "factorId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid factor id")
		return
	}

	if err := h.adjustmentService.DeleteFactor(r.Context(), supplierID, factorID); err != nil {
		if errors.Is(err, service.ErrFactorNotFound) {
			respondWithError(w, http.StatusNotFound, "Custom factor not found")
			return
		}
		h.logger.Error("failed to delete factor", zap.Error(err), zap.String("supplier_id", supplierID))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete factor")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
