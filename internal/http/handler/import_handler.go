package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/service"
	"go.uber.org/zap"
)

// ImportHandler handles HTTP requests for import runs
type ImportHandler struct {
	importService *service.ImportService
	logger        *zap.Logger
}

// NewImportHandler creates a new import handler instance
func NewImportHandler(importService *service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// Run godoc
// @Summary Run an import
// @Description Scores the posted line items and replaces the current batch wholesale
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body domain.ImportRequest true "Decoded line items"
// @Success 201 {object} domain.ImportResponse
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Router /imports [post]
func (h *ImportHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req domain.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	run, suppliers, err := h.importService.RunImport(r.Context(), req.Lines)
	if err != nil {
		if errors.Is(err, service.ErrEmptyImport) {
			respondWithError(w, http.StatusUnprocessableEntity, "No rows with a supplier id and name in the import")
			return
		}
		h.logger.Error("failed to run import", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to run import")
		return
	}

	respondJSON(w, http.StatusCreated, domain.ImportResponse{
		Run:       *run,
		Suppliers: suppliers,
	})
}

// ListRuns godoc
// @Summary List import runs
// @Description Returns the retained import run history, oldest first
// @Tags Imports
// @Produce json
// @Success 200 {array} domain.ImportRun
// @Router /imports [get]
func (h *ImportHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.importService.Runs(r.Context()))
}
