package service

import (
	"context"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/scoring"
	"github.com/meridia-ab/supplier-score-api/internal/store"
	"go.uber.org/zap"
)

// ScoreService reads scored suppliers from the latest import run. Adjusted
// views are recomputed from the stored base score plus whatever adjustments
// currently exist, on every read.
type ScoreService struct {
	store  *store.Memory
	logger *zap.Logger
}

// NewScoreService creates a new score service instance
func NewScoreService(store *store.Memory, logger *zap.Logger) *ScoreService {
	return &ScoreService{
		store:  store,
		logger: logger,
	}
}

// List returns the latest scored batch in classified order (descending
// revenue).
func (s *ScoreService) List(ctx context.Context) (*domain.ScoreListResponse, error) {
	run, suppliers := s.store.CurrentBatch()
	if run == nil {
		return nil, ErrNoImportRun
	}
	return &domain.ScoreListResponse{
		Run:       run,
		Suppliers: suppliers,
		Total:     len(suppliers),
	}, nil
}

// GetBySupplierID returns one scored supplier from the current batch.
func (s *ScoreService) GetBySupplierID(ctx context.Context, supplierID string) (*domain.ScoredSupplier, error) {
	scored, ok := s.store.GetSupplier(supplierID)
	if !ok {
		return nil, ErrSupplierNotFound
	}
	return &scored, nil
}

// GetAdjustedView projects the stored base score together with the current
// bonus adjustment and custom factors. The base score is never mutated, so
// removing an adjustment reverts the visible score on the next call.
func (s *ScoreService) GetAdjustedView(ctx context.Context, supplierID string) (*domain.AdjustedView, error) {
	scored, ok := s.store.GetSupplier(supplierID)
	if !ok {
		return nil, ErrSupplierNotFound
	}

	bonus, _ := s.store.GetBonus(supplierID)
	factors := s.store.ListFactors(supplierID)

	view := scoring.ApplyAdjustments(scored, bonus, factors)
	return &view, nil
}
