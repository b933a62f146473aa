package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/store"
	"go.uber.org/zap"
)

// AdjustmentService manages the bonus/tender-support record and the custom
// factors attached to a supplier. Adjustments live independently of the
// scored batch: they are combined with the base score at read time and never
// mutate it, so concurrent edits by different users are last-write-wins on
// the adjustment record only.
type AdjustmentService struct {
	store  *store.Memory
	logger *zap.Logger
}

// NewAdjustmentService creates a new adjustment service instance
func NewAdjustmentService(store *store.Memory, logger *zap.Logger) *AdjustmentService {
	return &AdjustmentService{
		store:  store,
		logger: logger,
	}
}

// SetBonus stores or replaces the bonus adjustment for a supplier. The
// supplier must exist in the current batch.
func (s *AdjustmentService) SetBonus(ctx context.Context, supplierID string, req *domain.SetBonusRequest) (*domain.BonusAdjustment, error) {
	if _, ok := s.store.GetSupplier(supplierID); !ok {
		return nil, ErrSupplierNotFound
	}

	bonus := domain.BonusAdjustment{
		SupplierID:    supplierID,
		BonusAmount:   req.BonusAmount,
		TenderSupport: req.TenderSupport,
		Comment:       req.Comment,
		UpdatedAt:     time.Now().UTC(),
	}
	s.store.SetBonus(bonus)

	s.logger.Info("bonus adjustment set",
		zap.String("supplier_id", supplierID),
		zap.Float64("bonus_amount", bonus.BonusAmount),
		zap.Float64("tender_support", bonus.TenderSupport),
	)
	return &bonus, nil
}

// ClearBonus removes the bonus adjustment for a supplier. The visible
// adjusted score reverts on the next read; nothing else changes.
func (s *AdjustmentService) ClearBonus(ctx context.Context, supplierID string) error {
	if !s.store.ClearBonus(supplierID) {
		return ErrBonusNotFound
	}
	s.logger.Info("bonus adjustment cleared", zap.String("supplier_id", supplierID))
	return nil
}

// CreateFactor attaches a custom factor to a supplier.
func (s *AdjustmentService) CreateFactor(ctx context.Context, supplierID string, req *domain.CreateCustomFactorRequest) (*domain.CustomFactor, error) {
	if _, ok := s.store.GetSupplier(supplierID); !ok {
		return nil, ErrSupplierNotFound
	}

	factor := domain.CustomFactor{
		ID:         uuid.New(),
		SupplierID: supplierID,
		AuthorID:   req.AuthorID,
		Name:       req.Name,
		Value:      req.Value,
		Weight:     req.Weight,
		Comment:    req.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	s.store.AddFactor(factor)

	s.logger.Info("custom factor created",
		zap.String("supplier_id", supplierID),
		zap.String("factor_id", factor.ID.String()),
		zap.String("name", factor.Name),
		zap.Float64("contribution", factor.Value*factor.Weight),
	)
	return &factor, nil
}

// ListFactors returns the custom factors attached to a supplier.
func (s *AdjustmentService) ListFactors(ctx context.Context, supplierID string) *domain.CustomFactorListResponse {
	factors := s.store.ListFactors(supplierID)
	return &domain.CustomFactorListResponse{
		Factors: factors,
		Total:   len(factors),
	}
}

// DeleteFactor removes one custom factor by id.
func (s *AdjustmentService) DeleteFactor(ctx context.Context, supplierID string, factorID uuid.UUID) error {
	if !s.store.DeleteFactor(supplierID, factorID) {
		return ErrFactorNotFound
	}
	s.logger.Info("custom factor deleted",
		zap.String("supplier_id", supplierID),
		zap.String("factor_id", factorID.String()),
	)
	return nil
}
