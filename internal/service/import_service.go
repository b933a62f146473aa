package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/scoring"
	"github.com/meridia-ab/supplier-score-api/internal/store"
	"go.uber.org/zap"
)

// ImportService runs the scoring engine over one import batch and replaces
// the stored batch wholesale. Rows arrive already column-mapped and decoded;
// file parsing is the upstream collaborator's concern.
type ImportService struct {
	store  *store.Memory
	logger *zap.Logger
}

// NewImportService creates a new import service instance
func NewImportService(store *store.Memory, logger *zap.Logger) *ImportService {
	return &ImportService{
		store:  store,
		logger: logger,
	}
}

// RunImport aggregates, scores, classifies and diagnoses the given rows, and
// installs the result as the current batch. Malformed rows (blank supplier
// id or name) are dropped, not reported; a batch with no usable rows at all
// is rejected with ErrEmptyImport.
func (s *ImportService) RunImport(ctx context.Context, lines []domain.RawLineItem) (*domain.ImportRun, []domain.ScoredSupplier, error) {
	started := time.Now()

	aggregates := scoring.Aggregate(lines)
	if len(aggregates) == 0 {
		return nil, nil, ErrEmptyImport
	}
	scored := scoring.CalculateAllScores(aggregates)

	kept := 0
	for _, a := range aggregates {
		kept += a.LineCount
	}

	run := domain.ImportRun{
		ID:            uuid.New(),
		CreatedAt:     time.Now().UTC(),
		LineCount:     len(lines),
		DroppedRows:   len(lines) - kept,
		SupplierCount: len(scored),
	}
	s.store.ReplaceBatch(run, scored)

	s.logger.Info("import run completed",
		zap.String("run_id", run.ID.String()),
		zap.Int("lines", run.LineCount),
		zap.Int("dropped_rows", run.DroppedRows),
		zap.Int("suppliers", run.SupplierCount),
		zap.Duration("duration", time.Since(started)),
	)

	return &run, scored, nil
}

// Runs returns the retained import-run history, oldest first.
func (s *ImportService) Runs(ctx context.Context) []domain.ImportRun {
	return s.store.Runs()
}

// PruneRuns drops run history beyond keep and returns how many records were
// removed. Called by the retention job.
func (s *ImportService) PruneRuns(keep int) int {
	pruned := s.store.PruneRuns(keep)
	if pruned > 0 {
		s.logger.Info("pruned import run history",
			zap.Int("pruned", pruned),
			zap.Int("keep", keep),
		)
	}
	return pruned
}
