package jobs

import (
	"go.uber.org/zap"
)

// RetentionJobName is the name of the run-history retention job
const RetentionJobName = "run_retention"

// RunPruner defines the interface for pruning import-run history.
// This interface allows the job to call the service without importing the
// service package directly.
type RunPruner interface {
	// PruneRuns drops run history beyond keep and returns how many records
	// were removed.
	PruneRuns(keep int) int
}

// RetentionJob keeps the in-memory import-run history bounded on long-lived
// processes. The current batch itself is never pruned.
type RetentionJob struct {
	pruner RunPruner
	keep   int
	logger *zap.Logger
}

// NewRetentionJob creates a new retention job that keeps the latest keep runs.
func NewRetentionJob(pruner RunPruner, keep int, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		pruner: pruner,
		keep:   keep,
		logger: logger,
	}
}

// Run executes the retention job.
func (j *RetentionJob) Run() {
	pruned := j.pruner.PruneRuns(j.keep)
	if pruned > 0 {
		j.logger.Info("run retention pruned history",
			zap.Int("pruned", pruned),
			zap.Int("keep", j.keep),
		)
	}
}
