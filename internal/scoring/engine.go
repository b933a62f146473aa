package scoring

import (
	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// CalculateAllScores runs the full scoring pipeline over a batch of
// aggregates: relative sub-scores against the batch maxima, ABC
// classification on revenue shares, then the per-supplier diagnosis. The
// result is ordered by descending revenue as classified. Two population-wide
// barriers exist (maxima reduction and the share sort); everything else is a
// per-supplier map.
func CalculateAllScores(aggregates []domain.AggregatedSupplier) []domain.ScoredSupplier {
	scored := ScoreSuppliers(aggregates)
	classified := Classify(scored)
	for i := range classified {
		classified[i].Diagnosis, classified[i].Action, classified[i].Checklist = Diagnose(classified[i])
	}
	return classified
}
