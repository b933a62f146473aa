package scoring

import (
	"math"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// Sub-score ceilings. Sales carries the most weight, assortment and
// efficiency share the middle, margin contributes its step value directly.
const (
	maxSalesScore      = 3.0
	maxAssortmentScore = 2.0
	maxEfficiencyScore = 2.0
)

// batchMaxima holds the population-wide maxima one scoring pass needs.
// Every sub-score is relative to the batch, so no supplier can be scored
// before the whole batch has been reduced.
type batchMaxima struct {
	revenue    float64
	lineCount  float64
	efficiency float64 // max revenue per line over suppliers with lines
}

func reduceMaxima(aggs []domain.AggregatedSupplier) batchMaxima {
	var m batchMaxima
	for _, a := range aggs {
		if a.TotalRevenue > m.revenue {
			m.revenue = a.TotalRevenue
		}
		if float64(a.LineCount) > m.lineCount {
			m.lineCount = float64(a.LineCount)
		}
		if a.LineCount > 0 {
			if eff := a.TotalRevenue / float64(a.LineCount); eff > m.efficiency {
				m.efficiency = eff
			}
		}
	}
	return m
}

// ScoreSuppliers computes the four sub-scores and the total for every
// aggregate, relative to the batch maxima. Tier, share and diagnosis fields
// are filled in later by Classify and Diagnose.
func ScoreSuppliers(aggs []domain.AggregatedSupplier) []domain.ScoredSupplier {
	maxima := reduceMaxima(aggs)

	scored := make([]domain.ScoredSupplier, 0, len(aggs))
	for _, a := range aggs {
		s := domain.ScoredSupplier{AggregatedSupplier: a}

		if maxima.revenue > 0 {
			s.SalesScore = round2(maxSalesScore * a.TotalRevenue / maxima.revenue)
		}
		if maxima.lineCount > 0 {
			s.AssortmentScore = round2(maxAssortmentScore * float64(a.LineCount) / maxima.lineCount)
		}
		if a.LineCount > 0 && maxima.efficiency > 0 {
			efficiency := a.TotalRevenue / float64(a.LineCount)
			s.EfficiencyScore = round2(maxEfficiencyScore * efficiency / maxima.efficiency)
		}
		s.MarginScore = MarginScore(a.AvgMarginPercent)
		s.TotalScore = round1(s.SalesScore + s.AssortmentScore + s.EfficiencyScore + float64(s.MarginScore))

		scored = append(scored, s)
	}
	return scored
}

// MarginScore maps a margin percentage (TG) onto the 0-3 step scale:
// below 20% scores 0, below 30% scores 1, below 40% scores 2, 40% and up
// scores 3.
func MarginScore(marginPercent float64) int {
	switch {
	case marginPercent < 20:
		return 0
	case marginPercent < 30:
		return 1
	case marginPercent < 40:
		return 2
	default:
		return 3
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
