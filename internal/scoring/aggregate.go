package scoring

import (
	"math"
	"strings"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// Aggregate folds raw line items into one aggregate per supplier key.
// Supplier ids are trimmed before grouping; rows with a blank supplier id or
// name are dropped silently since a handful of malformed rows are expected at
// import scale and must not abort the batch. Quantity and revenue are clamped
// to >= 0 and margin to [-100,100] before summation. Output order is
// first-seen order; the classifier fixes the final order later.
func Aggregate(lines []domain.RawLineItem) []domain.AggregatedSupplier {
	groups := make(map[string]*domain.AggregatedSupplier)
	order := make([]string, 0, 16)

	for _, line := range lines {
		id := strings.TrimSpace(line.SupplierID)
		name := strings.TrimSpace(line.SupplierName)
		if id == "" || name == "" {
			continue
		}

		agg, ok := groups[id]
		if !ok {
			agg = &domain.AggregatedSupplier{SupplierID: id, Name: name}
			groups[id] = agg
			order = append(order, id)
		}

		quantity := clamp(line.Quantity, 0, math.MaxFloat64)
		revenue := clamp(line.Revenue, 0, math.MaxFloat64)
		margin := clamp(line.MarginPercent, -100, 100)

		grossProfit := revenue * margin / 100
		if line.GrossProfit != nil && isFinite(*line.GrossProfit) {
			grossProfit = *line.GrossProfit
		}

		agg.LineCount++
		agg.TotalQuantity += quantity
		agg.TotalRevenue += revenue
		agg.TotalGrossProfit += grossProfit
	}

	result := make([]domain.AggregatedSupplier, 0, len(order))
	for _, id := range order {
		agg := groups[id]
		// Margin from summed gross profit over summed revenue. Averaging
		// per-line margins would weight small lines as heavily as large ones.
		if agg.TotalRevenue > 0 {
			agg.AvgMarginPercent = agg.TotalGrossProfit / agg.TotalRevenue * 100
		}
		result = append(result, *agg)
	}
	return result
}

// clamp bounds v to [min,max]; non-finite input resolves to 0 so a stray NaN
// never propagates into the sums.
func clamp(v, min, max float64) float64 {
	if !isFinite(v) {
		v = 0
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
