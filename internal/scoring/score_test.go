package scoring_test

import (
	"math"
	"testing"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/scoring"
)

func TestMarginScoreSteps(t *testing.T) {
	tests := []struct {
		margin   float64
		expected int
	}{
		{-50, 0},
		{0, 0},
		{19.9, 0},
		{20, 1},
		{25, 1},
		{29.99, 1},
		{30, 2},
		{39.99, 2},
		{40, 3},
		{45, 3},
		{100, 3},
	}

	for _, tc := range tests {
		if got := scoring.MarginScore(tc.margin); got != tc.expected {
			t.Errorf("MarginScore(%v) = %d, want %d", tc.margin, got, tc.expected)
		}
	}
}

func TestScoreSuppliersRelativeToBatch(t *testing.T) {
	aggs := []domain.AggregatedSupplier{
		{SupplierID: "MAX", Name: "Maxima", LineCount: 50, TotalRevenue: 500000, TotalGrossProfit: 225000, AvgMarginPercent: 45},
		{SupplierID: "HALF", Name: "Halfway", LineCount: 25, TotalRevenue: 250000, TotalGrossProfit: 62500, AvgMarginPercent: 25},
	}

	scored := scoring.ScoreSuppliers(aggs)
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored suppliers, got %d", len(scored))
	}

	max := scored[0]
	if max.SalesScore != 3.0 {
		t.Errorf("batch max sales score = %v, want 3.0", max.SalesScore)
	}
	if max.AssortmentScore != 2.0 {
		t.Errorf("batch max assortment score = %v, want 2.0", max.AssortmentScore)
	}
	if max.EfficiencyScore != 2.0 {
		t.Errorf("batch max efficiency score = %v, want 2.0", max.EfficiencyScore)
	}
	if max.MarginScore != 3 {
		t.Errorf("45%% margin score = %d, want 3", max.MarginScore)
	}
	if max.TotalScore != 10.0 {
		t.Errorf("batch max total = %v, want 10.0", max.TotalScore)
	}

	half := scored[1]
	if half.SalesScore != 1.5 {
		t.Errorf("half revenue sales score = %v, want 1.5", half.SalesScore)
	}
	if half.AssortmentScore != 1.0 {
		t.Errorf("half line count assortment score = %v, want 1.0", half.AssortmentScore)
	}
	// Both suppliers have identical revenue per line, so efficiency ties at max.
	if half.EfficiencyScore != 2.0 {
		t.Errorf("equal revenue per line efficiency score = %v, want 2.0", half.EfficiencyScore)
	}
	if half.MarginScore != 1 {
		t.Errorf("25%% margin score = %d, want 1", half.MarginScore)
	}
	if half.TotalScore != 5.5 {
		t.Errorf("half total = %v, want 5.5", half.TotalScore)
	}
}

// TestScoreSuppliersTotalIsRoundedSum checks the total score invariant over a
// spread of batches: total == round1(sales + assortment + efficiency + margin)
// and stays within [0,10].
func TestScoreSuppliersTotalIsRoundedSum(t *testing.T) {
	aggs := []domain.AggregatedSupplier{
		{SupplierID: "A", Name: "A", LineCount: 17, TotalRevenue: 123456.78, AvgMarginPercent: 31.4},
		{SupplierID: "B", Name: "B", LineCount: 3, TotalRevenue: 9999.99, AvgMarginPercent: 12.3},
		{SupplierID: "C", Name: "C", LineCount: 41, TotalRevenue: 87654.32, AvgMarginPercent: 44.4},
		{SupplierID: "D", Name: "D", LineCount: 1, TotalRevenue: 0, AvgMarginPercent: 0},
	}

	for _, s := range scoring.ScoreSuppliers(aggs) {
		sum := s.SalesScore + s.AssortmentScore + s.EfficiencyScore + float64(s.MarginScore)
		want := math.Round(sum*10) / 10
		if s.TotalScore != want {
			t.Errorf("%s: total = %v, want round1(%v) = %v", s.SupplierID, s.TotalScore, sum, want)
		}
		if s.TotalScore < 0 || s.TotalScore > 10 {
			t.Errorf("%s: total %v out of [0,10]", s.SupplierID, s.TotalScore)
		}
	}
}

// TestScoreSuppliersZeroBatch covers the degenerate batch where every maximum
// is zero; relative scores must be 0, not NaN from a zero division.
func TestScoreSuppliersZeroBatch(t *testing.T) {
	aggs := []domain.AggregatedSupplier{
		{SupplierID: "Z", Name: "Zero", LineCount: 0, TotalRevenue: 0},
	}

	scored := scoring.ScoreSuppliers(aggs)
	s := scored[0]
	if s.SalesScore != 0 || s.AssortmentScore != 0 || s.EfficiencyScore != 0 {
		t.Errorf("zero batch must score 0, got %v/%v/%v", s.SalesScore, s.AssortmentScore, s.EfficiencyScore)
	}
	if s.TotalScore != 0 {
		t.Errorf("zero batch total = %v, want 0", s.TotalScore)
	}
}

func TestScoreSuppliersEmptyBatch(t *testing.T) {
	if scored := scoring.ScoreSuppliers(nil); len(scored) != 0 {
		t.Errorf("expected empty result, got %d", len(scored))
	}
}
