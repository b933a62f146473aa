package scoring_test

import (
	"math"
	"testing"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/scoring"
)

func scoredWithRevenue(id string, revenue float64) domain.ScoredSupplier {
	return domain.ScoredSupplier{
		AggregatedSupplier: domain.AggregatedSupplier{SupplierID: id, Name: id, TotalRevenue: revenue},
	}
}

// TestClassifyTiers uses the canonical 50/30/10/10 revenue split: the first
// two accumulate to 0.80 and stay in A, the third lands in B at 0.90, the
// last crosses 0.95 into C.
func TestClassifyTiers(t *testing.T) {
	input := []domain.ScoredSupplier{
		scoredWithRevenue("S3", 100),
		scoredWithRevenue("S1", 500),
		scoredWithRevenue("S4", 100),
		scoredWithRevenue("S2", 300),
	}

	result := scoring.Classify(input)
	if len(result) != 4 {
		t.Fatalf("expected 4 suppliers, got %d", len(result))
	}

	expected := []struct {
		id    string
		share float64
		tier  domain.Tier
	}{
		{"S1", 0.5, domain.TierA},
		{"S2", 0.3, domain.TierA},
		{"S3", 0.1, domain.TierB},
		{"S4", 0.1, domain.TierC},
	}

	for i, e := range expected {
		s := result[i]
		if s.SupplierID != e.id {
			t.Errorf("position %d: got %s, want %s (descending revenue order)", i, s.SupplierID, e.id)
		}
		if math.Abs(s.RevenueShare-e.share) > 1e-9 {
			t.Errorf("%s: revenue share = %v, want %v", s.SupplierID, s.RevenueShare, e.share)
		}
		if s.Tier != e.tier {
			t.Errorf("%s: tier = %s, want %s", s.SupplierID, s.Tier, e.tier)
		}
	}
}

func TestClassifySharesSumToOne(t *testing.T) {
	input := []domain.ScoredSupplier{
		scoredWithRevenue("A", 123456.78),
		scoredWithRevenue("B", 98765.43),
		scoredWithRevenue("C", 11.11),
		scoredWithRevenue("D", 0),
	}

	result := scoring.Classify(input)

	var sum float64
	for _, s := range result {
		sum += s.RevenueShare
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("revenue shares sum to %v, want 1", sum)
	}
	if last := result[len(result)-1].AccumulatedShare; math.Abs(last-1) > 1e-9 {
		t.Errorf("final accumulated share = %v, want 1", last)
	}
}

// TestClassifyStableOnTies checks that equal revenue keeps input order, so a
// re-import of the same batch produces the same tier sequence.
func TestClassifyStableOnTies(t *testing.T) {
	input := []domain.ScoredSupplier{
		scoredWithRevenue("First", 100),
		scoredWithRevenue("Second", 100),
		scoredWithRevenue("Third", 100),
	}

	result := scoring.Classify(input)
	for i, want := range []string{"First", "Second", "Third"} {
		if result[i].SupplierID != want {
			t.Errorf("position %d: got %s, want %s", i, result[i].SupplierID, want)
		}
	}
}

func TestClassifySingleSupplierIsTierA(t *testing.T) {
	result := scoring.Classify([]domain.ScoredSupplier{scoredWithRevenue("Only", 42)})
	if result[0].Tier != domain.TierA {
		t.Errorf("single supplier tier = %s, want A", result[0].Tier)
	}
	if result[0].RevenueShare != 1 {
		t.Errorf("single supplier share = %v, want 1", result[0].RevenueShare)
	}
}

func TestClassifyZeroTotalRevenue(t *testing.T) {
	input := []domain.ScoredSupplier{
		scoredWithRevenue("A", 0),
		scoredWithRevenue("B", 0),
	}

	result := scoring.Classify(input)
	for _, s := range result {
		if s.RevenueShare != 0 {
			t.Errorf("%s: share = %v, want 0 when batch revenue is 0", s.SupplierID, s.RevenueShare)
		}
		if s.Tier != domain.TierA {
			t.Errorf("%s: tier = %s, want A when every share is 0", s.SupplierID, s.Tier)
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	input := []domain.ScoredSupplier{
		scoredWithRevenue("Low", 10),
		scoredWithRevenue("High", 90),
	}

	scoring.Classify(input)
	if input[0].SupplierID != "Low" || input[1].SupplierID != "High" {
		t.Errorf("input slice was reordered: %s, %s", input[0].SupplierID, input[1].SupplierID)
	}
	if input[0].Tier != "" {
		t.Errorf("input slice was written to: tier %s", input[0].Tier)
	}
}

func TestProfileNarratives(t *testing.T) {
	input := []domain.ScoredSupplier{
		{AggregatedSupplier: domain.AggregatedSupplier{SupplierID: "WideA", TotalRevenue: 1000}, AssortmentScore: 1.5},
		{AggregatedSupplier: domain.AggregatedSupplier{SupplierID: "NarrowC", TotalRevenue: 1}, AssortmentScore: 0.2},
	}

	result := scoring.Classify(input)
	if result[0].Profile == "" || result[1].Profile == "" {
		t.Fatal("every classified supplier must carry a profile narrative")
	}
	if result[0].Profile == result[1].Profile {
		t.Errorf("tier A wide and tier C narrow must read differently, both %q", result[0].Profile)
	}
}
