package scoring

import (
	"sort"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// ABC tier boundaries on accumulated revenue share.
const (
	tierABoundary = 0.80
	tierBBoundary = 0.95
)

// Assortment breadth cutoff used by the profile narrative. Tier itself is
// revenue only; breadth changes the wording, not the segment.
const wideAssortmentScore = 1.2

// Classify sorts the scored suppliers by revenue, computes revenue shares
// and accumulated share, and assigns the ABC tier plus the profile
// narrative. The sort is stable, so revenue ties keep input order. The input
// slice is not modified.
func Classify(scored []domain.ScoredSupplier) []domain.ScoredSupplier {
	result := make([]domain.ScoredSupplier, len(scored))
	copy(result, scored)

	var totalRevenue float64
	for _, s := range result {
		totalRevenue += s.TotalRevenue
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})

	accumulated := 0.0
	for i := range result {
		if totalRevenue > 0 {
			result[i].RevenueShare = result[i].TotalRevenue / totalRevenue
		}
		accumulated += result[i].RevenueShare
		result[i].AccumulatedShare = accumulated

		switch {
		case accumulated <= tierABoundary:
			result[i].Tier = domain.TierA
		case accumulated <= tierBBoundary:
			result[i].Tier = domain.TierB
		default:
			result[i].Tier = domain.TierC
		}
		result[i].Profile = profileFor(result[i].Tier, result[i].AssortmentScore)
	}
	return result
}

// profileFor returns the narrative attached to a tier. Wide-assortment core
// suppliers are defended and optimized; narrow ones are broadened.
func profileFor(tier domain.Tier, assortmentScore float64) string {
	wide := assortmentScore >= wideAssortmentScore
	switch tier {
	case domain.TierA:
		if wide {
			return "Core supplier with wide assortment - defend the relationship and optimize the range"
		}
		return "Core supplier with narrow assortment - broaden the assortment to reduce dependency"
	case domain.TierB:
		if wide {
			return "Important supplier with wide assortment - keep the range under review"
		}
		return "Important supplier with narrow assortment - selective growth potential"
	default:
		if wide {
			return "Tail supplier with wide assortment - consolidation candidate"
		}
		return "Tail supplier - low revenue share"
	}
}
