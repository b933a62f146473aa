package scoring

import (
	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// CalculateAdjustedValues recomputes gross profit, margin and score after a
// bonus and tender support are added. The computation mirrors the base
// scoring exactly: with zero bonus and tender it reproduces the unadjusted
// total score. Zero revenue resolves the margin to 0, never to Inf.
func CalculateAdjustedValues(
	totalGrossProfit, totalRevenue float64,
	bonusAmount, tenderSupport float64,
	salesScore, assortmentScore, efficiencyScore float64,
) domain.AdjustedValues {
	adjustedGrossProfit := totalGrossProfit + bonusAmount + tenderSupport

	var adjustedMargin float64
	if totalRevenue > 0 {
		adjustedMargin = adjustedGrossProfit / totalRevenue * 100
	}

	marginScore := MarginScore(adjustedMargin)
	return domain.AdjustedValues{
		AdjustedGrossProfit: adjustedGrossProfit,
		AdjustedMargin:      adjustedMargin,
		AdjustedMarginScore: marginScore,
		AdjustedTotalScore:  round1(salesScore + assortmentScore + efficiencyScore + float64(marginScore)),
	}
}

// ApplyAdjustments projects a persisted scored supplier together with its
// current adjustments into a transient adjusted view. The base record is
// never mutated; deleting a factor or clearing a bonus reverts the visible
// score on the next read with no migration. FinalTotalScore is unbounded,
// callers must not assume it stays within 0..10.
func ApplyAdjustments(s domain.ScoredSupplier, bonus *domain.BonusAdjustment, factors []domain.CustomFactor) domain.AdjustedView {
	var bonusAmount, tenderSupport float64
	if bonus != nil {
		bonusAmount = bonus.BonusAmount
		tenderSupport = bonus.TenderSupport
	}

	values := CalculateAdjustedValues(
		s.TotalGrossProfit, s.TotalRevenue,
		bonusAmount, tenderSupport,
		s.SalesScore, s.AssortmentScore, s.EfficiencyScore,
	)

	var contribution float64
	for _, f := range factors {
		contribution += f.Value * f.Weight
	}

	return domain.AdjustedView{
		ScoredSupplier:     s,
		AdjustedValues:     values,
		Bonus:              bonus,
		Factors:            factors,
		FactorContribution: contribution,
		FinalTotalScore:    values.AdjustedTotalScore + contribution,
	}
}
