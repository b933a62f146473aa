package scoring

import (
	"math"
	"strings"

	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// Thresholds feeding the diagnosis signals. Revenue limits are absolute
// currency amounts; score limits refer to the batch-relative sub-scores.
const (
	strongTotalScore    = 8.0
	breadthTotalScore   = 6.0
	selectiveTotalScore = 4.0

	lowSalesScore      = 1.0
	lowBreadthScore    = 0.7
	highBreadthScore   = 1.2
	lowEfficiencyScore = 0.7

	lowRevenueLimit    = 50_000
	demandRevenueLimit = 100_000

	lowDataLineLimit    = 5
	lowDataRevenueLimit = 20_000
)

// signals is the boolean view of a scored supplier that the rule table
// evaluates against.
type signals struct {
	totalScore float64
	revenue    float64
	lineCount  int

	lowSales      bool // sales score below top tier
	lowRevenue    bool // positive but small absolute revenue
	lowBreadth    bool
	highBreadth   bool
	lowEfficiency bool
	lowMargin     bool
	demandOk      bool // at least one demand axis clears its threshold
	lowData       bool // too few lines or too little revenue to judge

	sales      float64
	assortment float64
	efficiency float64
	margin     int
}

func deriveSignals(s domain.ScoredSupplier) signals {
	sig := signals{
		totalScore: s.TotalScore,
		revenue:    s.TotalRevenue,
		lineCount:  s.LineCount,
		sales:      s.SalesScore,
		assortment: s.AssortmentScore,
		efficiency: s.EfficiencyScore,
		margin:     s.MarginScore,
	}
	sig.lowSales = s.SalesScore < lowSalesScore
	sig.lowRevenue = s.TotalRevenue > 0 && s.TotalRevenue < lowRevenueLimit
	sig.lowBreadth = s.AssortmentScore < lowBreadthScore
	sig.highBreadth = s.AssortmentScore >= highBreadthScore
	sig.lowEfficiency = s.EfficiencyScore < lowEfficiencyScore
	sig.lowMargin = s.MarginScore < 1
	sig.demandOk = s.SalesScore >= lowSalesScore ||
		s.EfficiencyScore >= 1 ||
		s.TotalRevenue >= demandRevenueLimit
	sig.lowData = s.LineCount < lowDataLineLimit || s.TotalRevenue < lowDataRevenueLimit
	return sig
}

// actionRule pairs a predicate with its outcome. Rules are evaluated in
// order and the first match wins, so coverage and ordering can be tested
// without touching control flow.
type actionRule struct {
	name   string
	match  func(sig signals) bool
	action func(sig signals) string
}

var actionRules = []actionRule{
	{
		name:   "scale",
		match:  func(sig signals) bool { return sig.totalScore >= strongTotalScore },
		action: func(signals) string { return "SCALE: broaden assortment (high priority)" },
	},
	{
		name: "breadth",
		match: func(sig signals) bool {
			return sig.totalScore >= breadthTotalScore && sig.lowBreadth && sig.demandOk
		},
		action: func(signals) string { return "BREADTH: add articles" },
	},
	{
		name: "selective-breadth",
		match: func(sig signals) bool {
			return sig.totalScore >= selectiveTotalScore && sig.totalScore < breadthTotalScore &&
				sig.lowBreadth && sig.demandOk
		},
		action: func(signals) string { return "SELECTIVE BREADTH: add only safe articles" },
	},
	{
		name: "optimize",
		match: func(sig signals) bool {
			return sig.highBreadth && (sig.lowSales || sig.lowEfficiency)
		},
		action: func(signals) string { return "OPTIMIZE: prune, keep top sellers" },
	},
	{
		name: "pause",
		match: func(sig signals) bool {
			// Pausing a supplier we barely have data on would be premature;
			// sparse suppliers fall through to EVALUATE: LOW DATA instead.
			return sig.totalScore < selectiveTotalScore &&
				sig.lowSales && sig.lowEfficiency && sig.lowRevenue && !sig.lowData
		},
		action: func(signals) string { return "PAUSE: deprioritize" },
	},
	{
		name:   "evaluate",
		match:  func(signals) bool { return true },
		action: func(sig signals) string { return "EVALUATE: " + evaluateSubCategory(sig) },
	},
}

// EVALUATE sub-categories.
const (
	EvaluateLowData     = "LOW DATA"
	EvaluateMixedSignal = "MIXED SIGNAL"
	EvaluatePotential   = "POTENTIAL"
	EvaluateConflict    = "CONFLICT"
)

func evaluateSubCategory(sig signals) string {
	strongAxis := sig.sales >= 2 || sig.assortment >= 1.4 || sig.efficiency >= 1.4 || sig.margin >= 2
	weakAxis := sig.lowSales || sig.lowBreadth || sig.lowEfficiency || sig.lowMargin
	moderateAxis := sig.sales >= 1.5 || sig.assortment >= 1 || sig.efficiency >= 1 || sig.margin >= 2

	switch {
	case sig.lowData:
		return EvaluateLowData
	case strongAxis && weakAxis:
		return EvaluateMixedSignal
	case moderateAxis:
		return EvaluatePotential
	default:
		return EvaluateConflict
	}
}

// evaluateChecklists holds the static reviewer follow-ups per EVALUATE
// sub-category. The content is fixed text, not generated.
var evaluateChecklists = map[string][]string{
	EvaluateLowData: {
		"Verify the import covered the full period for this supplier",
		"Check whether the supplier is new or being phased out",
		"Revisit after the next import before acting",
	},
	EvaluateMixedSignal: {
		"Identify which axis drives the strong signal",
		"Check margin development against purchase terms",
		"Compare against suppliers in the same category",
		"Decide whether to grow the strong axis or fix the weak one",
	},
	EvaluatePotential: {
		"Review the assortment for addable articles",
		"Negotiate volume terms before expanding",
		"Set a follow-up score target for the next period",
	},
	EvaluateConflict: {
		"Review the supplier relationship with purchasing",
		"Check for one-off orders distorting the numbers",
		"Consider consolidating volume to a stronger supplier",
	},
}

// ChecklistFor returns the static checklist for an EVALUATE action string,
// or nil for any other action.
func ChecklistFor(action string) []string {
	sub, ok := strings.CutPrefix(action, "EVALUATE: ")
	if !ok {
		return nil
	}
	return evaluateChecklists[sub]
}

// Reason tags joined into the diagnosis text, checked independently.
var reasonChecks = []struct {
	tag   string
	match func(sig signals) bool
}{
	{"sales below top tier", func(sig signals) bool { return sig.lowSales }},
	{"low absolute revenue", func(sig signals) bool { return sig.lowRevenue }},
	{"narrow assortment", func(sig signals) bool { return sig.lowBreadth }},
	{"weak efficiency per article", func(sig signals) bool { return sig.lowEfficiency }},
	{"low margin", func(sig signals) bool { return sig.lowMargin }},
}

// Diagnose produces the diagnosis text, the recommended action and the
// EVALUATE checklist for one scored supplier. It is a pure function of the
// scores plus raw revenue and line count. A non-finite total score
// short-circuits to empty output rather than panicking downstream.
func Diagnose(s domain.ScoredSupplier) (diagnosis, action string, checklist []string) {
	if math.IsNaN(s.TotalScore) || math.IsInf(s.TotalScore, 0) {
		return "", "", nil
	}
	sig := deriveSignals(s)

	if sig.totalScore >= strongTotalScore {
		diagnosis = "Strong supplier"
	} else {
		tags := make([]string, 0, len(reasonChecks))
		for _, check := range reasonChecks {
			if check.match(sig) {
				tags = append(tags, check.tag)
			}
		}
		if len(tags) == 0 {
			diagnosis = "No significant weaknesses"
		} else {
			diagnosis = strings.Join(tags, ", ")
		}
	}

	for _, rule := range actionRules {
		if rule.match(sig) {
			action = rule.action(sig)
			break
		}
	}
	return diagnosis, action, ChecklistFor(action)
}
