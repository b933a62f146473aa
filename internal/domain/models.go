package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier represents the ABC/Pareto segment of a supplier, assigned from
// accumulated revenue share (A up to 80%, B up to 95%, C the tail).
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// RawLineItem is one decoded transaction row as delivered by the import
// collaborator. Column mapping and cell decoding happen upstream; the
// numeric fields arrive untrusted and are clamped during aggregation.
type RawLineItem struct {
	ArticleID     string  `json:"articleId"`
	Description   string  `json:"description,omitempty"`
	Quantity      float64 `json:"quantity"`
	SupplierID    string  `json:"supplierId"`
	SupplierName  string  `json:"supplierName"`
	MarginPercent float64 `json:"marginPercent"`
	Revenue       float64 `json:"revenue"`
	// GrossProfit (TB/bruttovinst) is optional; when nil it is derived
	// per line as revenue * marginPercent / 100.
	GrossProfit *float64 `json:"grossProfit,omitempty"`
}

// AggregatedSupplier is the per-supplier fold of all line items in a batch.
// AvgMarginPercent is always summed gross profit over summed revenue, never
// an average of per-line margins.
type AggregatedSupplier struct {
	SupplierID       string  `json:"supplierId"`
	Name             string  `json:"name"`
	LineCount        int     `json:"lineCount"`
	TotalQuantity    float64 `json:"totalQuantity"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalGrossProfit float64 `json:"totalGrossProfit"`
	AvgMarginPercent float64 `json:"avgMarginPercent"`
}

// ScoredSupplier is an aggregate with all derived scoring output attached.
// Sub-scores are relative to the batch the supplier was scored in.
type ScoredSupplier struct {
	AggregatedSupplier

	SalesScore       float64 `json:"salesScore"`       // 0..3, relative to max revenue
	AssortmentScore  float64 `json:"assortmentScore"`  // 0..2, relative to max line count
	EfficiencyScore  float64 `json:"efficiencyScore"`  // 0..2, relative to max revenue/line
	MarginScore      int     `json:"marginScore"`      // 0..3, step function of margin
	TotalScore       float64 `json:"totalScore"`       // 0..10, round(sum, 1)
	RevenueShare     float64 `json:"revenueShare"`     // 0..1
	AccumulatedShare float64 `json:"accumulatedShare"` // 0..1, in descending revenue order
	Tier             Tier    `json:"tier"`
	Profile          string  `json:"profile"`
	Diagnosis        string  `json:"diagnosis"`
	Action           string  `json:"action"`
	// Checklist carries the static follow-up items attached to EVALUATE
	// actions; empty for every other action.
	Checklist []string `json:"checklist,omitempty"`
}

// CustomFactor is a user-entered correction applied to a supplier's score at
// read time. Its contribution to the adjusted score is Value * Weight; it
// never mutates the stored base score.
type CustomFactor struct {
	ID         uuid.UUID `json:"id"`
	SupplierID string    `json:"supplierId"`
	AuthorID   string    `json:"authorId"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Weight     float64   `json:"weight"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BonusAdjustment records bonus and tender-support amounts for a supplier.
// Both amounts add directly to gross profit before margin and score are
// recomputed for the adjusted view.
type BonusAdjustment struct {
	SupplierID    string    `json:"supplierId"`
	BonusAmount   float64   `json:"bonusAmount"`
	TenderSupport float64   `json:"tenderSupport"`
	Comment       string    `json:"comment,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AdjustedValues is the recomputed margin/score block after bonus and tender
// support are added to gross profit.
type AdjustedValues struct {
	AdjustedGrossProfit float64 `json:"adjustedGrossProfit"`
	AdjustedMargin      float64 `json:"adjustedMargin"`
	AdjustedMarginScore int     `json:"adjustedMarginScore"`
	AdjustedTotalScore  float64 `json:"adjustedTotalScore"`
}

// AdjustedView is the transient read-time projection of a scored supplier
// combined with whatever adjustments currently exist. FinalTotalScore is
// AdjustedTotalScore plus the summed custom-factor contributions and is
// deliberately unbounded.
type AdjustedView struct {
	ScoredSupplier

	AdjustedValues
	Bonus              *BonusAdjustment `json:"bonus,omitempty"`
	Factors            []CustomFactor   `json:"factors,omitempty"`
	FactorContribution float64          `json:"factorContribution"`
	FinalTotalScore    float64          `json:"finalTotalScore"`
}

// ImportRun is the metadata of one wholesale recompute. Every import
// replaces the stored batch completely; there is no incremental patching.
type ImportRun struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	LineCount     int       `json:"lineCount"`
	DroppedRows   int       `json:"droppedRows"`
	SupplierCount int       `json:"supplierCount"`
}
