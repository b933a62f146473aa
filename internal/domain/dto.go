package domain

// DTOs for the scoring API surface

// ImportRequest carries the decoded line items for one import run. Rows are
// already column-mapped by the upstream import collaborator.
type ImportRequest struct {
	Lines []RawLineItem `json:"lines" validate:"required,min=1,dive"`
}

// ImportResponse is the result of one wholesale recompute.
type ImportResponse struct {
	Run       ImportRun        `json:"run"`
	Suppliers []ScoredSupplier `json:"suppliers"`
}

// ScoreListResponse wraps the latest scored batch in classified order.
type ScoreListResponse struct {
	Run       *ImportRun       `json:"run,omitempty"`
	Suppliers []ScoredSupplier `json:"suppliers"`
	Total     int              `json:"total"`
}

// SetBonusRequest sets or replaces the bonus adjustment for a supplier.
type SetBonusRequest struct {
	BonusAmount   float64 `json:"bonusAmount" validate:"gte=0"`
	TenderSupport float64 `json:"tenderSupport" validate:"gte=0"`
	Comment       string  `json:"comment" validate:"max=500"`
}

// CreateCustomFactorRequest creates a custom factor for a supplier. Value and
// weight bounds follow the deployment defaults (value -3..3, weight 0..1).
type CreateCustomFactorRequest struct {
	AuthorID string  `json:"authorId" validate:"required,max=100"`
	Name     string  `json:"name" validate:"required,max=100"`
	Value    float64 `json:"value" validate:"gte=-3,lte=3"`
	Weight   float64 `json:"weight" validate:"gte=0,lte=1"`
	Comment  string  `json:"comment" validate:"max=500"`
}

// CustomFactorListResponse lists the factors currently attached to a supplier.
type CustomFactorListResponse struct {
	Factors []CustomFactor `json:"factors"`
	Total   int            `json:"total"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
