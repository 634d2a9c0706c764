package dto

// ReconcileRequest starts a reconciliation run.
type ReconcileRequest struct {
	CardholderName   string `json:"cardholder_name"`
	StartDate        string `json:"start_date"` // YYYY-MM-DD
	ExpectedExpenses string `json:"expected_expenses"`

	// Optional threshold overrides. Validated here at the boundary;
	// the engine assumes they are in range.
	PriceTolerance      *float64 `json:"price_tolerance,omitempty"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
}

// AffidavitRequest asks for a missing-receipt affidavit PDF, keyed off
// a single unmatched ledger entry.
type AffidavitRequest struct {
	Vendor         string  `json:"vendor"`
	Price          float64 `json:"price"`
	Date           string  `json:"date"` // YYYY-MM-DD
	CardholderName string  `json:"cardholder_name"`
}
