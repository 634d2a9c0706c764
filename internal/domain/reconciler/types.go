package reconciler

import (
	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
)

// Config holds the two matching thresholds. Both are caller-supplied
// and assumed valid: a negative tolerance or an out-of-range threshold
// is a contract violation and must be rejected before calling
// Reconcile.
type Config struct {
	PriceTolerance      decimal.Decimal // max absolute price difference for a fuzzy match
	SimilarityThreshold float64         // min vendor similarity for a fuzzy match, in [0, 1]
}

// DefaultConfig returns the thresholds used by the API and CLI unless
// a caller overrides them.
func DefaultConfig() Config {
	return Config{
		PriceTolerance:      decimal.NewFromFloat(1.00),
		SimilarityThreshold: 0.75,
	}
}

// Pair couples a claimed purchase with the ledger entry it matched.
type Pair struct {
	Expected expense.ExpectedExpense
	Actual   expense.LedgerEntry
}

// Result partitions the two inputs: every expected expense and every
// ledger entry lands in exactly one pair or one residual list, in
// original input order.
type Result struct {
	Matched           []Pair
	UnmatchedExpected []expense.ExpectedExpense
	UnmatchedActual   []expense.LedgerEntry
}
