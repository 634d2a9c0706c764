package dto

import (
	"time"

	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
	"github.com/bakertreasury/expense-reconciler/internal/domain/reconciler"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response stamped with the current time.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ExpectedExpenseResponse represents a claimed purchase in API responses.
type ExpectedExpenseResponse struct {
	Date   string  `json:"date"`
	Vendor string  `json:"vendor"`
	Price  float64 `json:"price"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	Description string   `json:"description"`
	Activity    string   `json:"activity"`
	Date        string   `json:"date"`
	Price       float64  `json:"price"`
	Vendor      string   `json:"vendor"`
	Receipts    []string `json:"receipts"`
	Flyer       string   `json:"flyer"`
}

// MatchedPairResponse couples a claimed purchase with its ledger entry.
type MatchedPairResponse struct {
	Expected ExpectedExpenseResponse `json:"expected"`
	Actual   LedgerEntryResponse     `json:"actual"`
}

// ReconcileResponse is the partition produced by a reconciliation run.
type ReconcileResponse struct {
	Matched           []MatchedPairResponse     `json:"matched"`
	UnmatchedExpected []ExpectedExpenseResponse `json:"unmatched_expected"`
	UnmatchedActual   []LedgerEntryResponse     `json:"unmatched_actual"`
}

// NewReconcileResponse converts an engine result to its API shape.
func NewReconcileResponse(result reconciler.Result) ReconcileResponse {
	resp := ReconcileResponse{
		Matched:           make([]MatchedPairResponse, 0, len(result.Matched)),
		UnmatchedExpected: make([]ExpectedExpenseResponse, 0, len(result.UnmatchedExpected)),
		UnmatchedActual:   make([]LedgerEntryResponse, 0, len(result.UnmatchedActual)),
	}

	for _, pair := range result.Matched {
		resp.Matched = append(resp.Matched, MatchedPairResponse{
			Expected: newExpectedExpense(pair.Expected),
			Actual:   newLedgerEntry(pair.Actual),
		})
	}
	for _, exp := range result.UnmatchedExpected {
		resp.UnmatchedExpected = append(resp.UnmatchedExpected, newExpectedExpense(exp))
	}
	for _, act := range result.UnmatchedActual {
		resp.UnmatchedActual = append(resp.UnmatchedActual, newLedgerEntry(act))
	}

	return resp
}

func newExpectedExpense(exp expense.ExpectedExpense) ExpectedExpenseResponse {
	return ExpectedExpenseResponse{
		Date:   exp.Date.Format(time.DateOnly),
		Vendor: exp.Vendor,
		Price:  exp.Price.InexactFloat64(),
	}
}

func newLedgerEntry(act expense.LedgerEntry) LedgerEntryResponse {
	receipts := act.Receipts
	if receipts == nil {
		receipts = []string{}
	}
	return LedgerEntryResponse{
		Description: act.Description,
		Activity:    act.Activity,
		Date:        act.Date.Format(time.DateOnly),
		Price:       act.Price.InexactFloat64(),
		Vendor:      act.Vendor,
		Receipts:    receipts,
		Flyer:       act.Flyer,
	}
}
