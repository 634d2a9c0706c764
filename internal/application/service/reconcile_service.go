// Package service orchestrates a reconciliation run: fetch the ledger,
// parse the claimed purchases, and hand both to the matching engine.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
	"github.com/bakertreasury/expense-reconciler/internal/domain/reconciler"
)

// LedgerSource supplies the actual purchase records for a cardholder.
// The production implementation is the spreadsheet client; tests stub
// it.
type LedgerSource interface {
	FetchEntries(ctx context.Context, sheetURL, cardholder string, startDate time.Time) ([]expense.LedgerEntry, error)
}

// ReconcileParams carries one reconciliation request. The threshold
// overrides are optional; nil falls back to the service defaults. The
// API layer validates overrides before they get here — the engine does
// not re-check them.
type ReconcileParams struct {
	Cardholder          string
	StartDate           time.Time
	ExpectedText        string
	PriceTolerance      *decimal.Decimal
	SimilarityThreshold *float64
}

// ReconcileService runs reconciliations against a single configured
// spreadsheet.
type ReconcileService struct {
	ledger   LedgerSource
	sheetURL string
	defaults reconciler.Config
	logger   *slog.Logger
}

// NewReconcileService creates a service reconciling against sheetURL.
func NewReconcileService(ledger LedgerSource, sheetURL string, defaults reconciler.Config, logger *slog.Logger) *ReconcileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileService{
		ledger:   ledger,
		sheetURL: sheetURL,
		defaults: defaults,
		logger:   logger,
	}
}

// Reconcile fetches the cardholder's ledger entries and matches the
// claimed purchases against them.
func (s *ReconcileService) Reconcile(ctx context.Context, params ReconcileParams) (reconciler.Result, error) {
	entries, err := s.ledger.FetchEntries(ctx, s.sheetURL, params.Cardholder, params.StartDate)
	if err != nil {
		return reconciler.Result{}, fmt.Errorf("fetching ledger entries: %w", err)
	}

	expected := expense.ParseExpected(params.ExpectedText)

	cfg := s.defaults
	if params.PriceTolerance != nil {
		cfg.PriceTolerance = *params.PriceTolerance
	}
	if params.SimilarityThreshold != nil {
		cfg.SimilarityThreshold = *params.SimilarityThreshold
	}

	result := reconciler.Reconcile(expected, entries, cfg)

	s.logger.Info("reconciliation complete",
		"cardholder", params.Cardholder,
		"expected", len(expected),
		"actual", len(entries),
		"matched", len(result.Matched),
		"unmatched_expected", len(result.UnmatchedExpected),
		"unmatched_actual", len(result.UnmatchedActual))

	return result, nil
}
