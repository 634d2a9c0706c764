// Package reconciler matches claimed purchases against ledger entries.
//
// Matching is greedy, two-phase, order-dependent, and one-to-one:
//
//  1. Exact phase: same price (fixed-point equality) and the ledger
//     date is on or after the claimed date.
//  2. Fuzzy phase: price within tolerance, date constraint holds, and
//     the vendor names are similar enough.
//
// Each phase walks the expected list in input order and commits the
// first qualifying ledger entry, also in input order, without looking
// for a better candidate. The exact phase runs to completion over all
// expected records before the fuzzy phase starts, so an exact match is
// never stolen by an earlier record's fuzzy search. First-fit greedy is
// deliberate: an auditor can always reconstruct why a pair matched, at
// the cost of global optimality. Do not replace it with optimal
// bipartite matching.
package reconciler

import (
	"github.com/bakertreasury/expense-reconciler/internal/domain/expense"
	"github.com/bakertreasury/expense-reconciler/internal/domain/similarity"
)

// Reconcile partitions the claimed purchases and ledger entries into
// matched pairs and two unmatched residuals. It is a pure function of
// its inputs: no I/O, no randomness, and identical inputs always yield
// an identical partition. Empty inputs are fine and produce
// residual-only results.
func Reconcile(expected []expense.ExpectedExpense, actual []expense.LedgerEntry, cfg Config) Result {
	matchedExpected := make(map[int]bool, len(expected))
	matchedActual := make(map[int]bool, len(actual))

	result := Result{
		Matched:           make([]Pair, 0),
		UnmatchedExpected: make([]expense.ExpectedExpense, 0),
		UnmatchedActual:   make([]expense.LedgerEntry, 0),
	}

	commit := func(i, j int) {
		result.Matched = append(result.Matched, Pair{Expected: expected[i], Actual: actual[j]})
		matchedExpected[i] = true
		matchedActual[j] = true
	}

	// Phase 1: exact price matches.
	for i, exp := range expected {
		for j, act := range actual {
			if matchedActual[j] {
				continue
			}
			if exp.Price.Equal(act.Price) && !act.Date.Before(exp.Date) {
				commit(i, j)
				break
			}
		}
	}

	// Phase 2: price within tolerance plus a similar vendor name.
	for i, exp := range expected {
		if matchedExpected[i] {
			continue
		}
		for j, act := range actual {
			if matchedActual[j] {
				continue
			}
			if exp.Price.Sub(act.Price).Abs().GreaterThan(cfg.PriceTolerance) {
				continue
			}
			if act.Date.Before(exp.Date) {
				continue
			}
			// Inclusive bound: a score exactly at the threshold matches.
			if similarity.Score(exp.Vendor, act.Vendor) < cfg.SimilarityThreshold {
				continue
			}
			commit(i, j)
			break
		}
	}

	for i, exp := range expected {
		if !matchedExpected[i] {
			result.UnmatchedExpected = append(result.UnmatchedExpected, exp)
		}
	}
	for j, act := range actual {
		if !matchedActual[j] {
			result.UnmatchedActual = append(result.UnmatchedActual, act)
		}
	}

	return result
}
