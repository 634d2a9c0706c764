// Package similarity scores how alike two vendor names are, so that
// "Trader Joe's" on the claimed list still matches "TRADER JOES" in the
// ledger.
package similarity

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ratioOptions weights a substitution as a delete plus an insert, which
// makes RatioForStrings equal to the classic sequence ratio 2*M/T,
// where M is the length of the longest common subsequence and T the
// total length of both strings.
var ratioOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 2,
	Matches: levenshtein.IdenticalRunes,
}

// Score returns a similarity ratio in [0, 1] between two vendor names.
// Both names are trimmed and lowercased first; 1.0 means identical
// after normalization, and either input being empty scores 0.0.
func Score(a, b string) float64 {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if na == "" || nb == "" {
		return 0.0
	}

	return levenshtein.RatioForStrings([]rune(na), []rune(nb), ratioOptions)
}
