package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_IdenticalAfterNormalization(t *testing.T) {
	assert.Equal(t, 1.0, Score("Target", "Target"))
	assert.Equal(t, 1.0, Score("  Trader Joe's  ", "trader joe's"))
	assert.Equal(t, 1.0, Score("HEB", "heb"))
}

func TestScore_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "Target"))
	assert.Equal(t, 0.0, Score("Target", ""))
	assert.Equal(t, 0.0, Score("", ""))
	assert.Equal(t, 0.0, Score("   ", "Target"))
}

func TestScore_MinorSpellingDifferences(t *testing.T) {
	// "trader joe's" vs "trader joes": one dropped apostrophe out of
	// 23 total characters -> 22/23.
	score := Score("Trader Joe's", "TRADER JOES")

	assert.InDelta(t, 22.0/23.0, score, 1e-9)
	assert.GreaterOrEqual(t, score, 0.75)
}

func TestScore_UnrelatedVendors(t *testing.T) {
	assert.Less(t, Score("Target", "Academy Sports"), 0.5)
	assert.Less(t, Score("Cheesecake", "Custom Ink"), 0.75)
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Trader Joe's", "TRADER JOES"},
		{"Target", "Academy Sports"},
		{"Burger Chan", "Burger Chan Houston"},
	}

	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]))
	}
}

func TestScore_KnownRatio(t *testing.T) {
	// Three of four characters align on each side: 2*3/8.
	assert.InDelta(t, 0.75, Score("abcd", "abce"), 1e-9)
}
