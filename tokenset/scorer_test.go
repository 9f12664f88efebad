package tokenset_test

import (
	"testing"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/tokenset"
	"github.com/stretchr/testify/assert"
)

var samplePairs = [][2]string{
	{"Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)", "Blockchain Fundamentals (SIM101, Prof. X, FinTech)"},
	{"Is Blockchain in Finance accepted?", "Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)"},
	{"fuzzy was a bear", "fuzzy fuzzy was a bear"},
	{"Risk Management", "risk management (SIM210, Dr. Y, Finance)"},
	{"abc", "xyz"},
	{"Ünïcödé Kurs", "ünïcödé kurs II"},
	{"", "Digital Payments"},
}

func TestRatio(t *testing.T) {
	t.Parallel()

	t.Run("scores near-identical strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 96, tokenset.Ratio("this is a test", "this is a test!"))
	})

	t.Run("scores identical strings 100", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, tokenset.Ratio("ledger", "ledger"))
		assert.Equal(t, 100, tokenset.Ratio("", ""))
	})

	t.Run("scores disjoint strings 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, tokenset.Ratio("abc", "xyz"))
		assert.Equal(t, 0, tokenset.Ratio("abc", ""))
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, tokenset.Ratio("ABC", "abc"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		// One substitution in four runes: LCS 3 of 8 runes total.
		assert.Equal(t, 75, tokenset.Ratio("über", "uber"))
	})
}

func TestTokenSetRatio(t *testing.T) {
	t.Parallel()

	t.Run("ignores duplicates and word order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, tokenset.TokenSetRatio("fuzzy was a bear", "fuzzy fuzzy was a bear"))
		assert.Equal(t, 100, tokenset.TokenSetRatio("finance in blockchain", "Blockchain in Finance"))
	})

	t.Run("scores subset 100", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, tokenset.TokenSetRatio("Digital Payments", "Digital Payments (FT305, Dr. Z, Spring, 5 ECTS)"))
	})

	t.Run("scores query against catalog text", func(t *testing.T) {
		t.Parallel()

		// sect "blockchain finance in" (21) vs sect+" accepted? is" (34).
		score := tokenset.TokenSetRatio("Is Blockchain in Finance accepted?", "Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)")

		assert.Equal(t, 76, score)
	})

	t.Run("scores differently titled courses below default threshold", func(t *testing.T) {
		t.Parallel()

		score := tokenset.TokenSetRatio("Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)", "Blockchain Fundamentals (SIM101, Prof. X, FinTech)")

		assert.Less(t, score, coursecheck.DefaultThreshold)
	})

	t.Run("returns 0 without words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, tokenset.TokenSetRatio("", "Digital Payments"))
		assert.Equal(t, 0, tokenset.TokenSetRatio("   ", "   "))
	})

	t.Run("falls back to ratio of sorted words without shared words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, tokenset.TokenSetRatio("abc", "xyz"))
		assert.Equal(t, tokenset.Ratio("blockchain", "blokchain"), tokenset.TokenSetRatio("Blockchain", "blokchain"))
	})
}

func TestScorer_Properties(t *testing.T) {
	t.Parallel()

	scorer := tokenset.NewScorer()

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		for _, p := range samplePairs {
			assert.Equal(t, scorer.Score(p[0], p[1]), scorer.Score(p[1], p[0]), "pair %q", p)
		}
	})

	t.Run("stays within bounds", func(t *testing.T) {
		t.Parallel()

		for _, p := range samplePairs {
			score := scorer.Score(p[0], p[1])
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})

	t.Run("matches itself regardless of case", func(t *testing.T) {
		t.Parallel()

		for _, p := range samplePairs {
			if p[0] == "" {
				continue
			}
			assert.True(t, coursecheck.Similar(scorer, p[0], p[0], coursecheck.DefaultThreshold))
			assert.Equal(t, 100, scorer.Score(p[0], p[0]))
		}
		assert.Equal(t, 100, scorer.Score("RISK MANAGEMENT", "risk management"))
	})

	t.Run("is monotonic in threshold", func(t *testing.T) {
		t.Parallel()

		for _, p := range samplePairs {
			for t1 := 0; t1 <= 100; t1 += 5 {
				if !coursecheck.Similar(scorer, p[0], p[1], t1) {
					continue
				}
				for t2 := 0; t2 < t1; t2++ {
					assert.True(t, coursecheck.Similar(scorer, p[0], p[1], t2))
				}
			}
		}
	})
}

func TestWords(t *testing.T) {
	t.Parallel()

	t.Run("folds case and drops duplicates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"a", "bear", "fuzzy", "was"}, tokenset.Words("Fuzzy fuzzy was a BEAR"))
	})

	t.Run("returns empty slice for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tokenset.Words(" \t "))
	})
}
