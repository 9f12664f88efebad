// Package tokenset implements order-independent fuzzy string similarity
// based on word token sets and the normalized InDel distance.
package tokenset

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/coursecheck"
)

// Ensure Scorer implements coursecheck.Scorer at compile time.
var _ coursecheck.Scorer = (*Scorer)(nil)

// Scorer scores texts with TokenSetRatio.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns the token-set similarity of a and b in [0, 100].
func (s *Scorer) Score(a, b string) int {
	return TokenSetRatio(a, b)
}

// Ratio returns the normalized InDel similarity of a and b in [0, 100].
// Scores are floored, so Ratio(a, b) >= t holds exactly when the real-valued
// similarity is at least t. Two empty strings are identical and score 100.
// Ratio is case-sensitive.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return normalized(indel(ra, rb), len(ra)+len(rb))
}

// TokenSetRatio compares the case-folded word sets of a and b.
//
// The shared words are sorted and joined into sect, the words unique to each
// side into ab and ba. The score is the best Ratio among sect vs sect+ab,
// sect vs sect+ba and sect+ab vs sect+ba. A side whose words are all shared
// scores 100. An input without words scores 0.
func TokenSetRatio(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var sect, diffAB, diffBA []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			sect = append(sect, tok)
		} else {
			diffAB = append(diffAB, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			diffBA = append(diffBA, tok)
		}
	}

	if len(sect) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sectStr, abStr, baStr := join(sect), join(diffAB), join(diffBA)
	sectLen := utf8.RuneCountInString(sectStr)
	abLen := utf8.RuneCountInString(abStr)
	baLen := utf8.RuneCountInString(baStr)

	sep := 0
	if sectLen > 0 {
		sep = 1
	}
	sectABLen := sectLen + sep + abLen
	sectBALen := sectLen + sep + baLen

	// sect+ab and sect+ba share the "sect " prefix, so their distance is the
	// distance between the differences alone.
	best := normalized(indel([]rune(abStr), []rune(baStr)), sectABLen+sectBALen)
	if sectLen == 0 {
		return best
	}

	// sect is a prefix of sect+ab, so only the appended part differs.
	best = max(best,
		normalized(sep+abLen, sectLen+sectABLen),
		normalized(sep+baLen, sectLen+sectBALen),
	)
	return best
}

// tokenize case-folds s and returns its set of whitespace-separated words.
func tokenize(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Words returns the sorted case-folded words that TokenSetRatio compares.
func Words(s string) []string {
	set := tokenize(s)
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func join(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func normalized(dist, lensum int) int {
	if lensum == 0 {
		return 100
	}
	return 100 * (lensum - dist) / lensum
}

// indel returns the insertion/deletion edit distance between a and b,
// computed from their longest common subsequence.
func indel(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(b)]
	return len(a) + len(b) - 2*lcs
}
