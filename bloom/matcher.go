package bloom

import (
	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/match"
	"github.com/fwojciec/coursecheck/tokenset"
)

// DefaultFalsePositiveRate is the false positive rate of each course filter.
const DefaultFalsePositiveRate = 0.01

// Ensure Matcher implements coursecheck.Matcher at compile time.
var _ coursecheck.Matcher = (*Matcher)(nil)

// Matcher scores only the courses that share at least one word with the
// probe text. Pairs that would clear the threshold without a shared word,
// such as misspelled titles, are missed.
type Matcher struct {
	scorer coursecheck.Scorer

	// FalsePositiveRate of the per-course word filters.
	FalsePositiveRate float64
}

// NewMatcher creates a new Matcher using scorer for the surviving candidates.
func NewMatcher(scorer coursecheck.Scorer) *Matcher {
	return &Matcher{scorer: scorer, FalsePositiveRate: DefaultFalsePositiveRate}
}

// Enumerate returns the program B courses that have a program A match.
func (m *Matcher) Enumerate(programA, programB []*coursecheck.Course, threshold int) []coursecheck.CrossListing {
	// Every pair scores at least 0, so there is nothing to narrow.
	if threshold <= 0 {
		return match.NewMatcher(m.scorer).Enumerate(programA, programB, threshold)
	}

	idx := m.index(programA)
	accepted := make([]coursecheck.CrossListing, 0)
	for _, b := range programB {
		candidates := idx.candidates(b.ComparisonText)
		if a := match.FirstMatch(m.scorer, b.ComparisonText, candidates, threshold); a != nil {
			accepted = append(accepted, coursecheck.CrossListing{
				Course:         b,
				Match:          a,
				Classification: a.Classification,
			})
		}
	}
	return accepted
}

// Lookup returns the verdict for a query naming one course.
func (m *Matcher) Lookup(programA, programB []*coursecheck.Course, query string, threshold int) coursecheck.Verdict {
	if threshold <= 0 {
		return match.NewMatcher(m.scorer).Lookup(programA, programB, query, threshold)
	}

	matchesA := match.Filter(m.scorer, query, m.index(programA).candidates(query), threshold)
	matchesB := match.Filter(m.scorer, query, m.index(programB).candidates(query), threshold)
	return match.Decide(m.scorer, matchesA, matchesB, threshold)
}

// index holds one word filter per course, in catalog order.
type index struct {
	courses []*coursecheck.Course
	filters []*Filter
}

func (m *Matcher) index(courses []*coursecheck.Course) *index {
	idx := &index{courses: courses, filters: make([]*Filter, len(courses))}
	for i, c := range courses {
		words := tokenset.Words(c.ComparisonText)
		f := NewFilter(uint(max(len(words), 1)), m.FalsePositiveRate)
		for _, w := range words {
			f.Add(w)
		}
		idx.filters[i] = f
	}
	return idx
}

// candidates returns the courses that may share a word with text, in catalog order.
func (idx *index) candidates(text string) []*coursecheck.Course {
	words := tokenset.Words(text)
	var out []*coursecheck.Course
	for i, f := range idx.filters {
		if f.TestAny(words) {
			out = append(out, idx.courses[i])
		}
	}
	return out
}
