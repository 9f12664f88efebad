// Package match resolves courses across two catalogs by scanning every pair.
//
// Ties are broken by catalog order: the first record at or above the
// threshold wins, even when a later record would score higher.
package match

import "github.com/fwojciec/coursecheck"

// Ensure Matcher implements coursecheck.Matcher at compile time.
var _ coursecheck.Matcher = (*Matcher)(nil)

// Matcher compares every program B course against every program A course.
type Matcher struct {
	scorer coursecheck.Scorer
}

// NewMatcher creates a new Matcher using scorer for all comparisons.
func NewMatcher(scorer coursecheck.Scorer) *Matcher {
	return &Matcher{scorer: scorer}
}

// Enumerate returns the program B courses that have a program A match.
func (m *Matcher) Enumerate(programA, programB []*coursecheck.Course, threshold int) []coursecheck.CrossListing {
	accepted := make([]coursecheck.CrossListing, 0)
	for _, b := range programB {
		if a := FirstMatch(m.scorer, b.ComparisonText, programA, threshold); a != nil {
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
	matchesA := Filter(m.scorer, query, programA, threshold)
	matchesB := Filter(m.scorer, query, programB, threshold)
	return Decide(m.scorer, matchesA, matchesB, threshold)
}

// FirstMatch returns the first course similar to text, or nil.
func FirstMatch(s coursecheck.Scorer, text string, courses []*coursecheck.Course, threshold int) *coursecheck.Course {
	for _, c := range courses {
		if coursecheck.Similar(s, text, c.ComparisonText, threshold) {
			return c
		}
	}
	return nil
}

// Filter returns the courses similar to text, in catalog order.
func Filter(s coursecheck.Scorer, text string, courses []*coursecheck.Course, threshold int) []*coursecheck.Course {
	var matches []*coursecheck.Course
	for _, c := range courses {
		if coursecheck.Similar(s, text, c.ComparisonText, threshold) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Decide applies the verdict rules to the query matches of both catalogs.
// Only the first match of each catalog is considered.
func Decide(s coursecheck.Scorer, matchesA, matchesB []*coursecheck.Course, threshold int) coursecheck.Verdict {
	switch {
	case len(matchesA) > 0 && len(matchesB) > 0:
		a, b := matchesA[0], matchesB[0]
		if coursecheck.Similar(s, a.ComparisonText, b.ComparisonText, threshold) {
			return coursecheck.Verdict{
				Kind:           coursecheck.VerdictAccepted,
				Course:         b,
				Match:          a,
				Classification: a.Classification,
			}
		}
		return coursecheck.Verdict{Kind: coursecheck.VerdictAmbiguous, Course: b, Match: a}
	case len(matchesB) > 0:
		return coursecheck.Verdict{Kind: coursecheck.VerdictOnlyInProgramB, Course: matchesB[0]}
	case len(matchesA) > 0:
		return coursecheck.Verdict{Kind: coursecheck.VerdictOnlyInProgramA, Match: matchesA[0]}
	default:
		return coursecheck.Verdict{Kind: coursecheck.VerdictNotFound}
	}
}
