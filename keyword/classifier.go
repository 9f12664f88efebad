// Package keyword classifies query intent with fixed keyword lists.
package keyword

import (
	"strings"

	"github.com/fwojciec/coursecheck"
)

// Ensure Classifier implements coursecheck.Classifier at compile time.
var _ coursecheck.Classifier = (*Classifier)(nil)

// DefaultKeywords signal a question about the whole set of courses.
var DefaultKeywords = []string{
	"which", "what", "accepted", "approved", "credited",
	"count", "shared", "overlap", "list", "courses",
}

// DefaultListMarkers signal list-oriented phrasing that a query naming a
// single course rarely uses.
var DefaultListMarkers = []string{"courses", "list"}

// DefaultMaxSpecificTokens is the longest query still treated as naming one course.
const DefaultMaxSpecificTokens = 15

// Classifier is a rule-based intent classifier. Keywords and markers match
// as substrings of the case-folded query.
type Classifier struct {
	Keywords          []string
	ListMarkers       []string
	MaxSpecificTokens int
}

// NewClassifier creates a Classifier with the default keyword lists.
func NewClassifier() *Classifier {
	return &Classifier{
		Keywords:          DefaultKeywords,
		ListMarkers:       DefaultListMarkers,
		MaxSpecificTokens: DefaultMaxSpecificTokens,
	}
}

// Classify returns IntentEnumerate when the query uses aggregate phrasing and
// does not look like it names a specific course, IntentLookup otherwise.
func (c *Classifier) Classify(query string) coursecheck.Intent {
	q := strings.ToLower(query)
	if containsAny(q, c.Keywords) && !c.looksSpecific(q) {
		return coursecheck.IntentEnumerate
	}
	return coursecheck.IntentLookup
}

// looksSpecific reports whether a folded query is short and free of list markers.
func (c *Classifier) looksSpecific(q string) bool {
	return !containsAny(q, c.ListMarkers) && len(strings.Fields(q)) <= c.MaxSpecificTokens
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
