package mock

import (
	"context"

	"github.com/fwojciec/coursecheck"
)

var _ coursecheck.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of coursecheck.Classifier.
type Classifier struct {
	ClassifyFn func(query string) coursecheck.Intent
}

func (c *Classifier) Classify(query string) coursecheck.Intent {
	return c.ClassifyFn(query)
}

var _ coursecheck.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of coursecheck.Matcher.
type Matcher struct {
	EnumerateFn func(programA, programB []*coursecheck.Course, threshold int) []coursecheck.CrossListing
	LookupFn    func(programA, programB []*coursecheck.Course, query string, threshold int) coursecheck.Verdict
}

func (m *Matcher) Enumerate(programA, programB []*coursecheck.Course, threshold int) []coursecheck.CrossListing {
	return m.EnumerateFn(programA, programB, threshold)
}

func (m *Matcher) Lookup(programA, programB []*coursecheck.Course, query string, threshold int) coursecheck.Verdict {
	return m.LookupFn(programA, programB, query, threshold)
}

var _ coursecheck.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of coursecheck.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, snapshot *coursecheck.Snapshot, query string) (*coursecheck.Answer, error)
}

func (r *Resolver) Resolve(ctx context.Context, snapshot *coursecheck.Snapshot, query string) (*coursecheck.Answer, error) {
	return r.ResolveFn(ctx, snapshot, query)
}
