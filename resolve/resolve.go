// Package resolve answers queries by classifying their intent and running
// the matching cross-listing operation over a catalog snapshot.
package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/coursecheck"
)

// Ensure Resolver implements coursecheck.Resolver at compile time.
var _ coursecheck.Resolver = (*Resolver)(nil)

// Resolver composes a Classifier and a Matcher.
type Resolver struct {
	Classifier coursecheck.Classifier
	Matcher    coursecheck.Matcher

	// Threshold is applied to every comparison of a request.
	Threshold int
}

// NewResolver creates a Resolver with coursecheck.DefaultThreshold.
func NewResolver(classifier coursecheck.Classifier, matcher coursecheck.Matcher) *Resolver {
	return &Resolver{
		Classifier: classifier,
		Matcher:    matcher,
		Threshold:  coursecheck.DefaultThreshold,
	}
}

// Resolve classifies the query and returns either the accepted courses or a
// verdict for the named course.
func (r *Resolver) Resolve(_ context.Context, snapshot *coursecheck.Snapshot, query string) (*coursecheck.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "query required")
	}
	if err := coursecheck.ValidateThreshold(r.Threshold); err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.ProgramA == nil || snapshot.ProgramB == nil {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "catalog snapshot requires both programs")
	}

	answer := &coursecheck.Answer{
		Query:     query,
		Intent:    r.Classifier.Classify(query),
		Threshold: r.Threshold,
		ProgramA:  snapshot.ProgramA.Name,
		ProgramB:  snapshot.ProgramB.Name,
	}

	a, b := snapshot.ProgramA.Courses, snapshot.ProgramB.Courses
	switch answer.Intent {
	case coursecheck.IntentEnumerate:
		answer.Accepted = r.Matcher.Enumerate(a, b, r.Threshold)
	default:
		verdict := r.Matcher.Lookup(a, b, query, r.Threshold)
		answer.Verdict = &verdict
	}
	return answer, nil
}

// Report builds the full cross-listing table for the snapshot.
func (r *Resolver) Report(snapshot *coursecheck.Snapshot) (*coursecheck.Report, error) {
	if err := coursecheck.ValidateThreshold(r.Threshold); err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.ProgramA == nil || snapshot.ProgramB == nil {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "catalog snapshot requires both programs")
	}
	return &coursecheck.Report{
		ProgramA:  snapshot.ProgramA.Name,
		ProgramB:  snapshot.ProgramB.Name,
		Threshold: r.Threshold,
		Entries:   r.Matcher.Enumerate(snapshot.ProgramA.Courses, snapshot.ProgramB.Courses, r.Threshold),
	}, nil
}
