package coursecheck

import "context"

// Answer is the resolved response to one query.
type Answer struct {
	Query     string `json:"query"`
	Intent    Intent `json:"intent"`
	Threshold int    `json:"threshold"`

	// ProgramA and ProgramB are the catalog names used in messages.
	ProgramA string `json:"programA"`
	ProgramB string `json:"programB"`

	// Accepted is set for IntentEnumerate.
	Accepted []CrossListing `json:"accepted,omitempty"`

	// Verdict is set for IntentLookup.
	Verdict *Verdict `json:"verdict,omitempty"`
}

// Resolver answers a free-text query against a catalog snapshot.
type Resolver interface {
	// Resolve classifies the query and runs the matching operation.
	// Returns EINVALID for an empty query.
	Resolve(ctx context.Context, snapshot *Snapshot, query string) (*Answer, error)
}
