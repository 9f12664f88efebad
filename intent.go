package coursecheck

// Intent is the kind of answer a query asks for.
type Intent int

// Intent constants.
const (
	// IntentLookup asks for a verdict on one named course.
	IntentLookup Intent = iota

	// IntentEnumerate asks for the full set of accepted courses.
	IntentEnumerate
)

// String returns the intent name used in logs and output.
func (i Intent) String() string {
	switch i {
	case IntentEnumerate:
		return "enumerate"
	case IntentLookup:
		return "lookup"
	}
	return "unknown"
}

// Classifier derives an intent from query text.
type Classifier interface {
	// Classify returns the intent of a non-empty query. It is a pure function
	// of its input and never fails.
	Classify(query string) Intent
}
