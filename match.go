package coursecheck

// CrossListing maps one program B course to the program A course that
// credits it. Match is nil and Classification empty when nothing matched.
type CrossListing struct {
	Course         *Course `json:"course"`
	Match          *Course `json:"match,omitempty"`
	Classification string  `json:"classification,omitempty"`
}

// VerdictKind is the outcome of looking up a single course.
type VerdictKind int

// VerdictKind constants, in rule priority order.
const (
	VerdictNotFound VerdictKind = iota
	VerdictAccepted
	VerdictAmbiguous
	VerdictOnlyInProgramB
	VerdictOnlyInProgramA
)

// String returns the verdict name used in logs.
func (k VerdictKind) String() string {
	switch k {
	case VerdictAccepted:
		return "accepted"
	case VerdictAmbiguous:
		return "ambiguous"
	case VerdictOnlyInProgramB:
		return "only_in_program_b"
	case VerdictOnlyInProgramA:
		return "only_in_program_a"
	case VerdictNotFound:
		return "not_found"
	}
	return "unknown"
}

// Verdict is the result of a lookup.
type Verdict struct {
	Kind VerdictKind `json:"kind"`

	// Course is the first matching program B course, if any.
	Course *Course `json:"course,omitempty"`

	// Match is the first matching program A course, if any.
	Match *Course `json:"match,omitempty"`

	// Classification is set for VerdictAccepted only.
	Classification string `json:"classification,omitempty"`
}

// Matcher resolves course identity across two catalogs.
// Both operations are pure functions of their inputs.
type Matcher interface {
	// Enumerate returns every program B course that has a program A match,
	// in program B order. Unmatched courses are omitted.
	Enumerate(programA, programB []*Course, threshold int) []CrossListing

	// Lookup returns the verdict for a query naming a single course.
	Lookup(programA, programB []*Course, query string, threshold int) Verdict
}
