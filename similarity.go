package coursecheck

// Scorer computes a similarity score in [0, 100] between two texts.
// Implementations must be symmetric, case-insensitive and return 100 for
// identical non-empty inputs.
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(a, b string) int

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) int {
	return f(a, b)
}

// Similar reports whether a and b score at or above threshold.
func Similar(s Scorer, a, b string, threshold int) bool {
	return s.Score(a, b) >= threshold
}
