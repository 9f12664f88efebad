// Package bloom narrows match candidates to courses sharing a word with the
// probe text, using one Bloom filter per course.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter holding the words of one course.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected words
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a word to the filter.
func (f *Filter) Add(word string) {
	f.f.AddString(word)
}

// TestAny returns true if any of the words might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) TestAny(words []string) bool {
	for _, w := range words {
		if f.f.TestString(w) {
			return true
		}
	}
	return false
}
