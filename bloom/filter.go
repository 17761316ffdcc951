// Package bloom provides publication number deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for deduplicating publication numbers
// across large citation sets.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a publication number to the filter.
func (f *Filter) Add(number string) {
	f.f.AddString(number)
}

// Test returns true if the number might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(number string) bool {
	return f.f.TestString(number)
}

// TestAndAdd adds the number and reports whether it might have been
// present already.
func (f *Filter) TestAndAdd(number string) bool {
	return f.f.TestAndAddString(number)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
