// Package bloom provides content deduplication for batch parsing using
// Bloom filters keyed by content hash.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over content hashes so batch runs can skip
// articles whose exact content was already parsed.
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

// Add records a content hash in the filter.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Seen returns true if the hash might have been recorded. False positives
// are possible (an occasional skipped duplicate parse is harmless);
// false negatives are not.
func (f *Filter) Seen(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of recorded hashes.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
