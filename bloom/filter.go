// Package bloom provides URL deduplication for the harvest plan using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks which URLs have already been scheduled for fetching.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen marks the URL as scheduled and reports whether it had been seen
// before. False positives are possible (a never-seen URL reported as
// seen); false negatives are not, so a URL is never fetched twice.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
