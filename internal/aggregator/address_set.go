package aggregator

import (
	"sort"
	"sync"

	"github.com/aleister1102/ipfresh/internal/extractor"
)

// AddressSet accumulates extracted addresses across all sources within one
// run, keyed by the 32-bit integer value so numeric and string-level
// duplicates collapse to a single entry. It is safe for concurrent use.
type AddressSet struct {
	mu        sync.Mutex
	addresses map[uint32]string
}

// NewAddressSet creates an empty address set
func NewAddressSet() *AddressSet {
	return &AddressSet{
		addresses: make(map[uint32]string),
	}
}

// Add inserts a candidate into the set. Re-adding the same address is a no-op,
// so merging is idempotent and commutative across worker completion order.
func (as *AddressSet) Add(candidate extractor.Candidate) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.addresses[candidate.Value] = candidate.Text
}

// AddAll inserts all candidates under a single lock acquisition
func (as *AddressSet) AddAll(candidates []extractor.Candidate) {
	as.mu.Lock()
	defer as.mu.Unlock()
	for _, candidate := range candidates {
		as.addresses[candidate.Value] = candidate.Text
	}
}

// Len returns the number of distinct addresses in the set
func (as *AddressSet) Len() int {
	as.mu.Lock()
	defer as.mu.Unlock()
	return len(as.addresses)
}

// Finalize returns the addresses in strictly ascending numeric order,
// independent of discovery or source order. Lexicographic string ordering
// would misplace entries ("10.0.0.1" before "2.2.2.2"), so sorting is done
// on the integer keys.
func (as *AddressSet) Finalize() []string {
	as.mu.Lock()
	defer as.mu.Unlock()

	keys := make([]uint32, 0, len(as.addresses))
	for key := range as.addresses {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	ordered := make([]string, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, as.addresses[key])
	}
	return ordered
}
