package object2d

import "math"

// IDAllocator hands out node identities from a monotonically increasing
// counter. Identities start at 1; 0 is never assigned and means "no identity".
//
// The counter is a plain integer (no atomic). Node construction, like the rest
// of object2d, is expected to happen on a single goroutine.
type IDAllocator struct {
	last uint32
}

// defaultIDs backs the package-level NewNode so that identities are unique
// across the whole process unless a caller opts into its own allocator.
var defaultIDs = &IDAllocator{}

// NewIDAllocator returns an allocator whose first identity is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// DefaultIDAllocator returns the process-wide allocator used by NewNode.
func DefaultIDAllocator() *IDAllocator {
	return defaultIDs
}

// Next advances the counter and returns the new identity.
// Panics once 2^32-1 identities have been handed out, since wrapping would
// repeat identities.
func (a *IDAllocator) Next() uint32 {
	if a.last == math.MaxUint32 {
		panic("object2d: node identity counter exhausted")
	}
	a.last++
	return a.last
}

// Last returns the most recently assigned identity, or 0 if none.
func (a *IDAllocator) Last() uint32 {
	return a.last
}

// Reset rewinds the counter so the next identity is 1 again. Nodes created
// before and after a Reset may share identities.
func (a *IDAllocator) Reset() {
	a.last = 0
}

// NewNode creates a node whose identity comes from this allocator.
func (a *IDAllocator) NewNode(opts ...Option) *Node {
	n := &Node{id: a.Next()}
	nodeDefaults(n)
	for _, opt := range opts {
		opt(n)
	}
	return n
}
