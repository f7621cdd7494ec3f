package models

import (
	"strconv"
	"sync/atomic"
)

// ID is the identity token of a Node. It correlates a node across edits and
// carries no JSON meaning. The zero ID is never allocated.
type ID uint64

func (id ID) String() string {
	return "n" + strconv.FormatUint(uint64(id), 10)
}

// IDAllocator hands out monotonically increasing identities. IDs are never
// reused for the lifetime of the allocator.
type IDAllocator struct {
	last atomic.Uint64
}

// Next returns a fresh identity.
func (a *IDAllocator) Next() ID {
	return ID(a.last.Add(1))
}

// processIDs is the process-wide allocator. It lives as long as the process.
var processIDs IDAllocator

// NextID allocates an identity from the process-wide allocator.
func NextID() ID {
	return processIDs.Next()
}
