// Package arena provides a small bump-pointer allocator used by the radix
// tree to batch-allocate its nodes and leaves.
//
// Arena allocation trades individual frees for a single bulk release: the
// tree allocates every node and leaf from one Arena, and Reset drops the
// whole structure in one step instead of walking it node by node. This
// keeps related nodes close together in memory, which matters for a
// pointer-chasing structure like a radix tree, and it sidesteps Go's GC
// doing per-node bookkeeping for a data structure whose nodes are, by
// construction, never individually freed.
//
// A zero Arena is empty and ready to use.
package arena

// blockSize is the size, in bytes, of each block the Arena grows by. It is
// large enough that none of the tree's node types span more than one
// block.
const blockSize = 32 * 1024

// Allocator is the interface the radix tree uses to obtain node storage.
// It is implemented by *Arena; tests may substitute a counting allocator
// to assert that Destroy releases everything it allocated.
type Allocator interface {
	// Alloc returns size bytes of zeroed memory, valid until the
	// allocator is reset.
	Alloc(size int) []byte
}

// Arena is a growable sequence of blocks that hands out memory with a
// bump pointer. It never frees individual allocations; call Reset to
// release everything at once.
type Arena struct {
	blocks [][]byte
	cur    []byte // remaining space in the active block
	live   int    // bytes currently handed out, for accounting/tests
}

var _ Allocator = (*Arena)(nil)

// Alloc returns size bytes of zeroed memory from the arena.
func (a *Arena) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}

	if size > len(a.cur) {
		n := blockSize
		if size > n {
			n = size
		}

		block := make([]byte, n)
		a.blocks = append(a.blocks, block)
		a.cur = block
	}

	p := a.cur[:size:size]
	a.cur = a.cur[size:]
	a.live += size

	return p
}

// Live reports how many bytes have been handed out since the last Reset.
// It exists so tests can assert that Destroy leaves no live allocations.
func (a *Arena) Live() int { return a.live }

// Reset releases every block the arena holds. Any pointer obtained from
// Alloc before the reset must not be used afterward.
func (a *Arena) Reset() {
	a.blocks = nil
	a.cur = nil
	a.live = 0
}

// New allocates space for a value of type T in the arena, copies value
// into it, and returns a pointer to the new location.
func New[T any](a Allocator, value T) *T {
	p := alloc[T](a)
	*p = value
	return p
}
