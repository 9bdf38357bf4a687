package node

import (
	"bytes"
	"unsafe"

	"github.com/flier/radixset/internal/debug"
	"github.com/flier/radixset/pkg/arena"
)

// Leaf is a terminal node: it owns one stored key and has no children.
// The tree copies the key bytes into arena-owned storage, so a Leaf
// never retains the caller's buffer.
type Leaf struct {
	key []byte
}

// NewLeaf allocates a leaf holding a copy of key.
func NewLeaf(a arena.Allocator, key []byte) *Leaf {
	debug.Assert(a != nil, "arena must not be nil")

	// Round the key buffer up to pointer alignment so the Leaf allocated
	// right after it, and every later allocation, keeps its low bit free
	// for the leaf tag.
	const align = int(unsafe.Sizeof(uintptr(0)))
	size := (len(key) + align - 1) &^ (align - 1)

	buf := a.Alloc(size)[:len(key)]
	copy(buf, key)

	return arena.New(a, Leaf{key: buf})
}

// Key returns the leaf's stored key.
func (l *Leaf) Key() []byte { return l.key }

// Ref tags this leaf for storage in a child slot.
func (l *Leaf) Ref() Ref { return LeafRef(l) }

// Matches reports whether key is exactly the key stored in this leaf.
func (l *Leaf) Matches(key []byte) bool {
	return len(l.key) == len(key) && bytes.Equal(l.key, key)
}

// LongestCommonPrefix returns how many bytes, starting at depth,
// l and other agree on before the first mismatch or either key ends.
func (l *Leaf) LongestCommonPrefix(other *Leaf, depth int) int {
	max := min(len(l.key), len(other.key))

	i := depth
	for i < max && l.key[i] == other.key[i] {
		i++
	}

	return i - depth
}
