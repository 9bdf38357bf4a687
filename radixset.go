// Package radixset implements an adaptive radix tree used as a set of
// byte-string keys: it answers membership queries and records which
// keys have been inserted, but does not associate a value with any of
// them.
//
// Internally it is a path-compressed trie (package
// github.com/flier/radixset/pkg/radixset/node) whose inner nodes adapt
// their child-lookup representation to how many children they
// currently hold, backed by an arena allocator (package
// github.com/flier/radixset/pkg/arena) so a whole tree can be released
// in one step instead of being walked node by node.
package radixset

import (
	"github.com/flier/radixset/internal/debug"
	"github.com/flier/radixset/pkg/arena"
	"github.com/flier/radixset/pkg/radixset/node"
	"github.com/flier/radixset/pkg/radixset/tree"
)

// Tree is a set of byte-string keys backed by an adaptive radix tree.
// The zero value is not usable; construct one with [New].
type Tree struct {
	arena *arena.Arena
	root  node.Ref
}

// New allocates an empty Tree.
func New() *Tree {
	return &Tree{arena: &arena.Arena{}}
}

// Search reports whether key is present in the tree.
func (t *Tree) Search(key []byte) bool {
	found := tree.Search(t.root, key)
	debug.Log(nil, "Search", "key=%q found=%t", key, found)
	return found
}

// Insert adds key to the tree, reporting whether it was newly
// inserted. Inserting a key already present leaves the tree unchanged
// and returns false.
func (t *Tree) Insert(key []byte) bool {
	inserted := tree.RecursiveInsert(t.arena, &t.root, key, 0)
	debug.Log(nil, "Insert", "key=%q inserted=%t", key, inserted)
	return inserted
}

// Len returns the number of bytes the tree's arena currently has live.
// It is a memory diagnostic, not a key count.
func (t *Tree) Len() int {
	return t.arena.Live()
}

// Destroy releases every node and leaf the tree has allocated. The
// Tree is empty and ready for reuse afterward; this is cheaper than
// walking the structure to free it piece by piece, since the arena
// discards whole blocks at once.
func (t *Tree) Destroy() {
	t.arena.Reset()
	t.root = node.Ref(0)
}
