package tree

import (
	"github.com/flier/radixset/pkg/arena"
	"github.com/flier/radixset/pkg/radixset/node"
)

// RecursiveInsert inserts key into the subtree rooted at *ref, growing
// and splitting nodes as needed. It reports whether key was newly
// inserted; a key already present is left untouched and reports false,
// per the set semantics described at [package radixset].
//
// depth is how many bytes of key have already been consumed by the
// path from the tree root down to *ref.
func RecursiveInsert(a arena.Allocator, ref *node.Ref, key []byte, depth int) bool {
	switch {
	case ref.Empty():
		return insertIntoEmpty(a, ref, key)
	case ref.IsLeaf():
		return insertIntoLeaf(a, ref, key, depth)
	default:
		return insertIntoNode(a, ref, key, depth)
	}
}

// insertIntoEmpty fills a nil slot with a fresh leaf. This is how lazy
// expansion works: no intermediate nodes are created until a second key
// forces a disambiguation.
func insertIntoEmpty(a arena.Allocator, ref *node.Ref, key []byte) bool {
	*ref = node.NewLeaf(a, key).Ref()
	return true
}

// insertIntoLeaf handles a slot that currently holds a single leaf. If
// key is already that leaf's key, this is a duplicate and is a no-op.
// Otherwise the leaf is replaced by one or more Small nodes carrying
// the common prefix of the two keys, with both leaves as children of
// the last one.
func insertIntoLeaf(a arena.Allocator, ref *node.Ref, key []byte, depth int) bool {
	cur := ref.AsLeaf()
	if cur.Matches(key) {
		return false
	}

	newLeaf := node.NewLeaf(a, key)

	lcp := cur.LongestCommonPrefix(newLeaf, depth)

	*ref = splitPrefixChain(a, key, depth, lcp, cur, newLeaf)
	return true
}

// splitPrefixChain builds the Small node (or, when the shared prefix
// is longer than a single node's partial field can hold, the chain of
// Small nodes) standing between depth and depth+lcp, then branches
// leafA and leafB apart at the first byte past the shared prefix. It
// returns a Ref to the head of the chain, to be installed in the
// caller's slot.
//
// A single node can only record [node.MaxPrefixLen] bytes of path
// compression, so when lcp exceeds that, the excess shared bytes must
// still appear somewhere on the path: each additional node consumes
// another MaxPrefixLen bytes as its own partial plus one more byte as
// the single branching byte down to the next node in the chain, per
// spec.md §8 invariant 6.
func splitPrefixChain(a arena.Allocator, key []byte, depth, lcp int, leafA, leafB *node.Leaf) node.Ref {
	head := node.NewSmall(a)
	cur := head

	pos := depth
	remaining := lcp

	for remaining > node.MaxPrefixLen {
		cur.SetPrefix(key[pos : pos+node.MaxPrefixLen])
		pos += node.MaxPrefixLen
		remaining -= node.MaxPrefixLen

		next := node.NewSmall(a)
		cur.AddChild(key[pos], next.Ref())
		pos++
		remaining--

		cur = next
	}

	cur.SetPrefix(key[pos : pos+remaining])

	cur.AddChild(byteAt(leafA.Key(), depth+lcp), leafA.Ref())
	cur.AddChild(byteAt(leafB.Key(), depth+lcp), leafB.Ref())

	return head.Ref()
}

// insertIntoNode handles a slot that holds an inner node. Its
// path-compressed prefix is checked against key first: a mismatch
// splits the node at the point of disagreement, a full match lets the
// insert recurse into (or attach a new leaf under) the matching child.
func insertIntoNode(a arena.Allocator, ref *node.Ref, key []byte, depth int) bool {
	n := ref.AsNode()

	if prefix := n.Prefix(); len(prefix) > 0 {
		d := matchPrefix(prefix, key, depth)
		if d < len(prefix) {
			splitNodePrefix(a, ref, n, key, depth, d)
			return true
		}
		depth += len(prefix)
	}

	b := byteAt(key, depth)

	if child := n.FindChild(b); child != nil {
		return RecursiveInsert(a, child, key, depth+1)
	}

	leaf := node.NewLeaf(a, key)
	addChild(a, ref, n, b, leaf.Ref())
	return true
}

// splitNodePrefix handles the case where key disagrees with n's
// compressed prefix before the prefix ends. A new Small node is
// inserted in n's place, carrying the bytes the two paths still agree
// on; n keeps the tail of its old prefix past the mismatch, and a new
// leaf for key is added alongside it.
func splitNodePrefix(a arena.Allocator, ref *node.Ref, n node.Node, key []byte, depth, d int) {
	prefix := n.Prefix()

	split := node.NewSmall(a)
	split.SetPrefix(prefix[:d])

	split.AddChild(prefix[d], n.Ref())
	n.SetPrefix(prefix[d+1:])

	leaf := node.NewLeaf(a, key)
	split.AddChild(byteAt(key, depth+d), leaf.Ref())

	*ref = split.Ref()
}

// addChild attaches child under byte b in n, growing n into the next
// larger variant first if it is full. *ref is updated in place when
// growth replaces n with a new node.
func addChild(a arena.Allocator, ref *node.Ref, n node.Node, b byte, child node.Ref) {
	switch v := n.(type) {
	case *node.Small:
		if v.Full() {
			grown := v.Grow(a)
			grown.AddChild(b, child)
			*ref = grown.Ref()
			return
		}
		v.AddChild(b, child)

	case *node.Medium:
		if v.Full() {
			grown := v.Grow(a)
			grown.AddChild(b, child)
			*ref = grown.Ref()
			return
		}
		v.AddChild(b, child)

	case *node.Large:
		// Large has no further variant to grow into; AddChild panics
		// if asked to hold a 37th child.
		v.AddChild(b, child)

	default:
		panic("tree: unknown node type")
	}
}
