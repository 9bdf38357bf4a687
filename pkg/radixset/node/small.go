package node

import (
	"github.com/flier/radixset/internal/debug"
	"github.com/flier/radixset/pkg/arena"
)

// smallCap is the maximum number of children a Small node holds before
// it must grow into a Medium.
const smallCap = 2

// Small is the smallest inner node variant, holding up to two children
// in parallel, sorted arrays. Every inner node starts life as a Small;
// it is the representation lazy expansion and leaf-splitting produce.
type Small struct {
	header
	keys     [smallCap]byte
	children [smallCap]Ref
}

var _ Node = (*Small)(nil)

// NewSmall allocates an empty Small node.
func NewSmall(a arena.Allocator) *Small {
	return arena.New(a, Small{header: header{typ: TypeSmall}})
}

func (n *Small) Ref() Ref { return NodeRef(n) }

func (n *Small) Full() bool { return int(n.numChildren) == smallCap }

// FindChild linearly scans the occupied keys; with at most two
// entries this beats any indexing scheme.
func (n *Small) FindChild(b byte) *Ref {
	for i := 0; i < int(n.numChildren); i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}

	return nil
}

// AddChild inserts a new child in sorted order. The caller must ensure
// the node is not Full; growth is handled by the tree package, which
// can replace the node in its slot.
func (n *Small) AddChild(b byte, child Ref) {
	debug.Assert(!n.Full(), "node must not be full")

	i := 0
	for ; i < int(n.numChildren); i++ {
		if b < n.keys[i] {
			break
		}
	}

	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])

	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

// Grow promotes this node to a Medium, preserving header and children.
func (n *Small) Grow(a arena.Allocator) *Medium {
	m := NewMedium(a)
	m.header = n.header
	m.header.typ = TypeMedium

	copy(m.keys[:], n.keys[:n.numChildren])
	copy(m.children[:], n.children[:n.numChildren])

	return m
}

func (n *Small) Minimum() *Leaf {
	if n.numChildren == 0 {
		return nil
	}

	return minimumOf(n.children[0])
}

func (n *Small) Maximum() *Leaf {
	if n.numChildren == 0 {
		return nil
	}

	return maximumOf(n.children[n.numChildren-1])
}

func minimumOf(r Ref) *Leaf {
	if r.Empty() {
		return nil
	}
	if r.IsLeaf() {
		return r.AsLeaf()
	}

	return r.AsNode().Minimum()
}

func maximumOf(r Ref) *Leaf {
	if r.Empty() {
		return nil
	}
	if r.IsLeaf() {
		return r.AsLeaf()
	}

	return r.AsNode().Maximum()
}
