package node

import (
	"github.com/flier/radixset/internal/debug"
	"github.com/flier/radixset/pkg/arena"
	"github.com/flier/radixset/pkg/radixset/simd"
)

// mediumCap is the maximum number of children a Medium node holds
// before it must grow into a Large.
const mediumCap = 16

// Medium holds up to sixteen children in parallel, sorted arrays, the
// same layout as Small but searched with a word-parallel compare
// instead of a plain linear scan.
type Medium struct {
	header
	keys     [mediumCap]byte
	children [mediumCap]Ref
}

var _ Node = (*Medium)(nil)

// NewMedium allocates an empty Medium node.
func NewMedium(a arena.Allocator) *Medium {
	return arena.New(a, Medium{header: header{typ: TypeMedium}})
}

func (n *Medium) Ref() Ref { return NodeRef(n) }

func (n *Medium) Full() bool { return int(n.numChildren) == mediumCap }

// FindChild compares b against all sixteen key slots in one pass,
// masked by NumChildren; since keys are kept sorted, at most one can
// match.
func (n *Medium) FindChild(b byte) *Ref {
	idx := simd.FindKeyIndex(&n.keys, int(n.numChildren), b)
	if idx < 0 {
		return nil
	}

	return &n.children[idx]
}

// AddChild inserts a new child in sorted order. The caller must ensure
// the node is not Full.
func (n *Medium) AddChild(b byte, child Ref) {
	debug.Assert(!n.Full(), "node must not be full")

	i := simd.FindInsertPosition(&n.keys, int(n.numChildren), b)

	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])

	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

// Grow promotes this node to a Large, preserving header and children.
func (n *Medium) Grow(a arena.Allocator) *Large {
	l := NewLarge(a)
	l.header = n.header
	l.header.typ = TypeLarge

	copy(l.children[:n.numChildren], n.children[:n.numChildren])
	for i := 0; i < int(n.numChildren); i++ {
		l.keys[n.keys[i]] = uint8(i + 1)
	}

	return l
}

func (n *Medium) Minimum() *Leaf {
	if n.numChildren == 0 {
		return nil
	}

	return minimumOf(n.children[0])
}

func (n *Medium) Maximum() *Leaf {
	if n.numChildren == 0 {
		return nil
	}

	return maximumOf(n.children[n.numChildren-1])
}
