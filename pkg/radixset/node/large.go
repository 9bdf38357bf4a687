package node

import "github.com/flier/radixset/pkg/arena"

// largeCap is the maximum number of children a Large node holds. It is
// the largest representation this tree has: 36 is the hard cap, there
// is no fourth variant to grow into.
const largeCap = 36

// Large holds up to 36 children, addressed through a 256-entry byte
// index: keys[b] is a 1-based slot into children, or 0 if no child is
// associated with byte b. This trades a full 256-wide direct array
// (what a canonical Node256 would use) for a sparser, densely packed
// children array at the cost of one extra indirection per lookup.
type Large struct {
	header
	keys     [256]uint8
	children [largeCap]Ref
}

var _ Node = (*Large)(nil)

// NewLarge allocates an empty Large node.
func NewLarge(a arena.Allocator) *Large {
	return arena.New(a, Large{header: header{typ: TypeLarge}})
}

func (n *Large) Ref() Ref { return NodeRef(n) }

func (n *Large) Full() bool { return int(n.numChildren) == largeCap }

// FindChild consults the 256-entry index directly; this is the fastest
// lookup of the three variants.
func (n *Large) FindChild(b byte) *Ref {
	idx := n.keys[b]
	if idx == 0 {
		return nil
	}

	return &n.children[idx-1]
}

// AddChild stores child in the first free slot and points keys[b] at
// it. The caller must ensure the node is not Full: a 37th distinct
// branching byte has no defined representation in this node, and
// silently scanning past the children array would corrupt memory, so
// this panics rather than doing that.
func (n *Large) AddChild(b byte, child Ref) {
	if n.Full() {
		panic("node: Large node has no room for a 37th child")
	}

	pos := 0
	for n.children[pos] != 0 {
		pos++
	}

	n.children[pos] = child
	n.keys[b] = uint8(pos + 1)
	n.numChildren++
}

func (n *Large) Minimum() *Leaf {
	for b := 0; b < 256; b++ {
		if n.keys[b] != 0 {
			return minimumOf(n.children[n.keys[b]-1])
		}
	}

	return nil
}

func (n *Large) Maximum() *Leaf {
	for b := 255; b >= 0; b-- {
		if n.keys[b] != 0 {
			return maximumOf(n.children[n.keys[b]-1])
		}
	}

	return nil
}
