package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixset/pkg/arena"
	"github.com/flier/radixset/pkg/radixset/node"
)

func TestLargeAddChildAndFindChild(t *testing.T) {
	a := new(arena.Arena)
	n := node.NewLarge(a)

	refs := make(map[byte]node.Ref)
	for i := 0; i < 36; i++ {
		b := byte(i)
		r := node.NewLeaf(a, []byte{b}).Ref()
		n.AddChild(b, r)
		refs[b] = r
	}

	assert.True(t, n.Full())

	for b, r := range refs {
		got := n.FindChild(b)
		if assert.NotNil(t, got) {
			assert.Equal(t, r, *got)
		}
	}
	assert.Nil(t, n.FindChild(200))
}

func TestLargeAddChildPanicsWhenFull(t *testing.T) {
	a := new(arena.Arena)
	n := node.NewLarge(a)

	for i := 0; i < 36; i++ {
		b := byte(i)
		n.AddChild(b, node.NewLeaf(a, []byte{b}).Ref())
	}

	assert.Panics(t, func() {
		n.AddChild(200, node.NewLeaf(a, []byte{200}).Ref())
	})
}

func TestLargeMinimumMaximum(t *testing.T) {
	a := new(arena.Arena)
	n := node.NewLarge(a)

	lo := node.NewLeaf(a, []byte{1})
	hi := node.NewLeaf(a, []byte{250})

	n.AddChild(1, lo.Ref())
	n.AddChild(250, hi.Ref())

	assert.Same(t, lo, n.Minimum())
	assert.Same(t, hi, n.Maximum())
}
