package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixset/pkg/arena"
	"github.com/flier/radixset/pkg/radixset/node"
)

func TestSearchEmptyTree(t *testing.T) {
	var root node.Ref
	assert.False(t, Search(root, []byte("anything")))
	assert.False(t, Search(root, nil))
}

func TestSearchSingleLeaf(t *testing.T) {
	a := new(arena.Arena)
	var root node.Ref
	RecursiveInsert(a, &root, []byte("only"), 0)

	assert.True(t, Search(root, []byte("only")))
	assert.False(t, Search(root, []byte("other")))
	assert.False(t, Search(root, []byte("on")))
}

func TestSearchAfterManyInserts(t *testing.T) {
	a := new(arena.Arena)
	var root node.Ref

	// None of these keys is a strict prefix of another: the tree has no
	// leaf slot to terminate at mid-prefix, so that case is unsupported
	// (see byteAt) and is exercised separately, not mixed in here.
	keys := []string{"appleX", "applesauceX", "applicationX", "applyX", "bananaX", "bandX", "bandananX"}
	for _, k := range keys {
		RecursiveInsert(a, &root, []byte(k), 0)
	}

	for _, k := range keys {
		assert.True(t, Search(root, []byte(k)), "expected %q present", k)
	}

	for _, miss := range []string{"ap", "a", "ban", "bandit", "appl"} {
		assert.False(t, Search(root, []byte(miss)), "expected %q absent", miss)
	}
}
