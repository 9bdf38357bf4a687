package simd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixset/pkg/radixset/simd"
)

func TestFindKeyIndex(t *testing.T) {
	keys := [16]byte{'a', 'c', 'e', 'g', 'i'}

	assert.Equal(t, 0, simd.FindKeyIndex(&keys, 5, 'a'))
	assert.Equal(t, 2, simd.FindKeyIndex(&keys, 5, 'e'))
	assert.Equal(t, 4, simd.FindKeyIndex(&keys, 5, 'i'))
	assert.Equal(t, -1, simd.FindKeyIndex(&keys, 5, 'b'))

	// A zero byte placed past n must not be mistaken for a match on 0.
	var sparse [16]byte
	sparse[0] = 'x'
	assert.Equal(t, -1, simd.FindKeyIndex(&sparse, 1, 0))
}

func TestFindKeyIndexFullNode(t *testing.T) {
	var keys [16]byte
	for i := range keys {
		keys[i] = byte('a' + i)
	}

	for i := range keys {
		assert.Equal(t, i, simd.FindKeyIndex(&keys, 16, keys[i]))
	}
	assert.Equal(t, -1, simd.FindKeyIndex(&keys, 16, 'z'))
}

func TestFindInsertPosition(t *testing.T) {
	keys := [16]byte{'b', 'd', 'f'}

	assert.Equal(t, 0, simd.FindInsertPosition(&keys, 3, 'a'))
	assert.Equal(t, 1, simd.FindInsertPosition(&keys, 3, 'c'))
	assert.Equal(t, 3, simd.FindInsertPosition(&keys, 3, 'z'))
}
