// Package tree implements the recursive search and insert algorithms
// that walk the node types in package node. It is split out from the
// public radixset package so the recursive helpers can take the
// *node.Ref plumbing they need without leaking it into the Tree API.
package tree

// matchPrefix returns the number of leading bytes that prefix and
// key[depth:] agree on, stopping at whichever is shorter.
//
// Both the search-side prefix check and the insert-side
// prefix-mismatch computation are this same scan; the reference
// implementation this tree is modeled on uses one function for both,
// and there is no reason to duplicate it here.
func matchPrefix(prefix []byte, key []byte, depth int) int {
	maxCmp := len(prefix)
	if rem := len(key) - depth; rem < maxCmp {
		maxCmp = rem
	}
	if maxCmp < 0 {
		maxCmp = 0
	}

	i := 0
	for i < maxCmp && prefix[i] == key[depth+i] {
		i++
	}

	return i
}

// byteAt returns key[i], panicking instead of indexing out of bounds
// when i has reached the end of key.
//
// That only happens when key is a strict prefix of another key
// already in the tree (or vice versa): lazy expansion has no leaf slot
// to terminate at mid-prefix, so, like the reference this tree is
// modeled on, such keys are not supported. Panicking here turns what
// would otherwise be a silent out-of-bounds read into a clear signal
// at the call site that inserted such a pair.
func byteAt(key []byte, i int) byte {
	if i >= len(key) {
		panic("radixset: key is a prefix of another key already in the tree, which is not supported")
	}

	return key[i]
}
