package tree

import "github.com/flier/radixset/pkg/radixset/node"

// Search walks root looking for key, descending through path-compressed
// prefixes and child lookups until it lands on a leaf or runs out of
// tree.
func Search(root node.Ref, key []byte) bool {
	cur := root
	depth := 0

	for !cur.Empty() {
		if cur.IsLeaf() {
			return cur.AsLeaf().Matches(key)
		}

		n := cur.AsNode()

		if prefix := n.Prefix(); len(prefix) > 0 {
			if matchPrefix(prefix, key, depth) != len(prefix) {
				return false
			}
			depth += len(prefix)
		}

		// The queried key ended exactly at this node's boundary: it is
		// a strict prefix of whatever is stored below, so there is no
		// byte left to branch on and no leaf sitting at this depth.
		if depth >= len(key) {
			return false
		}

		child := n.FindChild(key[depth])
		if child == nil {
			return false
		}

		cur = *child
		depth++
	}

	return false
}
