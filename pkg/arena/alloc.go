package arena

import "unsafe"

// alloc carves out zeroed, correctly sized and aligned space for a T from
// the allocator and returns it as a *T.
//
// size is rounded up so that a subsequent allocation from the same arena
// starts on a pointer-aligned boundary; none of the tree's node or leaf
// types need more than that.
func alloc[T any](a Allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))

	const align = int(unsafe.Sizeof(uintptr(0)))
	if size == 0 {
		size = align
	} else if rem := size % align; rem != 0 {
		size += align - rem
	}

	buf := a.Alloc(size)

	return (*T)(unsafe.Pointer(&buf[0]))
}
