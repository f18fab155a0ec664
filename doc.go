// Package binheap implements a generic priority queue backed by a binary heap.
//
// The heap is an implicit binary tree stored in a contiguous buffer: the
// parent of index i sits at (i-1)/2 and its children at 2i+1 and 2i+2. The
// ordering is supplied by the caller as a comparison function returning a
// negative, zero or positive int, and the heap is either a max-heap (the
// root is the greatest value) or a min-heap (the root is the least).
//
// Key features:
//   - Generic over any value type with a caller supplied ordering
//   - O(log n) Push and Pop, O(1) Peek
//   - Geometric buffer growth (capacity doubles when full, starting at 5)
//   - Optional structured logging and statistics through functional options
//
// Basic usage:
//
//	h, err := binheap.NewMax(binheap.Natural[int])
//	if err != nil {
//	    return err
//	}
//
//	h.Push(5)
//	h.Push(9)
//	h.Push(3)
//
//	top, _ := h.Peek() // 9
//
//	for v := range h.Drain() {
//	    fmt.Println(v) // 9, 5, 3
//	}
//
// Peek and Pop return ErrUnderflow on an empty heap and leave it untouched.
// Pushing an absent value (a nil pointer, interface, map, slice, channel or
// func) is a no-op. Zero values of other types are ordinary values.
//
// A BinaryHeap performs no synchronization; callers sharing one between
// goroutines must serialize access.
package binheap
