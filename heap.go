package binheap

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/davidvella/binheap/core/monitoring"
)

// BinaryHeap is a priority queue stored as an implicit binary tree in a
// growable buffer. The parent of index i is (i-1)/2 and its children are
// 2i+1 and 2i+2.
//
// A BinaryHeap is not safe for concurrent use.
type BinaryHeap[T any] struct {
	buf   []T // len(buf) is the capacity; only buf[:count] is live
	count int
	isMax bool
	order func(a, b T) int

	// nillable is false when no value of T can be absent, so Push skips the check.
	nillable bool

	logger monitoring.Logger
	stats  monitoring.Stats
	labels map[string]string
}

// New creates an empty heap ordered by order. With isMax the root holds the
// greatest value under order, otherwise the least.
func New[T any](order func(a, b T) int, isMax bool, opts ...Option) (*BinaryHeap[T], error) {
	if order == nil {
		return nil, fmt.Errorf("ordering function is nil: %w", ErrInvalidArgument)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.initialCapacity < 1 {
		return nil, fmt.Errorf("initial capacity %d: %w", o.initialCapacity, ErrInvalidArgument)
	}

	orientation := "min"
	if isMax {
		orientation = "max"
	}

	return &BinaryHeap[T]{
		buf:      make([]T, o.initialCapacity),
		isMax:    isMax,
		order:    order,
		nillable: nillable(reflect.TypeFor[T]()),
		logger:   o.logger,
		stats:    o.stats,
		labels:   map[string]string{"order": orientation},
	}, nil
}

// NewMax creates a heap whose root is the greatest value under order.
func NewMax[T any](order func(a, b T) int, opts ...Option) (*BinaryHeap[T], error) {
	return New(order, true, opts...)
}

// NewMin creates a heap whose root is the least value under order.
func NewMin[T any](order func(a, b T) int, opts ...Option) (*BinaryHeap[T], error) {
	return New(order, false, opts...)
}

// Size returns the number of values in the heap.
func (h *BinaryHeap[T]) Size() int {
	return h.count
}

// IsEmpty reports whether the heap holds no values.
func (h *BinaryHeap[T]) IsEmpty() bool {
	return h.count == 0
}

// Cap returns the current buffer capacity.
func (h *BinaryHeap[T]) Cap() int {
	return len(h.buf)
}

// IsMax reports whether the heap is a max-heap.
func (h *BinaryHeap[T]) IsMax() bool {
	return h.isMax
}

// Peek returns the highest priority value without removing it.
func (h *BinaryHeap[T]) Peek() (T, error) {
	if h.count == 0 {
		var zero T
		h.underflow("peek")
		return zero, ErrUnderflow
	}
	return h.buf[0], nil
}

// Push adds v to the heap. Absent values (nil pointers, interfaces, maps,
// slices, channels and funcs) are ignored.
func (h *BinaryHeap[T]) Push(v T) {
	if h.nillable && isAbsent(v) {
		h.logger.Log(monitoring.DEBUG, "push_ignored", "absent value ignored", map[string]interface{}{
			"size": h.count,
		})
		return
	}

	if h.count == len(h.buf) {
		h.grow()
	}

	h.buf[h.count] = v
	h.count++
	swaps := h.up(h.count - 1)

	h.stats.RecordPush(h.labels)
	h.stats.RecordSift(swaps, h.labels)
	h.stats.SetSize(h.count, h.labels)
}

// Pop removes and returns the highest priority value.
func (h *BinaryHeap[T]) Pop() (T, error) {
	var zero T
	if h.count == 0 {
		h.underflow("pop")
		return zero, ErrUnderflow
	}

	top := h.buf[0]
	last := h.count - 1
	swaps := 0
	if last == 0 {
		h.buf[0] = zero
		h.count--
	} else {
		h.buf[0] = h.buf[last]
		h.buf[last] = zero
		h.count--
		swaps = h.down(0)
	}

	h.stats.RecordPop(h.labels)
	h.stats.RecordSift(swaps, h.labels)
	h.stats.SetSize(h.count, h.labels)
	return top, nil
}

// Drain yields values in priority order, popping each one. Values not yet
// yielded when the loop stops stay in the heap.
func (h *BinaryHeap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.count > 0 {
			v, _ := h.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// compare is positive when a has strictly higher priority than b, zero when
// they tie and negative otherwise.
func (h *BinaryHeap[T]) compare(a, b T) int {
	c := h.order(a, b)
	if h.isMax {
		return c
	}
	// Negate by sign so an order returning math.MinInt cannot overflow.
	switch {
	case c < 0:
		return 1
	case c > 0:
		return -1
	default:
		return 0
	}
}

// grow doubles the buffer, keeping live values at their indices.
func (h *BinaryHeap[T]) grow() {
	oldCap := len(h.buf)
	buf := make([]T, max(1, h.count)*2)
	copy(buf, h.buf[:h.count])
	h.buf = buf

	h.logger.Log(monitoring.DEBUG, "heap_grow", "buffer grown", map[string]interface{}{
		"old_capacity": oldCap,
		"new_capacity": len(buf),
	})
	h.stats.RecordGrow(len(buf), h.labels)
}

func (h *BinaryHeap[T]) swap(i, j int) {
	h.buf[i], h.buf[j] = h.buf[j], h.buf[i]
}

// up moves the value at index i towards the root while it outranks its
// parent and returns the number of swaps made.
func (h *BinaryHeap[T]) up(i int) int {
	swaps := 0
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.buf[i], h.buf[parent]) <= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
		swaps++
	}
	return swaps
}

// down moves the value at index i towards the leaves while a child strictly
// outranks it. Of two qualifying children the higher one wins, the left on a
// tie. It returns the number of swaps made.
func (h *BinaryHeap[T]) down(i int) int {
	swaps := 0
	for {
		best := i
		left := 2*i + 1
		right := left + 1

		if left < h.count && h.compare(h.buf[left], h.buf[best]) > 0 {
			best = left
		}
		if right < h.count && h.compare(h.buf[right], h.buf[best]) > 0 {
			best = right
		}

		if best == i {
			return swaps
		}

		h.swap(i, best)
		i = best
		swaps++
	}
}

func (h *BinaryHeap[T]) underflow(op string) {
	h.logger.Log(monitoring.DEBUG, "underflow", op+" on empty heap", nil)
	h.stats.RecordUnderflow(h.labels)
}

// nillable reports whether values of type t can be nil.
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}

// isAbsent reports whether v is a nil value of a nillable kind.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
