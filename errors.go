package binheap

import "errors"

var (
	// ErrUnderflow is returned by Peek and Pop on an empty heap.
	ErrUnderflow = errors.New("binheap: heap is empty")

	// ErrInvalidArgument is returned by New for an unusable configuration.
	ErrInvalidArgument = errors.New("binheap: invalid argument")
)
