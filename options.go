package binheap

import (
	"github.com/davidvella/binheap/core/monitoring"
)

// DefaultCapacity is the buffer capacity of a new heap.
const DefaultCapacity = 5

// options defines all configuration options for a heap.
type options struct {
	initialCapacity int
	logger          monitoring.Logger
	stats           monitoring.Stats
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithInitialCapacity sets the capacity of the buffer before the first growth.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithLogger sets the logger that receives growth and underflow events.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats sets where push, pop and growth statistics are recorded.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		initialCapacity: DefaultCapacity,
		logger:          monitoring.NopLogger(),
		stats:           monitoring.NopStats(),
	}
}
