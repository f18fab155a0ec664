package monitoring

import (
	"github.com/davidvella/binheap/core/metrics"
)

const (
	MetricPushes     = "heap_pushes_total"
	MetricPops       = "heap_pops_total"
	MetricGrows      = "heap_grows_total"
	MetricUnderflows = "heap_underflows_total"
	MetricSize       = "heap_size"
	MetricCapacity   = "heap_capacity"
	MetricSiftSwaps  = "heap_sift_swaps"
)

// Stats records heap activity.
type Stats interface {
	RecordPush(labels map[string]string)
	RecordPop(labels map[string]string)
	RecordGrow(capacity int, labels map[string]string)
	RecordUnderflow(labels map[string]string)
	SetSize(size int, labels map[string]string)
	RecordSift(swaps int, labels map[string]string)
}

// stats collects heap statistics into a registry
type stats struct {
	registry *metrics.Registry
}

func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        MetricPushes,
		Type:        metrics.Counter,
		Description: "Total number of values pushed",
	})

	registry.Register(metrics.Metric{
		Name:        MetricPops,
		Type:        metrics.Counter,
		Description: "Total number of values popped",
	})

	registry.Register(metrics.Metric{
		Name:        MetricGrows,
		Type:        metrics.Counter,
		Description: "Total number of buffer growths",
	})

	registry.Register(metrics.Metric{
		Name:        MetricUnderflows,
		Type:        metrics.Counter,
		Description: "Peek or pop attempts on an empty heap",
	})

	registry.Register(metrics.Metric{
		Name:        MetricSize,
		Type:        metrics.Gauge,
		Description: "Number of live elements",
	})

	registry.Register(metrics.Metric{
		Name:        MetricCapacity,
		Type:        metrics.Gauge,
		Description: "Buffer capacity",
	})

	registry.Register(metrics.Metric{
		Name:        MetricSiftSwaps,
		Type:        metrics.Histogram,
		Description: "Swaps made restoring heap order per push or pop",
	})

	return &stats{registry: registry}
}

func (s *stats) RecordPush(labels map[string]string) {
	s.registry.RecordCounter(MetricPushes, 1, labels)
}

func (s *stats) RecordPop(labels map[string]string) {
	s.registry.RecordCounter(MetricPops, 1, labels)
}

func (s *stats) RecordGrow(capacity int, labels map[string]string) {
	s.registry.RecordCounter(MetricGrows, 1, labels)
	s.registry.RecordGauge(MetricCapacity, float64(capacity), labels)
}

func (s *stats) RecordUnderflow(labels map[string]string) {
	s.registry.RecordCounter(MetricUnderflows, 1, labels)
}

func (s *stats) SetSize(size int, labels map[string]string) {
	s.registry.RecordGauge(MetricSize, float64(size), labels)
}

func (s *stats) RecordSift(swaps int, labels map[string]string) {
	s.registry.RecordHistogram(MetricSiftSwaps, float64(swaps), labels)
}

type nopStats struct{}

// NopStats returns a Stats that records nothing.
func NopStats() Stats { return nopStats{} }

func (nopStats) RecordPush(map[string]string) {}
func (nopStats) RecordPop(map[string]string) {}
func (nopStats) RecordGrow(int, map[string]string) {}
func (nopStats) RecordUnderflow(map[string]string) {}
func (nopStats) SetSize(int, map[string]string) {}
func (nopStats) RecordSift(int, map[string]string) {}
