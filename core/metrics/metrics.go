package metrics

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
	Histogram
)

// Metric describes a registered metric.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue is the running state of one label set of a metric. Value is
// the counter total, the last gauge reading, or the histogram sum; Count is
// the number of observations folded into it.
type MetricValue struct {
	Value     float64
	Count     int
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. It is safe for concurrent use so that
// several heaps can report into one registry.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]*MetricValue // name -> label key -> value
	now     func() time.Time
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]*MetricValue),
		now:     time.Now,
	}
}

// Register adds metric to the registry. Registering a name twice keeps the
// first definition and its recorded values.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[metric.Name]; ok {
		return
	}
	r.metrics[metric.Name] = metric
}

// RecordCounter adds value to the counter for labels. Unknown names and
// non-counter metrics are ignored.
func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.record(name, Counter, value, labels)
}

// RecordGauge replaces the gauge reading for labels.
func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.record(name, Gauge, value, labels)
}

// RecordHistogram adds an observation to the histogram for labels.
func (r *Registry) RecordHistogram(name string, value float64, labels map[string]string) {
	r.record(name, Histogram, value, labels)
}

func (r *Registry) record(name string, typ MetricType, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[name]
	if !ok || metric.Type != typ {
		return
	}

	series, ok := r.values[name]
	if !ok {
		series = make(map[string]*MetricValue)
		r.values[name] = series
	}

	key := labelKey(labels)
	v, ok := series[key]
	if !ok {
		v = &MetricValue{Labels: maps.Clone(labels)}
		series[key] = v
	}

	if typ == Gauge {
		v.Value = value
	} else {
		v.Value += value
	}
	v.Count++
	v.Timestamp = r.now()
}

// Sum adds up the values of name over every label set containing all of match.
func (r *Registry) Sum(name string, match map[string]string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		if matches(v.Labels, match) {
			total += v.Value
		}
	}
	return total
}

// Count adds up the observation counts of name over every label set
// containing all of match.
func (r *Registry) Count(name string, match map[string]string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int
	for _, v := range r.values[name] {
		if matches(v.Labels, match) {
			total += v.Count
		}
	}
	return total
}

// GetMetrics returns a copy of every label set's value keyed by metric name.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue, len(r.values))
	for name, series := range r.values {
		for _, key := range slices.Sorted(maps.Keys(series)) {
			v := *series[key]
			v.Labels = maps.Clone(v.Labels)
			result[name] = append(result[name], v)
		}
	}
	return result
}

// labelKey renders labels in a canonical order.
func labelKey(labels map[string]string) string {
	var sb strings.Builder
	for _, k := range slices.Sorted(maps.Keys(labels)) {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(labels[k])
		sb.WriteByte(0)
	}
	return sb.String()
}

func matches(labels, match map[string]string) bool {
	for k, want := range match {
		if labels[k] != want {
			return false
		}
	}
	return true
}
