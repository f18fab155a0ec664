package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/binheap/core/metrics"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name   string
		record func(r *metrics.Registry)
		metric string
		match  map[string]string
		want   float64
	}{
		{
			name: "counter accumulates",
			record: func(r *metrics.Registry) {
				r.RecordCounter("pushes", 1, nil)
				r.RecordCounter("pushes", 2, nil)
			},
			metric: "pushes",
			want:   3,
		},
		{
			name: "gauge keeps last value",
			record: func(r *metrics.Registry) {
				r.RecordGauge("size", 4, nil)
				r.RecordGauge("size", 7, nil)
			},
			metric: "size",
			want:   7,
		},
		{
			name: "histogram sums observations",
			record: func(r *metrics.Registry) {
				r.RecordHistogram("swaps", 1.5, nil)
				r.RecordHistogram("swaps", 2.5, nil)
			},
			metric: "swaps",
			want:   4,
		},
		{
			name: "type mismatch ignored",
			record: func(r *metrics.Registry) {
				r.RecordGauge("pushes", 10, nil)
				r.RecordCounter("size", 10, nil)
			},
			metric: "pushes",
			want:   0,
		},
		{
			name: "unknown metric ignored",
			record: func(r *metrics.Registry) {
				r.RecordCounter("missing", 1, nil)
			},
			metric: "missing",
			want:   0,
		},
		{
			name: "labels filter sum",
			record: func(r *metrics.Registry) {
				r.RecordCounter("pushes", 1, map[string]string{"order": "max"})
				r.RecordCounter("pushes", 1, map[string]string{"order": "min"})
				r.RecordCounter("pushes", 1, map[string]string{"order": "max"})
			},
			metric: "pushes",
			match:  map[string]string{"order": "max"},
			want:   2,
		},
		{
			name: "gauge per label set",
			record: func(r *metrics.Registry) {
				r.RecordGauge("size", 3, map[string]string{"order": "max"})
				r.RecordGauge("size", 1, map[string]string{"order": "min"})
			},
			metric: "size",
			match:  map[string]string{"order": "max"},
			want:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := metrics.NewRegistry()
			r.Register(metrics.Metric{Name: "pushes", Type: metrics.Counter})
			r.Register(metrics.Metric{Name: "size", Type: metrics.Gauge})
			r.Register(metrics.Metric{Name: "swaps", Type: metrics.Histogram})

			tt.record(r)

			assert.InDelta(t, tt.want, r.Sum(tt.metric, tt.match), 1e-9)
		})
	}
}

func TestGaugeLabelSetsAreIndependent(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "size", Type: metrics.Gauge})
	maxLabels := map[string]string{"order": "max"}
	minLabels := map[string]string{"order": "min"}

	r.RecordGauge("size", 3, maxLabels)
	r.RecordGauge("size", 1, minLabels)
	r.RecordGauge("size", 2, minLabels)

	assert.InDelta(t, 3.0, r.Sum("size", maxLabels), 1e-9)
	assert.InDelta(t, 2.0, r.Sum("size", minLabels), 1e-9)
	assert.InDelta(t, 5.0, r.Sum("size", nil), 1e-9)
	assert.Len(t, r.GetMetrics()["size"], 2)
}

func TestCounterFoldsIntoOneValue(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "pushes", Type: metrics.Counter})
	labels := map[string]string{"order": "max", "heap": "a"}

	for i := 0; i < 10000; i++ {
		r.RecordCounter("pushes", 1, labels)
	}
	// Same label set in a different map, so key order cannot matter.
	r.RecordCounter("pushes", 1, map[string]string{"heap": "a", "order": "max"})

	got := r.GetMetrics()["pushes"]
	require.Len(t, got, 1)
	assert.InDelta(t, 10001.0, got[0].Value, 1e-9)
	assert.Equal(t, 10001, got[0].Count)
	assert.Equal(t, 10001, r.Count("pushes", labels))
}

func TestHistogramCount(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "swaps", Type: metrics.Histogram})

	r.RecordHistogram("swaps", 0, nil)
	r.RecordHistogram("swaps", 2, nil)
	r.RecordHistogram("swaps", 3, nil)

	assert.Equal(t, 3, r.Count("swaps", nil))
	assert.InDelta(t, 5.0, r.Sum("swaps", nil), 1e-9)
}

func TestRegistryRegisterTwiceKeepsFirst(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "pushes", Type: metrics.Counter, Description: "first"})
	r.RecordCounter("pushes", 1, nil)
	r.Register(metrics.Metric{Name: "pushes", Type: metrics.Gauge, Description: "second"})

	// Still a counter: gauge writes are ignored and counter writes land.
	r.RecordGauge("pushes", 50, nil)
	r.RecordCounter("pushes", 1, nil)

	assert.InDelta(t, 2.0, r.Sum("pushes", nil), 1e-9)
	assert.Len(t, r.GetMetrics()["pushes"], 1)
}

func TestGetMetricsReturnsCopy(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "pushes", Type: metrics.Counter})
	r.RecordCounter("pushes", 1, map[string]string{"order": "max"})

	got := r.GetMetrics()
	got["pushes"][0].Value = 100
	got["pushes"][0].Labels["order"] = "min"

	assert.InDelta(t, 1.0, r.Sum("pushes", map[string]string{"order": "max"}), 1e-9)
}
