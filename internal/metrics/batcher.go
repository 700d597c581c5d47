package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batcherFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "batcher",
		Name:      "flush_total",
		Help:      "Count of batch flushes.",
	}, []string{"name", "status"})

	batcherFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "batcher",
		Name:      "flush_duration_seconds",
		Help:      "Duration of batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"name", "status"})

	batcherFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "batcher",
		Name:      "flush_size",
		Help:      "Number of items per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"name"})
)

// Batcher tracks metrics for a named batcher.
type Batcher struct {
	name string
}

// NewBatcher constructs a metrics collector for the batcher called name.
func NewBatcher(name string) *Batcher {
	if name == "" {
		name = "unknown"
	}
	return &Batcher{name: name}
}

// ObserveFlush records one flush of size items.
func (m Batcher) ObserveFlush(err error, size int, started time.Time) {
	status := statusLabel(err)

	batcherFlushTotal.WithLabelValues(m.name, status).Inc()
	batcherFlushDuration.WithLabelValues(m.name, status).Observe(time.Since(started).Seconds())
	batcherFlushSize.WithLabelValues(m.name).Observe(float64(size))
}
