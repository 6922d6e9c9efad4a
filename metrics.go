package rcarena

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Len returns the number of values stored in the arena.
func (a *Arena[T]) Len() int {
	if a.inner == nil {
		return 0
	}
	return a.inner.length
}

// NumSegments returns the number of segments in the arena's chain.
func (a *Arena[T]) NumSegments() int {
	if a.inner == nil {
		return 0
	}
	return a.inner.segments
}

// Capacity returns the total number of slots across all segments.
func (a *Arena[T]) Capacity() int {
	if a.inner == nil {
		return 0
	}
	return a.inner.segments * a.inner.segmentSize
}

// Utilization returns the ratio of stored values to capacity (0.0 to 1.0).
// Returns 0.0 for a released handle.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Len()) / float64(capacity)
}

// SegmentSize returns the number of values each segment holds.
func (a *Arena[T]) SegmentSize() int {
	if a.inner == nil {
		return 0
	}
	return a.inner.segmentSize
}

// Handles returns the number of live handles to the arena.
func (a *Arena[T]) Handles() int {
	if a.inner == nil {
		return 0
	}
	return a.inner.strong
}

// Stats returns a snapshot of arena statistics.
func (a *Arena[T]) Stats() ArenaStats {
	return ArenaStats{
		Len:         a.Len(),
		Capacity:    a.Capacity(),
		NumSegments: a.NumSegments(),
		SegmentSize: a.SegmentSize(),
		Handles:     a.Handles(),
		Utilization: a.Utilization(),
	}
}

// ArenaStats contains statistical information about an arena.
type ArenaStats struct {
	Len         int     // Values stored
	Capacity    int     // Slots across all segments
	NumSegments int     // Segments in the chain
	SegmentSize int     // Slots per segment
	Handles     int     // Live handles
	Utilization float64 // Ratio of Len to Capacity (0.0-1.0)
}

var nopMetrics = NewMetrics(nil)

// Metrics holds the Prometheus collectors shared by arenas created with
// WithMetrics.
type Metrics struct {
	arenasCreated     prometheus.Counter
	arenasDestroyed   prometheus.Counter
	segmentsAllocated prometheus.Counter
	valuesAllocated   prometheus.Counter
	valuesDropped     prometheus.Counter
	liveHandles       prometheus.Gauge
}

// NewMetrics creates the arena collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		arenasCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "rcarena",
			Name:      "arenas_created_total",
			Help:      "Total number of arenas created.",
		}),
		arenasDestroyed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "rcarena",
			Name:      "arenas_destroyed_total",
			Help:      "Total number of arenas destroyed after their last handle was released.",
		}),
		segmentsAllocated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "rcarena",
			Name:      "segments_allocated_total",
			Help:      "Total number of segments allocated, including each arena's first segment.",
		}),
		valuesAllocated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "rcarena",
			Name:      "values_allocated_total",
			Help:      "Total number of values moved into arenas.",
		}),
		valuesDropped: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "rcarena",
			Name:      "values_dropped_total",
			Help:      "Total number of values dropped during arena teardown.",
		}),
		liveHandles: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "rcarena",
			Name:      "live_handles",
			Help:      "Number of arena handles that have not been released.",
		}),
	}
}
