package seggo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    segmentCounter prometheus.Counter
//	    evalCounter    prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordSegmentation(a seggo.Algorithm, n int, duration time.Duration, err error) {
//	    p.segmentCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSegmentation is called after each segmentation call.
	// n is the number of columns, duration the total time taken,
	// err is nil if successful.
	RecordSegmentation(a Algorithm, n int, duration time.Duration, err error)

	// RecordEvaluations is called after each segmentation call with
	// the number of oracle evaluations it performed.
	RecordEvaluations(count int64)

	// RecordCacheHits is called after each segmentation call with
	// the number of segment scores served from the likelihood cache.
	RecordCacheHits(count int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSegmentation(Algorithm, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEvaluations(int64)                                 {}
func (NoopMetricsCollector) RecordCacheHits(int64)                                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SegmentationCount      atomic.Int64
	SegmentationErrors     atomic.Int64
	SegmentationTotalNanos atomic.Int64
	EvaluationCount        atomic.Int64
	CacheHitCount          atomic.Int64
}

// RecordSegmentation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmentation(a Algorithm, n int, duration time.Duration, err error) {
	b.SegmentationCount.Add(1)
	b.SegmentationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SegmentationErrors.Add(1)
	}
}

// RecordEvaluations implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluations(count int64) {
	b.EvaluationCount.Add(count)
}

// RecordCacheHits implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHits(count int64) {
	b.CacheHitCount.Add(count)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SegmentationCount:     b.SegmentationCount.Load(),
		SegmentationErrors:    b.SegmentationErrors.Load(),
		SegmentationAvgNanos:  b.getAvgSegmentationNanos(),
		EvaluationCount:       b.EvaluationCount.Load(),
		CacheHitCount:         b.CacheHitCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSegmentationNanos() int64 {
	count := b.SegmentationCount.Load()
	if count == 0 {
		return 0
	}
	return b.SegmentationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SegmentationCount     int64
	SegmentationErrors    int64
	SegmentationAvgNanos  int64
	EvaluationCount       int64
	CacheHitCount         int64
}
