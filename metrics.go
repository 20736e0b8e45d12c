package mapline

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
//	    openCounter     prometheus.Counter
//	    ingestHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordOpen(size int64, segments int, duration time.Duration, err error) {
//	    p.openCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordOpen is called after each mapping attempt.
	// size is the mapped file size, segments is the number of mapping
	// segments created, duration is the total time taken, err is nil
	// if successful.
	RecordOpen(size int64, segments int, duration time.Duration, err error)

	// RecordIngest is called after each parallel ingestion run.
	// lines and bytes count the payload delivered to the callback,
	// chunks is the number of chunks processed, duration is the total
	// time taken, err is nil if successful.
	RecordIngest(lines, bytes int64, chunks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a MetricsCollector that discards all metrics.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(size int64, segments int, duration time.Duration, err error) {
}
func (NoopMetricsCollector) RecordIngest(lines, bytes int64, chunks int, duration time.Duration, err error) {
}

// BasicMetricsCollector is a simple in-memory metrics collector.
// Useful for testing and debugging. For production, implement
// MetricsCollector with your monitoring system.
type BasicMetricsCollector struct {
	OpenCount    atomic.Int64
	OpenErrors   atomic.Int64
	IngestCount  atomic.Int64
	IngestErrors atomic.Int64
	LinesTotal   atomic.Int64
	BytesTotal   atomic.Int64
}

func (m *BasicMetricsCollector) RecordOpen(size int64, segments int, duration time.Duration, err error) {
	m.OpenCount.Add(1)
	if err != nil {
		m.OpenErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordIngest(lines, bytes int64, chunks int, duration time.Duration, err error) {
	m.IngestCount.Add(1)
	if err != nil {
		m.IngestErrors.Add(1)
	}
	m.LinesTotal.Add(lines)
	m.BytesTotal.Add(bytes)
}

// GetStats returns a snapshot of collected metrics.
func (m *BasicMetricsCollector) GetStats() map[string]int64 {
	return map[string]int64{
		"open_count":    m.OpenCount.Load(),
		"open_errors":   m.OpenErrors.Load(),
		"ingest_count":  m.IngestCount.Load(),
		"ingest_errors": m.IngestErrors.Load(),
		"lines_total":   m.LinesTotal.Load(),
		"bytes_total":   m.BytesTotal.Load(),
	}
}
