package qscore

import (
	"sync"
	"time"
)

// Metrics tracks evaluation pool activity.
type Metrics struct {
	mu                 sync.RWMutex
	WorkerCount        int
	QueueSize          int
	RunCount           int64
	FailureCount       int64
	TotalRunTime       time.Duration
	AverageRunLatency  time.Duration
	SchedulingFailures int64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordRun(start time.Time, success bool) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCount++
	if !success {
		m.FailureCount++
	}
	m.TotalRunTime += duration
	m.AverageRunLatency = m.TotalRunTime / time.Duration(m.RunCount)
}

// ExportMetrics snapshots the counters for the surrounding
// application's telemetry.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":        m.WorkerCount,
		"queue_size":          m.QueueSize,
		"run_count":           m.RunCount,
		"failure_count":       m.FailureCount,
		"avg_latency_ms":      m.AverageRunLatency.Milliseconds(),
		"scheduling_failures": m.SchedulingFailures,
	}
}
