package lotto649

import (
	"sync"
	"sync/atomic"
	"time"
)

// DrawMetrics collects counters for one generator's lifetime
type DrawMetrics struct {
	TotalDraws       int64 `json:"total_draws"`       // candidate tickets drawn
	AcceptedTickets  int64 `json:"accepted_tickets"`  // tickets that passed the guard
	DuplicateRejects int64 `json:"duplicate_rejects"` // candidates rejected as duplicates
	EntropyFallbacks int64 `json:"entropy_fallbacks"` // secure reads served by the fallback engine

	TotalDrawTime   int64 `json:"total_draw_time"`   // nanoseconds
	AverageDrawTime int64 `json:"average_draw_time"` // nanoseconds

	StartTime      int64 `json:"start_time"`
	LastUpdateTime int64 `json:"last_update_time"`
}

// GetDuplicateRate returns the share of candidate draws rejected as
// duplicates, as a percentage
func (dm *DrawMetrics) GetDuplicateRate() float64 {
	total := atomic.LoadInt64(&dm.TotalDraws)
	if total == 0 {
		return 0.0
	}
	rejects := atomic.LoadInt64(&dm.DuplicateRejects)
	return float64(rejects) / float64(total) * 100.0
}

// GetThroughput returns accepted tickets per second
func (dm *DrawMetrics) GetThroughput() float64 {
	startTime := atomic.LoadInt64(&dm.StartTime)
	lastUpdate := atomic.LoadInt64(&dm.LastUpdateTime)
	if startTime == 0 || lastUpdate <= startTime {
		return 0.0
	}

	duration := time.Duration(lastUpdate - startTime)
	accepted := atomic.LoadInt64(&dm.AcceptedTickets)

	return float64(accepted) / duration.Seconds()
}

// Reset zeroes all counters and restarts the clock
func (dm *DrawMetrics) Reset() {
	atomic.StoreInt64(&dm.TotalDraws, 0)
	atomic.StoreInt64(&dm.AcceptedTickets, 0)
	atomic.StoreInt64(&dm.DuplicateRejects, 0)
	atomic.StoreInt64(&dm.EntropyFallbacks, 0)
	atomic.StoreInt64(&dm.TotalDrawTime, 0)
	atomic.StoreInt64(&dm.AverageDrawTime, 0)
	atomic.StoreInt64(&dm.StartTime, time.Now().UnixNano())
	atomic.StoreInt64(&dm.LastUpdateTime, time.Now().UnixNano())
}

// ================================================================================

// DrawMonitor records generator activity with atomic counters
type DrawMonitor struct {
	metrics *DrawMetrics
	mu      sync.RWMutex
	enabled bool
}

// NewDrawMonitor creates a new, enabled monitor
func NewDrawMonitor() *DrawMonitor {
	dm := &DrawMonitor{
		metrics: &DrawMetrics{},
		enabled: true,
	}
	dm.metrics.Reset()
	return dm
}

// Enable turns recording on
func (m *DrawMonitor) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = true
}

// Disable turns recording off
func (m *DrawMonitor) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
}

// IsEnabled reports whether recording is on
func (m *DrawMonitor) IsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.enabled
}

// RecordDraw records one candidate draw and whether the guard accepted it
func (m *DrawMonitor) RecordDraw(accepted bool, duration time.Duration) {
	if !m.IsEnabled() {
		return
	}

	atomic.AddInt64(&m.metrics.TotalDraws, 1)
	atomic.AddInt64(&m.metrics.TotalDrawTime, int64(duration))

	if accepted {
		atomic.AddInt64(&m.metrics.AcceptedTickets, 1)
	} else {
		atomic.AddInt64(&m.metrics.DuplicateRejects, 1)
	}

	totalDraws := atomic.LoadInt64(&m.metrics.TotalDraws)
	totalTime := atomic.LoadInt64(&m.metrics.TotalDrawTime)
	atomic.StoreInt64(&m.metrics.AverageDrawTime, totalTime/totalDraws)

	atomic.StoreInt64(&m.metrics.LastUpdateTime, time.Now().UnixNano())
}

// RecordFallback records one secure read served by the fallback engine
func (m *DrawMonitor) RecordFallback() {
	if !m.IsEnabled() {
		return
	}

	atomic.AddInt64(&m.metrics.EntropyFallbacks, 1)
	atomic.StoreInt64(&m.metrics.LastUpdateTime, time.Now().UnixNano())
}

// GetMetrics returns a copy of the current counters
func (m *DrawMonitor) GetMetrics() DrawMetrics {
	return DrawMetrics{
		TotalDraws:       atomic.LoadInt64(&m.metrics.TotalDraws),
		AcceptedTickets:  atomic.LoadInt64(&m.metrics.AcceptedTickets),
		DuplicateRejects: atomic.LoadInt64(&m.metrics.DuplicateRejects),
		EntropyFallbacks: atomic.LoadInt64(&m.metrics.EntropyFallbacks),
		TotalDrawTime:    atomic.LoadInt64(&m.metrics.TotalDrawTime),
		AverageDrawTime:  atomic.LoadInt64(&m.metrics.AverageDrawTime),
		StartTime:        atomic.LoadInt64(&m.metrics.StartTime),
		LastUpdateTime:   atomic.LoadInt64(&m.metrics.LastUpdateTime),
	}
}

// ResetMetrics zeroes the counters
func (m *DrawMonitor) ResetMetrics() { m.metrics.Reset() }
