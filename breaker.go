package lotto649

import (
	"github.com/sony/gobreaker"
)

// entropyReader is the fallible read contract the breaker guards.
// SecureSource is the production implementation.
type entropyReader interface {
	NextChecked() (uint64, error)
}

// CircuitBreakerSource wraps a SecureSource behind a circuit breaker. While the
// breaker is closed, values come from the platform CSPRNG; when a read fails or
// the breaker rejects the call, the value comes from the seeded fallback engine
// instead, so the sampler never stalls on a broken entropy source.
type CircuitBreakerSource struct {
	secure   entropyReader
	fallback RandomSource

	breaker *gobreaker.CircuitBreaker
	logger  Logger
	monitor *DrawMonitor
	config  *CircuitBreakerConfig
}

// NewCircuitBreakerSource creates a breaker-guarded secure source. fallback
// must be non-nil; monitor may be nil.
func NewCircuitBreakerSource(
	secure entropyReader, fallback RandomSource, config *CircuitBreakerConfig, logger Logger,
) *CircuitBreakerSource {
	if logger == nil {
		logger = &DefaultLogger{}
	}
	if config == nil {
		config = DefaultCircuitBreakerConfig()
	}

	src := &CircuitBreakerSource{
		secure:   secure,
		fallback: fallback,
		logger:   logger,
		config:   config,
	}

	if !config.Enabled {
		// Breaker disabled: secure reads still fall back per-call on error
		return src
	}

	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= config.MinRequests &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= config.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if config.OnStateChange && logger != nil {
				logger.Info("Circuit breaker '%s' state changed from %s to %s", name, from, to)
			}
		},
	}
	src.breaker = gobreaker.NewCircuitBreaker(settings)

	return src
}

// SetMonitor attaches a monitor that records entropy fallbacks
func (c *CircuitBreakerSource) SetMonitor(monitor *DrawMonitor) {
	c.monitor = monitor
}

// Next implements RandomSource. It never fails: a rejected or failed secure
// read is served by the fallback engine.
func (c *CircuitBreakerSource) Next() uint64 {
	v, err := c.nextSecure()
	if err == nil {
		return v
	}

	if c.monitor != nil {
		c.monitor.RecordFallback()
	}
	c.logger.Debug("secure source unavailable, using fallback engine: %v", err)
	return c.fallback.Next()
}

// nextSecure runs one secure read through the breaker when enabled
func (c *CircuitBreakerSource) nextSecure() (uint64, error) {
	if c.breaker == nil {
		return c.secure.NextChecked()
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.secure.NextChecked()
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return 0, NewRetryableError(ErrCodeCircuitBreakerOpen, "entropy breaker is open").
				WithOperation("nextSecure")
		}
		if err == gobreaker.ErrTooManyRequests {
			return 0, NewRetryableError(ErrCodeCircuitBreakerOpen, "entropy breaker is half-open and saturated").
				WithOperation("nextSecure")
		}
		return 0, err
	}

	return result.(uint64), nil
}
