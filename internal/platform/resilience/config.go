package resilience

import (
	"errors"
	"time"
)

// CircuitBreakerConfig tunes the breaker in front of one upstream. Zero
// numeric fields fall back to DefaultCircuitBreakerConfig.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// DefaultCircuitBreakerConfig trips after five transient failures, probes
// again after 30s and closes after two clean probes.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Validate rejects explicit settings the breaker cannot honour.
func (c CircuitBreakerConfig) Validate() error {
	var errs []error
	if c.FailureThreshold <= 0 {
		errs = append(errs, errors.New("failure threshold must be > 0"))
	}
	if c.OpenTimeout <= 0 {
		errs = append(errs, errors.New("open timeout must be > 0"))
	}
	if c.HalfOpenMaxReq <= 0 {
		errs = append(errs, errors.New("half-open request limit must be > 0"))
	}
	return errors.Join(errs...)
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}
