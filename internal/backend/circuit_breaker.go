package backend

import (
	"careerpilot/internal/config"
	"careerpilot/internal/errors"

	"github.com/sony/gobreaker/v2"
)

// APICircuitBreaker wraps backend calls with the circuit breaker
// pattern. All endpoints share one breaker: the backend is a single
// collaborator and a failing chat endpoint means recommendations are
// in trouble too.
type APICircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[[]byte]
}

// NewAPICircuitBreaker creates a circuit breaker from configuration.
// A nil return means the breaker is disabled and calls pass through.
func NewAPICircuitBreaker(cfg *config.CircuitBreakerConfig, logger *errors.Logger) *APICircuitBreaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "backend-api",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String())
			}
		},
	}

	return &APICircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Execute runs the provided request function with circuit breaker
// protection. A disabled breaker executes the function directly.
func (b *APICircuitBreaker) Execute(fn func() ([]byte, error)) ([]byte, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// IsHealthy returns true if the circuit breaker is in closed state
func (b *APICircuitBreaker) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

// Stats returns circuit breaker statistics for diagnostics
func (b *APICircuitBreaker) Stats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{"enabled": false}
	}

	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}
