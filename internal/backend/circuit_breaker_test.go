package backend

import (
	"fmt"
	"testing"
	"time"

	"careerpilot/internal/config"
)

func enabledBreakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	cb := NewAPICircuitBreaker(&config.CircuitBreakerConfig{Enabled: false}, nil)
	if cb != nil {
		t.Fatal("circuit breaker should be nil when disabled")
	}

	// A nil breaker passes calls straight through.
	got, err := cb.Execute(func() ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil || string(got) != "ok" {
		t.Errorf("Execute() = %q, %v", got, err)
	}
	if !cb.IsHealthy() {
		t.Error("nil breaker should report healthy")
	}

	stats := cb.Stats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("nil breaker stats should report enabled=false")
	}
}

func TestCircuitBreakerStats(t *testing.T) {
	cb := NewAPICircuitBreaker(enabledBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("circuit breaker should not be nil when enabled")
	}

	stats := cb.Stats()
	if name, _ := stats["name"].(string); name != "backend-api" {
		t.Errorf("breaker name = %q", name)
	}
	if state, _ := stats["state"].(string); state != "closed" {
		t.Errorf("initial state = %q, want closed", state)
	}
	if !cb.IsHealthy() {
		t.Error("breaker should be healthy initially")
	}
}

func TestCircuitBreakerTripsAfterFailures(t *testing.T) {
	cb := NewAPICircuitBreaker(enabledBreakerConfig(), nil)

	failing := func() ([]byte, error) {
		return nil, fmt.Errorf("backend down")
	}

	for range 3 {
		if _, err := cb.Execute(failing); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	}

	if cb.IsHealthy() {
		t.Error("breaker still healthy after hitting the failure threshold")
	}
}
