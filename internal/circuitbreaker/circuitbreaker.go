// Package circuitbreaker stops calling a failing dependency for a while and
// probes it again before resuming normal traffic.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker is open")
	// ErrProbeInFlight is returned in half-open state while another call is
	// already probing the dependency.
	ErrProbeInFlight = errors.New("circuit breaker probe in flight")
)

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed lets calls through.
	StateClosed State = iota
	// StateOpen rejects calls until Timeout has elapsed.
	StateOpen
	// StateHalfOpen lets a single probe through at a time.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive probe successes that closes it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// Name identifies the breaker in logs and health output.
	Name string
	// OnStateChange, when set, is called asynchronously after each transition.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	now             func() time.Time
	mu              sync.Mutex
	state           State
	failureCount    int
	successCount    int
	probing         bool
	lastFailureTime time.Time
}

// New creates a circuit breaker. Non-positive thresholds default to 1.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	return &CircuitBreaker{
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

// Execute runs fn unless the circuit is open. The error of fn is returned
// unchanged; a cancelled ctx is returned without calling fn and does not
// count as a failure.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	probe, err := cb.admit()
	if err != nil {
		return err
	}

	err = fn()
	cb.record(probe, err)
	return err
}

// admit decides whether a call may proceed and whether it is a probe.
func (cb *CircuitBreaker) admit() (probe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
			return false, ErrCircuitOpen
		}
		cb.transition(StateHalfOpen)
		cb.successCount = 0
		fallthrough
	case StateHalfOpen:
		if cb.probing {
			return false, ErrProbeInFlight
		}
		cb.probing = true
		return true, nil
	default:
		return false, nil
	}
}

func (cb *CircuitBreaker) record(probe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if probe {
		cb.probing = false
	}

	if err != nil {
		cb.failureCount++
		cb.lastFailureTime = cb.now()
		switch {
		case cb.state == StateHalfOpen:
			cb.transition(StateOpen)
		case cb.state == StateClosed && cb.failureCount >= cb.config.FailureThreshold:
			cb.transition(StateOpen)
		}
		return
	}

	cb.failureCount = 0
	if cb.state == StateHalfOpen {
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.successCount = 0
			cb.transition(StateClosed)
		}
	}
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to State) {
	from := cb.state
	if from == to {
		return
	}
	cb.state = to

	event := log.Info()
	if to == StateOpen {
		event = log.Warn().Int("failure_count", cb.failureCount)
	}
	event.
		Str("circuit_breaker", cb.config.Name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")

	if cb.config.OnStateChange != nil {
		go cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Name returns the configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Stats is a snapshot of the breaker.
type Stats struct {
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
