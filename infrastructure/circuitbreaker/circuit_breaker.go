package circuitbreaker

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State represents the circuit breaker state
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// ErrOpen is returned by Execute while the circuit for an endpoint is open
var ErrOpen = errors.New("circuit breaker is open")

// CircuitBreaker tracks consecutive failures per endpoint. After maxFailures
// in a row the endpoint is skipped until resetTimeout has passed; the next
// call is then a half-open probe that closes or reopens the circuit.
type CircuitBreaker struct {
	maxFailures  int
	resetTimeout time.Duration
	now          func() time.Time
	logger       *zap.Logger

	mu          sync.Mutex
	failures    map[string]int
	lastFailure map[string]time.Time
	state       map[string]State
}

// NewCircuitBreaker creates a new circuit breaker
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, logger *zap.Logger) *CircuitBreaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		now:          time.Now,
		logger:       logger,
		failures:     make(map[string]int),
		lastFailure:  make(map[string]time.Time),
		state:        make(map[string]State),
	}
}

// Allow reports whether a call to endpoint may proceed, moving an expired
// open circuit to half-open
func (cb *CircuitBreaker) Allow(endpoint string) bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state[endpoint] != StateOpen {
		return true
	}

	if cb.now().Sub(cb.lastFailure[endpoint]) > cb.resetTimeout {
		cb.state[endpoint] = StateHalfOpen
		cb.logger.Info("Circuit breaker half-open", zap.String("endpoint", endpoint))
		return true
	}
	return false
}

// Execute runs fn unless the circuit for endpoint is open, and records the
// outcome
func (cb *CircuitBreaker) Execute(endpoint string, fn func() error) error {
	if !cb.Allow(endpoint) {
		return ErrOpen
	}

	err := fn()
	if err != nil {
		cb.RecordFailure(endpoint)
	} else {
		cb.RecordSuccess(endpoint)
	}
	return err
}

// RecordSuccess records a successful request
func (cb *CircuitBreaker) RecordSuccess(endpoint string) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	delete(cb.failures, endpoint)
	delete(cb.lastFailure, endpoint)

	if cb.state[endpoint] == StateHalfOpen {
		cb.logger.Info("Circuit breaker closed", zap.String("endpoint", endpoint))
	}
	delete(cb.state, endpoint)
}

// RecordFailure records a failed request
func (cb *CircuitBreaker) RecordFailure(endpoint string) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures[endpoint]++
	cb.lastFailure[endpoint] = cb.now()

	// a failed half-open probe reopens immediately
	if cb.state[endpoint] == StateHalfOpen || cb.failures[endpoint] >= cb.maxFailures {
		if cb.state[endpoint] != StateOpen {
			cb.logger.Warn("Circuit breaker opened",
				zap.String("endpoint", endpoint),
				zap.Int("failures", cb.failures[endpoint]),
			)
		}
		cb.state[endpoint] = StateOpen
	}
}

// GetState returns the current state for an endpoint
func (cb *CircuitBreaker) GetState(endpoint string) State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if state, ok := cb.state[endpoint]; ok {
		return state
	}
	return StateClosed
}

// GetFailureCount returns the current failure count for an endpoint
func (cb *CircuitBreaker) GetFailureCount(endpoint string) int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures[endpoint]
}

// Reset forgets everything about an endpoint
func (cb *CircuitBreaker) Reset(endpoint string) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	delete(cb.failures, endpoint)
	delete(cb.lastFailure, endpoint)
	delete(cb.state, endpoint)
}
