package infra

import (
	"errors"
	"sync"
	"time"
)

// ── Circuit Breaker ───────────────────────────────────────────────────────────
// Closed → Open → Half-Open breaker in front of the upstream REST backend.
// Every catalog render fans out into several upstream calls, so once the
// backend goes down the request volume it sees multiplies; tripping open
// turns that into immediate failures and lets the snapshot fallback answer.
//
// States:
//   - Closed:    normal operation, requests pass through
//   - Open:      all requests fail immediately (fast-fail)
//   - Half-Open: one probe request allowed through to test recovery

// CBState represents the current circuit breaker state.
type CBState int

const (
	CBClosed   CBState = iota // normal — requests flow
	CBOpen                    // tripped — fast-fail all requests
	CBHalfOpen                // probing — one request allowed
)

// String returns a human-readable state name (for the health endpoint / logs).
func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned when Execute is called while the CB is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig holds tunable parameters.
type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive failures to trip open
	SuccessThreshold int           // consecutive successes in half-open to close
	OpenTimeout      time.Duration // how long to stay open before probing
}

// DefaultCBConfig is tuned for the backend fetchers: a single enrichment
// fan-out can produce a burst of failures, so the trip threshold is higher
// than the success threshold, and the open window is short because list
// views keep polling and recover on their own once the backend is back.
func DefaultCBConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Second,
	}
}

// CircuitBreaker implements the pattern with thread-safe state transitions.
type CircuitBreaker struct {
	mu             sync.Mutex
	state          CBState
	fallos         int
	aciertos       int
	ultimoFallo    time.Time
	umbralFallos   int
	umbralAciertos int
	ventanaAbierta time.Duration
}

// NewCircuitBreaker creates a CB in Closed state.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreaker{
		state:          CBClosed,
		umbralFallos:   cfg.FailureThreshold,
		umbralAciertos: cfg.SuccessThreshold,
		ventanaAbierta: cfg.OpenTimeout,
	}
}

// State returns the current CB state (safe for concurrent reads).
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	// Auto-transition open → half-open once the open window elapsed
	if cb.state == CBOpen && time.Since(cb.ultimoFallo) >= cb.ventanaAbierta {
		cb.state = CBHalfOpen
		cb.aciertos = 0
	}
	return cb.state
}

// Execute runs fn through the circuit breaker.
// Returns ErrCircuitOpen immediately if the CB is open.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	state := cb.State()

	if state == CBOpen {
		return ErrCircuitOpen
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.alFallar()
		return err
	}
	cb.alAcertar()
	return nil
}

// alFallar records a failure (must be called under lock).
func (cb *CircuitBreaker) alFallar() {
	cb.fallos++
	cb.ultimoFallo = time.Now()

	switch cb.state {
	case CBClosed:
		if cb.fallos >= cb.umbralFallos {
			cb.state = CBOpen
			cb.aciertos = 0
		}
	case CBHalfOpen:
		// Probe failed — back to open for another window
		cb.state = CBOpen
		cb.fallos = 0
	}
}

// alAcertar records a success (must be called under lock).
func (cb *CircuitBreaker) alAcertar() {
	switch cb.state {
	case CBClosed:
		cb.fallos = 0
	case CBHalfOpen:
		cb.aciertos++
		if cb.aciertos >= cb.umbralAciertos {
			cb.state = CBClosed
			cb.fallos = 0
			cb.aciertos = 0
		}
	}
}
