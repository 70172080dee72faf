// Package circuitbreaker fails calls to an unhealthy venue fast. Only transport
// failures and server errors count; a well-formed exchange rejection means the
// venue is up.
package circuitbreaker

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrOpen is returned by Allow while the breaker is open.
var ErrOpen = errors.New("circuit breaker open")

type State int32

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config controls when the breaker trips and recovers.
type Config struct {
	// FailThreshold consecutive failures open the breaker.
	FailThreshold int `json:"fail_threshold"`
	// SuccessThreshold consecutive half-open successes close it again.
	SuccessThreshold int `json:"success_threshold"`
	// Cooldown is how long the breaker stays open before letting probes through.
	Cooldown time.Duration `json:"cooldown"`
}

// Breaker is safe for concurrent use.
type Breaker struct {
	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
	config    Config
	now       func() time.Time
	metrics   Metrics
}

type Metrics struct {
	totalRequests   atomic.Int64
	rejected        atomic.Int64
	successRequests atomic.Int64
	failedRequests  atomic.Int64
	stateChanges    atomic.Int32
}

// New returns a closed breaker. Thresholds below one are raised to one.
func New(config Config) *Breaker {
	if config.FailThreshold < 1 {
		config.FailThreshold = 1
	}
	if config.SuccessThreshold < 1 {
		config.SuccessThreshold = 1
	}
	return &Breaker{config: config, now: time.Now}
}

// Allow returns ErrOpen while the breaker is open and the cooldown has not elapsed.
func (b *Breaker) Allow() error {
	b.metrics.totalRequests.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.config.Cooldown {
			b.metrics.rejected.Add(1)
			return ErrOpen
		}
		b.transitionTo(StateHalfOpen)
	}
	return nil
}

// Record reports the outcome of an allowed call.
func (b *Breaker) Record(success bool) {
	if success {
		b.metrics.successRequests.Add(1)
	} else {
		b.metrics.failedRequests.Add(1)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.config.FailThreshold {
			b.trip()
		}
	case StateHalfOpen:
		if !success {
			b.trip()
			return
		}
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.transitionTo(StateClosed)
		}
	case StateOpen:
		// A call allowed before the breaker tripped finished late.
		if !success {
			b.openedAt = b.now()
		}
	}
}

func (b *Breaker) trip() {
	b.openedAt = b.now()
	b.transitionTo(StateOpen)
}

func (b *Breaker) transitionTo(newState State) {
	b.state = newState
	b.failures = 0
	b.successes = 0
	b.metrics.stateChanges.Add(1)
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
}

func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

func (b *Breaker) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   b.metrics.totalRequests.Load(),
		Rejected:        b.metrics.rejected.Load(),
		SuccessRequests: b.metrics.successRequests.Load(),
		FailedRequests:  b.metrics.failedRequests.Load(),
		StateChanges:    b.metrics.stateChanges.Load(),
		CurrentState:    b.State().String(),
	}
}

type MetricsSnapshot struct {
	TotalRequests   int64
	Rejected        int64
	SuccessRequests int64
	FailedRequests  int64
	StateChanges    int32
	CurrentState    string
}
