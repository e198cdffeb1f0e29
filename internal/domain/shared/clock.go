package shared

import (
	"sync"
	"time"
)

// Clock supplies plan timestamps and retry waits
type Clock interface {
	Now() time.Time
	// After delivers the time once d has passed, for waits that also
	// select on a context
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// NewRealClock returns the system clock. Times are UTC and truncated to
// microseconds, the precision both sqlite and postgres keep.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// MockClock is a manually driven clock. After fires immediately, moves the
// clock forward and records the requested duration.
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

// NewMockClock starts a MockClock at start, or at the current time when start
// is zero
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.now = m.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- m.now
	return ch
}

// Advance moves the clock forward without recording a sleep
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleeps returns every duration passed to After, in order
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.sleeps...)
}
