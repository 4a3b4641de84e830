package clock

import (
	"sync"
	"time"
)

var (
	clockMu        sync.RWMutex
	clockSingleton Clock = DefaultClock{}
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// DefaultClock is the wall clock.
type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a clock which only moves when asked.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewTestClock() *TestClock {
	return NewTestClockAt(time.Now())
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func CurrentClock() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clockSingleton
}

// Now is the same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

func use(c Clock) {
	clockMu.Lock()
	defer clockMu.Unlock()
	clockSingleton = c
}

// FreezeAt stops the time at the given date until Unfreeze is called.
func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	use(testClock)
	return testClock
}

// Freeze stops the time at the current date until Unfreeze is called.
func Freeze() *TestClock {
	return FreezeAt(time.Now())
}

func Unfreeze() {
	use(DefaultClock{})
}
