package mock

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/utils"
)

// Clock is a manually driven utils.Clock for tests.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

var _ utils.Clock = (*Clock)(nil)

// NewClock creates a Clock set to t.
func NewClock(t time.Time) *Clock {
	return &Clock{current: t}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
