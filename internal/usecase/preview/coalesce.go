package preview

import (
	"sync"
	"time"
)

// Coalescer collapses bursts of parameter changes (continuous drag,
// scroll-wheel scaling) into a single recompute once the input settles.
// This is a responsiveness aid only; callers that recompose on every
// event stay correct.
type Coalescer struct {
	settle time.Duration
	fn     func()

	mu    sync.Mutex
	timer *time.Timer
}

func NewCoalescer(settle time.Duration, fn func()) *Coalescer {
	return &Coalescer{settle: settle, fn: fn}
}

// Trigger schedules fn after the settle interval, extending the wait if
// another Trigger arrives first.
func (c *Coalescer) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.settle, c.fn)
}

// Stop cancels any pending recompute.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
