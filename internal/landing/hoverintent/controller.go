// Package hoverintent delays menu visibility changes so that a pointer briefly
// crossing a trigger region does not make the menu flicker.
package hoverintent

import (
	"sync"
	"time"
)

const (
	// OpenDelay is the fixed delay between pointer-enter and the open effect.
	OpenDelay = 20 * time.Millisecond
	// DefaultCloseDelay is used when no positive close delay is configured.
	DefaultCloseDelay = 120 * time.Millisecond
)

// Timer is a cancellable scheduled effect.
type Timer interface {
	Stop() bool
}

// Scheduler arms timers. The default implementation wraps time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customises a Controller.
type Option func(*Controller)

// WithCloseDelay overrides the delay between pointer-leave and the close effect.
func WithCloseDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.closeDelay = d
		}
	}
}

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// Controller schedules open/close effects with at most one pending timer.
type Controller struct {
	open       func()
	close      func()
	closeDelay time.Duration
	scheduler  Scheduler

	mu         sync.Mutex
	pending    Timer
	generation uint64
	stopped    bool
}

// New builds a Controller that calls open and close after their delays.
func New(open, close func(), opts ...Option) *Controller {
	if open == nil {
		open = func() {}
	}
	if close == nil {
		close = func() {}
	}
	c := &Controller{
		open:       open,
		close:      close,
		closeDelay: DefaultCloseDelay,
		scheduler:  realScheduler{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CloseDelay reports the effective close delay.
func (c *Controller) CloseDelay() time.Duration {
	return c.closeDelay
}

// Enter handles pointer-enter: the pending effect is cancelled and open is armed.
func (c *Controller) Enter() {
	c.arm(OpenDelay, c.open)
}

// Leave handles pointer-leave: the pending effect is cancelled and close is armed.
func (c *Controller) Leave() {
	c.arm(c.closeDelay, c.close)
}

// Stop cancels any pending effect. Subsequent Enter and Leave calls are ignored.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.stopped = true
}

// Pending reports whether an effect is currently scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *Controller) arm(delay time.Duration, effect func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.cancelLocked()
	c.generation++
	gen := c.generation
	c.pending = c.scheduler.AfterFunc(delay, func() { c.fire(gen, effect) })
}

// fire runs effect unless a newer schedule or Stop superseded it.
func (c *Controller) fire(gen uint64, effect func()) {
	c.mu.Lock()
	if c.stopped || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()
	effect()
}

func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	// invalidate timers that already fired but have not taken the lock yet
	c.generation++
}
