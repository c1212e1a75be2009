// Package carouseltest provides a manually driven clock for testing code
// built on package carousel.
package carouseltest

import (
	"sync"
	"time"

	"github.com/germanamz/irena/pkg/carousel"
)

// Clock is a carousel.Clock whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	timers []*timer
}

type timer struct {
	clock   *Clock
	id      int
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc implements carousel.Clock.
func (c *Clock) AfterFunc(d time.Duration, f func()) carousel.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &timer{clock: c, id: c.nextID, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)

	return t
}

// Stop implements carousel.Timer.
func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks scheduled while advancing fire too if they fall inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

func (c *Clock) nextDue(target time.Duration) *timer {
	var best *timer
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.stopped || t.fired {
			continue
		}
		live = append(live, t)
		if t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.id < best.id) {
			best = t
		}
	}
	c.timers = live

	return best
}

// Pending returns the number of timers that are neither stopped nor fired.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}

// Now returns the elapsed manual time.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}
