package carousel

import "math"

// GoToSlide moves the track to slide index, clamped to the scrollable
// range. It does not alter the interaction state and is ignored until the
// track has been measured.
func (c *Carousel) GoToSlide(index int) {
	c.do(func() bool {
		return c.goToSlide(index)
	})
}

func (c *Carousel) goToSlide(index int) bool {
	g := c.geometry()
	if !g.Measured() {
		return false
	}

	return c.setOffset(float64(index) * g.ItemWidth())
}

// Next moves one stop forward without wrapping.
func (c *Carousel) Next() {
	c.do(func() bool {
		return c.goToSlide(c.geometry().CurrentIndex(c.offset) + 1)
	})
}

// Prev moves one stop back without wrapping.
func (c *Carousel) Prev() {
	c.do(func() bool {
		return c.goToSlide(c.geometry().CurrentIndex(c.offset) - 1)
	})
}

// AutoAdvance moves one slide forward, restarting from the first slide once
// the advance would reach the end of the track. It never runs during a drag.
func (c *Carousel) AutoAdvance() {
	c.do(c.autoAdvance)
}

func (c *Carousel) autoAdvance() bool {
	if c.interaction == Dragging {
		return false
	}
	g := c.geometry()
	if !g.Measured() {
		return false
	}

	next := c.offset + g.ItemWidth()
	if next >= g.MaxOffset() {
		if c.offset != 0 {
			c.log.Debug("carousel wrapped", "carousel", c.name)
		}
		return c.setOffset(0)
	}

	return c.setOffset(next)
}

// SnapToNearest settles the track on the best slide for the current
// offset. It is a no-op while already snapping, with no slides, before
// measurement, or when the target is within SnapTolerance.
func (c *Carousel) SnapToNearest() {
	c.do(c.snapToNearest)
}

func (c *Carousel) snapToNearest() bool {
	if c.interaction == Snapping || len(c.items) == 0 {
		return false
	}
	g := c.geometry()
	if !g.Measured() {
		return false
	}

	target := g.Constrain(float64(g.BestSnapIndex(c.offset)) * g.ItemWidth())
	if math.Abs(target-c.offset) <= SnapTolerance {
		return false
	}

	c.log.Debug("carousel snapping", "carousel", c.name, "from", c.offset, "to", target)

	c.interaction = Snapping
	c.setOffset(target)
	c.schedule(&c.snap, SnapDuration, func() bool {
		if c.interaction != Snapping {
			return false
		}
		c.interaction = Idle

		return true
	})

	return true
}
