package carousel

import "math"

// PointerDown starts a drag at x. A pending snap is interrupted; a second
// pointer while already dragging is ignored.
func (c *Carousel) PointerDown(x float64) {
	c.do(func() bool {
		if c.interaction == Dragging {
			return false
		}
		if c.interaction == Snapping {
			c.snap.cancel()
		}

		c.interaction = Dragging
		c.anchor = &dragAnchor{originOffset: c.offset, pointerStartX: x}
		c.dropCapture()
		c.release = c.capturer.Capture(c.PointerUp)

		c.log.Debug("carousel drag started", "carousel", c.name, "x", x, "offset", c.offset)

		return true
	})
}

// PointerMove drags the track. Moving the pointer left increases the offset.
func (c *Carousel) PointerMove(x float64) {
	c.do(func() bool {
		if c.interaction != Dragging {
			return false
		}

		delta := c.anchor.pointerStartX - x
		c.anchor.accumulatedDistance = math.Abs(delta)

		return c.setOffset(c.anchor.originOffset + delta)
	})
}

// PointerUp ends a drag. Drags longer than DragThreshold snap; shorter ones
// are taps and leave the offset where it is.
func (c *Carousel) PointerUp(float64) {
	c.do(func() bool { return c.endDrag("up") })
}

// PointerLeave ends a drag when the pointer leaves the carousel.
func (c *Carousel) PointerLeave(float64) {
	c.do(func() bool { return c.endDrag("leave") })
}

// PointerCancel ends a drag the platform aborted.
func (c *Carousel) PointerCancel(float64) {
	c.do(func() bool { return c.endDrag("cancel") })
}

// TouchStart starts a drag at the first touch point.
func (c *Carousel) TouchStart(xs []float64) {
	if len(xs) == 0 {
		return
	}
	c.PointerDown(xs[0])
}

// TouchMove drags with the first touch point.
func (c *Carousel) TouchMove(xs []float64) {
	if len(xs) == 0 {
		return
	}
	c.PointerMove(xs[0])
}

// TouchEnd ends a touch drag.
func (c *Carousel) TouchEnd() {
	c.do(func() bool { return c.endDrag("touchend") })
}

// TouchCancel ends a touch drag the platform aborted.
func (c *Carousel) TouchCancel() {
	c.do(func() bool { return c.endDrag("touchcancel") })
}

func (c *Carousel) endDrag(reason string) bool {
	if c.interaction != Dragging {
		return false
	}

	distance := c.anchor.accumulatedDistance
	c.anchor = nil
	c.interaction = Idle
	c.dropCapture()

	c.log.Debug("carousel drag ended",
		"carousel", c.name,
		"reason", reason,
		"distance", distance,
		"offset", c.offset,
	)

	if distance > DragThreshold {
		c.snapToNearest()
	}

	return true
}
