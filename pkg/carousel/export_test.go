package carousel

// HasDragAnchor reports whether a drag anchor is recorded.
func (c *Carousel) HasDragAnchor() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.anchor != nil
}

// PendingSnap reports whether the snap settle timer is armed.
func (c *Carousel) PendingSnap() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snap.pending()
}
