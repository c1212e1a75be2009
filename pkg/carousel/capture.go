package carousel

import (
	"slices"
	"sync"
)

// Release ends a pointer capture. Calling it more than once is harmless.
type Release func()

// Capturer hands out document-level pointer-release subscriptions. The
// carousel captures while a drag is active so that a release happening
// outside its bounds still ends the drag.
type Capturer interface {
	Capture(onRelease func(x float64)) Release
}

// ReleaseHub is a Capturer fed by the host: every pointer release the host
// observes outside a carousel is passed to Dispatch and forwarded to the
// live captures.
type ReleaseHub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func(float64)
}

// NewReleaseHub returns an empty hub.
func NewReleaseHub() *ReleaseHub {
	return &ReleaseHub{subs: make(map[uint64]func(float64))}
}

// Capture registers onRelease until the returned Release is called.
func (h *ReleaseHub) Capture(onRelease func(x float64)) Release {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs[id] = onRelease

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Dispatch delivers a release at x to every live capture, oldest first.
// Subscribers run without the hub lock held, so they may release their
// capture from inside the callback.
func (h *ReleaseHub) Dispatch(x float64) {
	h.mu.Lock()
	ids := make([]uint64, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(float64), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.subs[id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(x)
	}
}

// Active returns the number of live captures.
func (h *ReleaseHub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

type noCapture struct{}

func (noCapture) Capture(func(float64)) Release { return func() {} }
