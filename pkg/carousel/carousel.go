package carousel

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"
)

// Tunables shared by every carousel.
const (
	// SnapDuration is how long the eased settle transition runs.
	SnapDuration = 400 * time.Millisecond
	// ResizeDebounce coalesces bursts of Resize calls.
	ResizeDebounce = 150 * time.Millisecond
	// DefaultAutoPlayInterval is used when autoplay is on and no interval is set.
	DefaultAutoPlayInterval = 4000 * time.Millisecond
	// DragThreshold is the distance in pixels a gesture must travel before
	// its release snaps the track. Shorter gestures count as taps.
	DragThreshold = 20.0
	// SnapTolerance is the distance in pixels under which a snap is skipped.
	SnapTolerance = 5.0
)

// Item is one slide.
type Item struct {
	ID          string
	Image       string
	Alt         string
	Title       string
	Description string
	Price       float64 // 0 means no price
	Details     string
}

// Interaction is the gesture state of a carousel.
type Interaction int

const (
	Idle Interaction = iota
	Dragging
	Snapping
)

func (i Interaction) String() string {
	switch i {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Snapping:
		return "snapping"
	default:
		return fmt.Sprintf("interaction(%d)", int(i))
	}
}

// Transition tells the host how to animate the track towards Offset.
type Transition int

const (
	// TransitionNone follows the pointer exactly.
	TransitionNone Transition = iota
	// TransitionSnap is the eased settle that runs for SnapDuration.
	TransitionSnap
	// TransitionGlide is the short ease-out used for autoplay and
	// programmatic moves.
	TransitionGlide
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionSnap:
		return "snap"
	case TransitionGlide:
		return "glide"
	default:
		return fmt.Sprintf("transition(%d)", int(t))
	}
}

// Config holds the construction flags of a carousel.
type Config struct {
	ShowPrices          bool
	AutoPlay            bool
	AutoPlayInterval    time.Duration
	InitialItemsPerView int
	Breakpoints         []Breakpoint // nil means DefaultBreakpoints
}

// Option customises a Carousel.
type Option func(*Carousel)

// WithClock replaces the real clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(cr *Carousel) { cr.clock = c }
}

// WithCapturer sets the document-level release observer used during drags.
func WithCapturer(c Capturer) Option {
	return func(cr *Carousel) { cr.capturer = c }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(cr *Carousel) { cr.log = l }
}

// WithName labels the carousel in log records.
func WithName(name string) Option {
	return func(cr *Carousel) { cr.name = name }
}

// WithOnChange registers fn to run after any change to the observable state.
// It is called without internal locks held, possibly from a timer goroutine.
func WithOnChange(fn func()) Option {
	return func(cr *Carousel) { cr.onChange = fn }
}

type dragAnchor struct {
	originOffset        float64
	pointerStartX       float64
	accumulatedDistance float64
}

type measurement struct {
	windowWidth int
	trackWidth  float64
}

// Carousel is one mounted carousel. It is safe for concurrent use: gesture
// intake, timer callbacks and queries are serialised by an internal lock.
type Carousel struct {
	mu sync.Mutex

	cfg      Config
	clock    Clock
	capturer Capturer
	log      *slog.Logger
	name     string
	onChange func()

	items        []Item
	windowWidth  int
	trackWidth   float64
	itemsPerView int
	hovered      bool

	offset      float64
	interaction Interaction
	anchor      *dragAnchor
	release     Release

	autoplay      slot
	snap          slot
	resize        slot
	pendingResize measurement

	closed bool
}

// New mounts a carousel over items with a zero offset in the Idle state.
// Autoplay starts immediately when enabled; it has no effect until the
// track is measured.
func New(items []Item, cfg Config, opts ...Option) *Carousel {
	if cfg.AutoPlayInterval <= 0 {
		cfg.AutoPlayInterval = DefaultAutoPlayInterval
	}
	if cfg.Breakpoints == nil {
		cfg.Breakpoints = DefaultBreakpoints
	}

	c := &Carousel{
		cfg:          cfg,
		clock:        RealClock{},
		capturer:     noCapture{},
		items:        slices.Clone(items),
		itemsPerView: max(cfg.InitialItemsPerView, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.AutoPlay {
		c.mu.Lock()
		c.scheduleAutoplay()
		c.mu.Unlock()
	}

	return c
}

// do runs fn under the lock and notifies the host when fn reports a change.
func (c *Carousel) do(fn func() bool) {
	c.mu.Lock()
	changed := !c.closed && fn()
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

func (c *Carousel) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// schedule arms s to run fn after d. fn runs under the lock and is skipped
// when the carousel was closed or s was cancelled or re-armed meanwhile.
func (c *Carousel) schedule(s *slot, d time.Duration, fn func() bool) {
	s.cancel()
	seq := s.seq
	s.timer = c.clock.AfterFunc(d, func() {
		c.mu.Lock()
		if c.closed || s.seq != seq {
			c.mu.Unlock()
			return
		}
		s.timer = nil
		changed := fn()
		c.mu.Unlock()

		if changed {
			c.notify()
		}
	})
}

func (c *Carousel) geometry() Geometry {
	return Geometry{
		TrackWidth:   c.trackWidth,
		ItemsPerView: c.itemsPerView,
		Count:        len(c.items),
	}
}

// setOffset is the only writer of c.offset. It reports whether the value
// changed.
func (c *Carousel) setOffset(x float64) bool {
	next := c.geometry().Constrain(x)
	if next == c.offset {
		return false
	}
	c.offset = next

	return true
}

func (c *Carousel) scheduleAutoplay() {
	c.schedule(&c.autoplay, c.cfg.AutoPlayInterval, func() bool {
		changed := false
		if !c.hovered {
			changed = c.autoAdvance()
		}
		c.scheduleAutoplay()

		return changed
	})
}

func (c *Carousel) dropCapture() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// Measure applies a new window width and track width immediately.
func (c *Carousel) Measure(windowWidth int, trackWidth float64) {
	c.do(func() bool {
		c.resize.cancel()
		return c.applyMeasurement(measurement{windowWidth: windowWidth, trackWidth: trackWidth})
	})
}

// Resize records a new measurement and applies it once no further Resize
// arrives for ResizeDebounce.
func (c *Carousel) Resize(windowWidth int, trackWidth float64) {
	c.do(func() bool {
		c.pendingResize = measurement{windowWidth: windowWidth, trackWidth: trackWidth}
		c.schedule(&c.resize, ResizeDebounce, func() bool {
			return c.applyMeasurement(c.pendingResize)
		})

		return false
	})
}

func (c *Carousel) applyMeasurement(m measurement) bool {
	track := m.trackWidth
	if math.IsNaN(track) || math.IsInf(track, 0) || track < 0 {
		track = 0
	}

	perView := ItemsPerView(m.windowWidth, c.cfg.Breakpoints)
	changed := perView != c.itemsPerView || track != c.trackWidth

	c.windowWidth = m.windowWidth
	c.trackWidth = track
	c.itemsPerView = perView
	if c.setOffset(c.offset) {
		changed = true
	}

	if changed {
		c.log.Debug("carousel measured",
			"carousel", c.name,
			"window_width", m.windowWidth,
			"track_width", track,
			"items_per_view", perView,
			"offset", c.offset,
		)
	}

	return changed
}

// SetItems replaces the slide list. The offset is kept and re-clamped to the
// new range.
func (c *Carousel) SetItems(items []Item) {
	c.do(func() bool {
		c.items = slices.Clone(items)
		c.setOffset(c.offset)

		return true
	})
}

// SetAutoPlay turns autoplay on or off. Turning it on starts a fresh
// interval; repeating the current setting leaves the running one alone.
func (c *Carousel) SetAutoPlay(on bool) {
	c.do(func() bool {
		if on == c.cfg.AutoPlay {
			return false
		}
		c.cfg.AutoPlay = on
		if on {
			c.scheduleAutoplay()
		} else {
			c.autoplay.cancel()
		}

		return false
	})
}

// SetAutoPlayInterval changes the autoplay period. A running autoplay
// restarts with the new period. Non-positive values select
// DefaultAutoPlayInterval.
func (c *Carousel) SetAutoPlayInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultAutoPlayInterval
	}
	c.do(func() bool {
		if d == c.cfg.AutoPlayInterval {
			return false
		}
		c.cfg.AutoPlayInterval = d
		if c.cfg.AutoPlay {
			c.scheduleAutoplay()
		}

		return false
	})
}

// SetShowPrices toggles price rendering on the slides.
func (c *Carousel) SetShowPrices(show bool) {
	c.do(func() bool {
		if show == c.cfg.ShowPrices {
			return false
		}
		c.cfg.ShowPrices = show

		return true
	})
}

// SetHovered pauses autoplay advances while the pointer rests over the
// carousel. The interval keeps running.
func (c *Carousel) SetHovered(hovered bool) {
	c.do(func() bool {
		c.hovered = hovered
		return false
	})
}

// Close unmounts the carousel: pending autoplay, snap and resize callbacks
// are cancelled and an active drag capture is released. Further commands are
// ignored.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	c.autoplay.cancel()
	c.snap.cancel()
	c.resize.cancel()
	c.dropCapture()
	c.anchor = nil
	c.interaction = Idle

	c.log.Debug("carousel closed", "carousel", c.name)
}

// Offset is the current track translation in pixels.
func (c *Carousel) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.offset
}

// Interaction returns the gesture state.
func (c *Carousel) Interaction() Interaction {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.interaction
}

// IsDragging reports whether a drag is in progress. Hosts disable the
// indicator controls while it is true.
func (c *Carousel) IsDragging() bool {
	return c.Interaction() == Dragging
}

// Transition returns how the host should animate the track right now.
func (c *Carousel) Transition() Transition {
	switch c.Interaction() {
	case Dragging:
		return TransitionNone
	case Snapping:
		return TransitionSnap
	default:
		return TransitionGlide
	}
}

// CurrentSlideIndex is the stop nearest to the current offset.
func (c *Carousel) CurrentSlideIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.geometry().CurrentIndex(c.offset)
}

// TotalSlideCount is the number of distinct stops, not the number of slides.
func (c *Carousel) TotalSlideCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.geometry().StopCount()
}

// ItemsPerView is the slide count of the last applied measurement.
func (c *Carousel) ItemsPerView() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.itemsPerView
}

// Geometry returns the current layout.
func (c *Carousel) Geometry() Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.geometry()
}

// Items returns a copy of the slides.
func (c *Carousel) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

// ShowPrices reports whether slide prices should be rendered.
func (c *Carousel) ShowPrices() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.ShowPrices
}

// Progress is the offset as a fraction of the scrollable range, or 0 when
// nothing scrolls.
func (c *Carousel) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxOffset := c.geometry().MaxOffset()
	if maxOffset == 0 {
		return 0
	}

	return c.offset / maxOffset
}

// Announcement is the status text for assistive output, e.g. "Slide 2 of 4".
func (c *Carousel) Announcement() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.geometry()

	return fmt.Sprintf("Slide %d of %d", g.CurrentIndex(c.offset)+1, g.StopCount())
}
