// Package carouselview renders a carousel engine as a bubbletea component.
// Terminal cells are mapped to engine pixels at a fixed cell width, the
// visible slice of the track is cut out of a strip of cards, and the engine's
// transition hint drives a spring animation between frames.
package carouselview

import (
	"log/slog"
	"math"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/germanamz/irena/cmd/irena/internal/format"
	"github.com/germanamz/irena/cmd/irena/internal/msgs"
	"github.com/germanamz/irena/cmd/irena/internal/styles"
	"github.com/germanamz/irena/pkg/carousel"
)

// Layout, in terminal rows.
const (
	CardHeight = 8
	Height     = CardHeight + 1 // cards plus the controls row
)

// FPS is the animation frame rate.
const FPS = 60

// Springs for the two animated transitions. Snap settles faster than glide.
var (
	snapSpring  = harmonica.NewSpring(harmonica.FPS(FPS), 9.0, 1.0)
	glideSpring = harmonica.NewSpring(harmonica.FPS(FPS), 5.0, 1.0)
)

// settleEpsilon is the distance and speed in pixels under which an animation
// is considered finished.
const settleEpsilon = 0.5

// Action is what a pointer did.
type Action int

const (
	Press Action = iota
	Motion
	Release
)

// Pointer is a mouse event in component coordinates: X in cells from the
// left edge, Y in rows from the first card row.
type Pointer struct {
	X, Y   int
	Action Action
}

// KeyMap holds the carousel bindings used while it has focus.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultKeyMap returns the standard carousel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		First: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
	}
}

// notifier turns engine change callbacks into CarouselChangedMsg. At most
// one message is in flight per carousel; the flag is cleared when Update
// sees it.
type notifier struct {
	id      string
	program atomic.Pointer[tea.Program]
	pending atomic.Bool
}

func (n *notifier) notify() {
	p := n.program.Load()
	if p == nil || !n.pending.CompareAndSwap(false, true) {
		return
	}
	// Send blocks until the event loop reads it, and the engine may call
	// this from inside Update.
	go p.Send(msgs.CarouselChangedMsg{ID: n.id})
}

// Model is one carousel section.
type Model struct {
	ID    string
	Title string

	c      *carousel.Carousel
	notify *notifier
	keys   KeyMap
	cellPx int

	width    int
	measured bool
	focused  bool
	hovered  bool

	shown float64 // animated offset in pixels
	vel   float64

	dots paginator.Model
}

type settings struct {
	clock  carousel.Clock
	hub    *carousel.ReleaseHub
	log    *slog.Logger
	cellPx int
}

// Option customises a Model.
type Option func(*settings)

// WithClock drives the engine's timers from c.
func WithClock(c carousel.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithHub routes drag captures through h, which the page dispatches
// releases to when they land outside the carousel.
func WithHub(h *carousel.ReleaseHub) Option {
	return func(s *settings) { s.hub = h }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithCellWidth sets how many pixels one terminal cell stands for.
func WithCellWidth(px int) Option {
	return func(s *settings) { s.cellPx = px }
}

// New mounts a carousel section.
func New(id, title string, items []carousel.Item, cfg carousel.Config, opts ...Option) Model {
	s := settings{cellPx: 8}
	for _, opt := range opts {
		opt(&s)
	}
	if s.hub == nil {
		s.hub = carousel.NewReleaseHub()
	}
	if s.cellPx <= 0 {
		s.cellPx = 8
	}

	n := &notifier{id: id}
	engineOpts := []carousel.Option{
		carousel.WithName(id),
		carousel.WithCapturer(s.hub),
		carousel.WithOnChange(n.notify),
	}
	if s.clock != nil {
		engineOpts = append(engineOpts, carousel.WithClock(s.clock))
	}
	if s.log != nil {
		engineOpts = append(engineOpts, carousel.WithLogger(s.log))
	}

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = styles.DotActiveStyle.Render(styles.DotActive) + " "
	dots.InactiveDot = styles.DotInactiveStyle.Render(styles.DotInactive) + " "

	return Model{
		ID:     id,
		Title:  title,
		c:      carousel.New(items, cfg, engineOpts...),
		notify: n,
		keys:   DefaultKeyMap(),
		cellPx: s.cellPx,
		dots:   dots,
	}
}

// Carousel exposes the engine.
func (m Model) Carousel() *carousel.Carousel { return m.c }

// KeyMap returns the bindings active while focused.
func (m Model) KeyMap() KeyMap { return m.keys }

// Attach lets the engine notify p about changes made by its timers.
func (m Model) Attach(p *tea.Program) {
	m.notify.program.Store(p)
}

// Close unmounts the engine.
func (m Model) Close() {
	m.c.Close()
}

// SetWidth lays the track out over cols cells. The first call measures
// immediately; later calls go through the engine's resize debounce.
func (m *Model) SetWidth(cols int) {
	if cols <= 0 || cols == m.width {
		return
	}
	m.width = cols
	px := cols * m.cellPx
	if !m.measured {
		m.c.Measure(px, float64(px))
		m.measured = true
		m.shown = m.c.Offset()
		return
	}
	m.c.Resize(px, float64(px))
}

// Width is the track width in cells.
func (m Model) Width() int { return m.width }

// Focus gives the carousel keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// SetHovered tells the engine whether the pointer rests over the carousel.
func (m *Model) SetHovered(hovered bool) {
	if m.hovered == hovered {
		return
	}
	m.hovered = hovered
	m.c.SetHovered(hovered)
}

// Hovered reports whether the pointer rests over the carousel.
func (m Model) Hovered() bool { return m.hovered }

// Announcement is the status text for the current slide.
func (m Model) Announcement() string { return m.c.Announcement() }

func (m Model) px(cells int) float64 {
	return float64(cells * m.cellPx)
}

// Update handles change notifications and, while focused, navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgs.CarouselChangedMsg:
		if msg.ID == m.ID {
			m.notify.pending.Store(false)
		}
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.c.Prev()
		case key.Matches(msg, m.keys.Next):
			m.c.Next()
		case key.Matches(msg, m.keys.First):
			m.c.GoToSlide(0)
		case key.Matches(msg, m.keys.Last):
			m.c.GoToSlide(m.c.TotalSlideCount() - 1)
		}
	}
	return m, nil
}

// Step advances the animation by one frame and reports whether it is still
// moving. While dragging the track follows the pointer without easing.
func (m *Model) Step() bool {
	target := m.c.Offset()

	switch m.c.Transition() {
	case carousel.TransitionNone:
		m.shown, m.vel = target, 0
		return false
	case carousel.TransitionSnap:
		m.shown, m.vel = snapSpring.Update(m.shown, m.vel, target)
	default:
		m.shown, m.vel = glideSpring.Update(m.shown, m.vel, target)
	}

	if math.Abs(m.shown-target) < settleEpsilon && math.Abs(m.vel) < settleEpsilon {
		m.shown, m.vel = target, 0
		return false
	}
	return true
}

// Animating reports whether the drawn offset lags the engine offset.
func (m Model) Animating() bool {
	return m.shown != m.c.Offset()
}

// HandlePointer applies a mouse event that landed on the carousel rows.
// Releases outside the carousel are delivered through the hub instead.
func (m Model) HandlePointer(p Pointer) {
	x := m.px(p.X)
	switch p.Action {
	case Press:
		if p.Y < CardHeight {
			m.c.PointerDown(x)
			return
		}
		m.pressControls(p.X)
	case Motion:
		m.c.PointerMove(x)
	case Release:
		m.c.PointerUp(x)
	}
}

// Leave ends a drag because the pointer left the carousel rows.
func (m *Model) Leave(cells int) {
	m.SetHovered(false)
	m.c.PointerLeave(m.px(cells))
}

func (m Model) pressControls(x int) {
	if m.c.IsDragging() {
		return
	}
	switch {
	case x <= 1:
		m.c.Prev()
	case x >= m.width-2:
		m.c.Next()
	default:
		if i, ok := m.dotAt(x); ok {
			m.c.GoToSlide(i)
		}
	}
}

// dotsStart is the first cell of the indicator dots on the controls row.
func (m Model) dotsStart(stops int) int {
	return max((m.width-(stops*2-1))/2, 2)
}

// dotAt maps a controls-row cell to a slide stop.
func (m Model) dotAt(x int) (int, bool) {
	stops := m.c.TotalSlideCount()
	rel := x - m.dotsStart(stops)
	if rel < 0 || rel%2 != 0 || rel/2 >= stops {
		return 0, false
	}
	return rel / 2, true
}

// View renders the cards and the controls row.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	lines := m.renderTrack()
	lines = append(lines, m.renderControls())
	return strings.Join(lines, "\n")
}

func (m Model) renderTrack() []string {
	g := m.c.Geometry()
	items := m.c.Items()

	if len(items) == 0 {
		lines := make([]string, CardHeight)
		for i := range lines {
			lines[i] = strings.Repeat(" ", m.width)
		}
		lines[CardHeight/2] = styles.DimStyle.Render(format.Center("Няма налични продукти", m.width))
		return lines
	}

	perView := max(g.ItemsPerView, 1)
	itemCells := float64(m.width) / float64(perView)
	cards := make([]string, len(items))
	for i, it := range items {
		left := int(math.Round(float64(i) * itemCells))
		right := int(math.Round(float64(i+1) * itemCells))
		cards[i] = m.renderCard(it, right-left)
	}
	strip := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")

	start := int(math.Round(m.shown / float64(m.cellPx)))
	lines := make([]string, CardHeight)
	for i := range lines {
		var line string
		if i < len(strip) {
			line = ansi.Cut(strip[i], start, start+m.width)
		}
		if pad := m.width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return lines
}

func (m Model) renderCard(it carousel.Item, w int) string {
	inner := max(w-2, 1)

	art := styles.ArtStyle.Render(strings.Repeat("░", inner))
	alt := it.Alt
	if alt == "" {
		alt = it.Title
	}

	body := it.Description
	if body == "" {
		body = it.Details
	}

	lines := []string{
		art,
		styles.ArtStyle.Render(format.Center(format.Truncate(alt, inner), inner)),
		art,
		styles.CardTitleStyle.Render(format.Truncate(it.Title, inner)),
		styles.CardBodyStyle.Render(format.Truncate(body, inner)),
	}
	if m.c.ShowPrices() && it.Price > 0 {
		lines = append(lines, styles.PriceStyle.Render(format.FormatPrice(it.Price)))
	}

	return styles.CardStyle.Width(w).Height(CardHeight).MaxHeight(CardHeight).Render(strings.Join(lines, "\n"))
}

func (m Model) renderControls() string {
	stops := m.c.TotalSlideCount()
	dragging := m.c.IsDragging()

	arrow := styles.ArrowStyle
	if dragging {
		arrow = styles.DimStyle
	}
	prev := arrow.Render(styles.ArrowPrev)
	next := arrow.Render(styles.ArrowNext)
	if m.focused {
		prev = styles.FocusMarkStyle.Render("▸") + prev
	} else {
		prev = " " + prev
	}

	dots := m.dots
	dots.TotalPages = stops
	dots.Page = m.c.CurrentSlideIndex()
	if dragging {
		dots.ActiveDot = styles.DimStyle.Render(styles.DotActive) + " "
		dots.InactiveDot = styles.DimStyle.Render(styles.DotInactive) + " "
	}
	indicator := strings.TrimSuffix(dots.View(), " ")

	start := m.dotsStart(stops)
	gapLeft := max(start-2, 0)
	gapRight := max(m.width-start-ansi.StringWidth(indicator)-1, 0)

	return prev + strings.Repeat(" ", gapLeft) + indicator + strings.Repeat(" ", gapRight) + next
}
