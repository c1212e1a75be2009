package carouselview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/irena/cmd/irena/internal/msgs"
	"github.com/germanamz/irena/pkg/carousel"
	"github.com/germanamz/irena/pkg/carousel/carouseltest"
)

func slides(n int) []carousel.Item {
	items := make([]carousel.Item, n)
	for i := range items {
		items[i] = carousel.Item{
			ID:      fmt.Sprint(i + 1),
			Title:   fmt.Sprintf("Бижу %d", i+1),
			Details: "14k злато",
			Price:   float64(100 + i),
		}
	}
	return items
}

func newModel(t *testing.T, n, width int, opts ...Option) (Model, *carouseltest.Clock) {
	t.Helper()
	clock := carouseltest.NewClock()
	opts = append([]Option{WithClock(clock)}, opts...)
	m := New("bestsellers", "Бестселъри", slides(n), carousel.Config{ShowPrices: true}, opts...)
	t.Cleanup(m.Close)
	m.SetWidth(width)
	return m, clock
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestSetWidthMeasures(t *testing.T) {
	m, _ := newModel(t, 6, 80)

	g := m.Carousel().Geometry()
	assert.InDelta(t, 640.0, g.TrackWidth, 1e-9)
	assert.Equal(t, 1, g.ItemsPerView)
	assert.Equal(t, 80, m.Width())
}

func TestBreakpointsFollowTerminalWidth(t *testing.T) {
	tests := []struct {
		cols    int
		perView int
	}{
		{80, 1},
		{96, 2},
		{127, 2},
		{128, 3},
	}
	for _, tt := range tests {
		m, _ := newModel(t, 6, tt.cols)
		assert.Equal(t, tt.perView, m.Carousel().ItemsPerView(), "cols=%d", tt.cols)
	}
}

func TestLaterWidthChangesAreDebounced(t *testing.T) {
	m, clock := newModel(t, 6, 80)

	m.SetWidth(130)
	assert.Equal(t, 1, m.Carousel().ItemsPerView())

	clock.Advance(carousel.ResizeDebounce)
	assert.Equal(t, 3, m.Carousel().ItemsPerView())
}

func TestKeysRequireFocus(t *testing.T) {
	m, _ := newModel(t, 6, 80)

	m, _ = m.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, 0, m.Carousel().CurrentSlideIndex())

	m.Focus()
	m, _ = m.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, 1, m.Carousel().CurrentSlideIndex())

	m, _ = m.Update(keyMsg(tea.KeyEnd))
	assert.Equal(t, 5, m.Carousel().CurrentSlideIndex())

	m, _ = m.Update(keyMsg(tea.KeyLeft))
	assert.Equal(t, 4, m.Carousel().CurrentSlideIndex())

	m, _ = m.Update(keyMsg(tea.KeyHome))
	assert.Equal(t, 0, m.Carousel().CurrentSlideIndex())

	m.Blur()
	assert.False(t, m.Focused())
}

func TestDragSnaps(t *testing.T) {
	m, clock := newModel(t, 6, 80)
	c := m.Carousel()

	m.HandlePointer(Pointer{X: 60, Action: Press})
	require.True(t, c.IsDragging())

	m.HandlePointer(Pointer{X: 10, Action: Motion})
	assert.InDelta(t, 400.0, c.Offset(), 1e-9)
	assert.Equal(t, carousel.TransitionNone, c.Transition())

	m.HandlePointer(Pointer{X: 10, Action: Release})
	assert.Equal(t, carousel.Snapping, c.Interaction())
	assert.InDelta(t, 0.0, c.Offset(), 1e-9)

	clock.Advance(carousel.SnapDuration)
	assert.Equal(t, carousel.Idle, c.Interaction())
}

func TestTapDoesNotSnap(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	c := m.Carousel()

	m.HandlePointer(Pointer{X: 41, Action: Press})
	m.HandlePointer(Pointer{X: 40, Action: Motion})
	m.HandlePointer(Pointer{X: 40, Action: Release})

	assert.Equal(t, carousel.Idle, c.Interaction())
	assert.InDelta(t, 8.0, c.Offset(), 1e-9)
}

func TestLeaveEndsDrag(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	m.SetHovered(true)

	m.HandlePointer(Pointer{X: 40, Action: Press})
	m.Leave(40)

	assert.False(t, m.Carousel().IsDragging())
	assert.False(t, m.Hovered())
}

func TestReleaseOutsideThroughHub(t *testing.T) {
	hub := carousel.NewReleaseHub()
	m, _ := newModel(t, 6, 80, WithHub(hub))

	m.HandlePointer(Pointer{X: 40, Action: Press})
	require.Equal(t, 1, hub.Active())

	hub.Dispatch(0)

	assert.False(t, m.Carousel().IsDragging())
	assert.Zero(t, hub.Active())
}

func TestControlsRow(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	c := m.Carousel()

	m.HandlePointer(Pointer{X: 79, Y: CardHeight, Action: Press})
	assert.Equal(t, 1, c.CurrentSlideIndex())

	m.HandlePointer(Pointer{X: 0, Y: CardHeight, Action: Press})
	assert.Equal(t, 0, c.CurrentSlideIndex())

	// Six stops: dots at 34, 36, ... 44.
	m.HandlePointer(Pointer{X: 38, Y: CardHeight, Action: Press})
	assert.Equal(t, 2, c.CurrentSlideIndex())

	m.HandlePointer(Pointer{X: 39, Y: CardHeight, Action: Press})
	assert.Equal(t, 2, c.CurrentSlideIndex())

	m.HandlePointer(Pointer{X: 60, Y: CardHeight, Action: Press})
	assert.Equal(t, 2, c.CurrentSlideIndex())
}

func TestControlsDisabledWhileDragging(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	c := m.Carousel()

	m.HandlePointer(Pointer{X: 40, Action: Press})
	m.HandlePointer(Pointer{X: 79, Y: CardHeight, Action: Press})

	assert.True(t, c.IsDragging())
	assert.Zero(t, c.Offset())
}

func TestStepGlidesToTarget(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	m.Carousel().Next()
	require.True(t, m.Animating())

	frames := 0
	for m.Step() {
		frames++
		require.Less(t, frames, 10*FPS, "animation did not settle")
	}

	assert.Positive(t, frames)
	assert.False(t, m.Animating())
	assert.InDelta(t, 640.0, m.shown, 1e-9)
}

func TestStepFollowsDragImmediately(t *testing.T) {
	m, _ := newModel(t, 6, 80)

	m.HandlePointer(Pointer{X: 60, Action: Press})
	m.HandlePointer(Pointer{X: 50, Action: Motion})

	assert.False(t, m.Step())
	assert.InDelta(t, 80.0, m.shown, 1e-9)
}

func TestViewLayout(t *testing.T) {
	m, _ := newModel(t, 6, 80)

	view := m.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, Height)
	for i, line := range lines {
		assert.Equal(t, 80, ansi.StringWidth(line), "line %d", i)
	}
	assert.Contains(t, view, "Бижу 1")
	assert.NotContains(t, view, "Бижу 2")
	assert.Contains(t, view, "100 лв")
	assert.Contains(t, lines[CardHeight], "‹")
	assert.Contains(t, lines[CardHeight], "›")
}

func TestViewShowsSeveralPerView(t *testing.T) {
	m, _ := newModel(t, 6, 130)

	view := m.View()

	assert.Contains(t, view, "Бижу 1")
	assert.Contains(t, view, "Бижу 3")
	assert.NotContains(t, view, "Бижу 4")
}

func TestViewHidesPricesWhenDisabled(t *testing.T) {
	m := New("collections", "Колекции", slides(3), carousel.Config{}, WithClock(carouseltest.NewClock()))
	t.Cleanup(m.Close)
	m.SetWidth(80)

	assert.NotContains(t, m.View(), "лв")
}

func TestViewEmpty(t *testing.T) {
	m, _ := newModel(t, 0, 80)

	assert.Contains(t, m.View(), "Няма налични продукти")
	assert.Equal(t, "Slide 1 of 1", m.Announcement())
}

func TestChangedMsgClearsPending(t *testing.T) {
	m, _ := newModel(t, 6, 80)
	m.notify.pending.Store(true)

	m, _ = m.Update(msgs.CarouselChangedMsg{ID: "collections"})
	assert.True(t, m.notify.pending.Load())

	m, _ = m.Update(msgs.CarouselChangedMsg{ID: "bestsellers"})
	assert.False(t, m.notify.pending.Load())
}

func TestNotifyWithoutProgram(t *testing.T) {
	m, _ := newModel(t, 6, 80)

	assert.NotPanics(t, func() { m.Carousel().Next() })
	assert.False(t, m.notify.pending.Load())
}
