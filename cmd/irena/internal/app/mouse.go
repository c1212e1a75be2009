package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/irena/cmd/irena/internal/carouselview"
	"github.com/germanamz/irena/pkg/site"
)

// handleMouse routes a mouse event to the header, a carousel or the page.
// Drags that leave a carousel end there; every release also goes through
// the release hub so it reaches whichever carousel is dragging.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	idx, row := -1, 0
	line := -1
	top := m.headerHeight()
	if msg.Y >= top && msg.Y < top+m.vp.Height {
		line = m.vp.YOffset + msg.Y - top
		idx, row = m.carouselAt(line)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case msg.Y < top:
			m.pressHeader(msg.X, msg.Y)
		case idx >= 0:
			m.carousels[idx].SetHovered(true)
			m.carousels[idx].HandlePointer(carouselview.Pointer{X: msg.X, Y: row, Action: carouselview.Press})
		case line == m.ctaLine:
			m.scrollTo(site.SectionBestsellers)
		}

	case tea.MouseActionMotion:
		for i := range m.carousels {
			if i == idx {
				m.carousels[i].SetHovered(true)
				m.carousels[i].HandlePointer(carouselview.Pointer{X: msg.X, Y: row, Action: carouselview.Motion})
				continue
			}
			if m.carousels[i].Hovered() || m.carousels[i].Carousel().IsDragging() {
				m.carousels[i].Leave(msg.X)
			}
		}

	case tea.MouseActionRelease:
		if idx >= 0 {
			m.carousels[idx].HandlePointer(carouselview.Pointer{X: msg.X, Y: row, Action: carouselview.Release})
		}
		// A drag started on another carousel may still hold a capture.
		m.hub.Dispatch(float64(msg.X * m.cfg.CellWidthPx))
	}

	m.refresh()
	return m, m.animate()
}

func (m *Model) pressHeader(x, y int) {
	if y == 0 {
		_, hits := m.renderHeader()
		for _, h := range hits {
			if x < h.start || x >= h.end {
				continue
			}
			if h.menu {
				m.menuOpen = !m.menuOpen
				m.layout()
				return
			}
			m.scrollTo(h.anchor)
			return
		}
		return
	}

	// Menu rows sit below the top border of the menu box.
	i := y - 2
	if m.menuOpen && i >= 0 && i < len(m.cfg.Navigation) {
		m.scrollTo(m.cfg.Navigation[i].Anchor())
	}
}
