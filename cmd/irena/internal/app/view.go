package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/germanamz/irena/cmd/irena/internal/styles"
)

// navHit is the clickable span of a header navigation entry.
type navHit struct {
	start, end int
	anchor     string
	menu       bool
}

func (m Model) View() string {
	if m.width == 0 {
		return "Зареждане..."
	}

	header, _ := m.renderHeader()
	parts := []string{header}
	if menu := m.renderMenu(); menu != "" {
		parts = append(parts, menu)
	}

	body := m.vp.View()
	if m.form != nil {
		body = lipgloss.Place(m.width, m.vp.Height, lipgloss.Center, lipgloss.Center,
			styles.FormBorder.Render(m.form.View()))
	}
	parts = append(parts, body, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// narrow reports whether the navigation is collapsed into the menu.
func (m Model) narrow() bool {
	return m.width < NarrowWidth
}

// renderHeader draws the brand and navigation on one row and returns the
// clickable navigation spans.
func (m Model) renderHeader() (string, []navHit) {
	style := styles.HeaderStyle
	if m.scrolled() {
		style = styles.HeaderScrollStyle
	}

	brand := styles.BrandStyle.Render(strings.ToUpper(m.cfg.Brand))
	inner := m.width - 2

	var (
		nav  string
		hits []navHit
	)
	if m.narrow() {
		nav = styles.NavStyle.Render(styles.Burger + " меню")
		start := 1 + inner - ansi.StringWidth(nav)
		hits = append(hits, navHit{start: start, end: 1 + inner, menu: true})
	} else {
		active := m.activeSection()
		parts := make([]string, 0, len(m.cfg.Navigation))
		for _, n := range m.cfg.Navigation {
			s := styles.NavStyle
			if n.Anchor() != "" && n.Anchor() == active {
				s = styles.NavActiveStyle
			}
			parts = append(parts, s.Render(n.Label))
		}
		nav = strings.Join(parts, styles.Separator)

		x := 1 + inner - ansi.StringWidth(nav)
		for i, n := range m.cfg.Navigation {
			w := ansi.StringWidth(n.Label)
			hits = append(hits, navHit{start: x, end: x + w, anchor: n.Anchor()})
			x += w
			if i < len(m.cfg.Navigation)-1 {
				x += ansi.StringWidth(styles.Separator)
			}
		}
	}

	gap := max(inner-ansi.StringWidth(brand)-ansi.StringWidth(nav), 1)
	row := ansi.Truncate(brand+strings.Repeat(" ", gap)+nav, inner, "")
	return style.Width(m.width).Render(row), hits
}

// renderMenu draws the collapsed navigation when it is open.
func (m Model) renderMenu() string {
	if !m.menuOpen || !m.narrow() {
		return ""
	}
	lines := make([]string, 0, len(m.cfg.Navigation))
	active := m.activeSection()
	for i, n := range m.cfg.Navigation {
		s := styles.NavStyle
		if n.Anchor() == active {
			s = styles.NavActiveStyle
		}
		lines = append(lines, styles.DimStyle.Render(string(rune('1'+i))+" ")+s.Render(n.Label))
	}
	return styles.MenuStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) headerHeight() int {
	h := 1
	if menu := m.renderMenu(); menu != "" {
		h += lipgloss.Height(menu)
	}
	return h
}

func (m Model) footerHeight() int {
	if m.showHelp {
		return 1 + lipgloss.Height(m.help.View(m.keys))
	}
	return 1
}

// statusText is the left side of the status line: the last notice, or the
// slide announcement of the focused or hovered carousel.
func (m Model) statusText() string {
	if m.status != "" {
		return m.statusStyle.Render(m.status)
	}
	for _, cv := range m.carousels {
		if cv.Focused() || cv.Hovered() {
			return styles.StatusStyle.Render(cv.Title + ": " + cv.Announcement())
		}
	}
	return ""
}

func (m Model) renderFooter() string {
	left := m.statusText()
	var line string
	if m.showHelp {
		line = ansi.Truncate(" "+left, m.width, "…")
		return line + "\n" + m.help.View(m.keys)
	}

	h := m.help
	h.Width = max(m.width-ansi.StringWidth(left)-3, 0)
	right := h.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right) - 2
	if gap < 1 {
		return ansi.Truncate(" "+left, m.width, "…")
	}
	return " " + left + strings.Repeat(" ", gap) + right + " "
}
