package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/germanamz/irena/cmd/irena/internal/carouselview"
	"github.com/germanamz/irena/cmd/irena/internal/format"
	"github.com/germanamz/irena/cmd/irena/internal/styles"
)

// pageBuilder accumulates content lines and remembers where sections start.
type pageBuilder struct {
	lines   []string
	anchors map[string]int
}

func (b *pageBuilder) add(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b *pageBuilder) anchor(id string) {
	b.anchors[id] = len(b.lines)
}

func (b *pageBuilder) line() int {
	return len(b.lines)
}

// buildPage renders every section and records the anchor and carousel
// positions used for scrolling and mouse routing.
func (m *Model) buildPage() string {
	b := &pageBuilder{anchors: map[string]int{}}
	textWidth := max(m.width-4, 10)
	wrap := lipgloss.NewStyle().Width(textWidth).MarginLeft(2)

	// Hero.
	b.anchor("home")
	b.blank()
	b.add(format.Center(styles.BrandStyle.Render(spaced(strings.ToUpper(m.cfg.Brand))), m.width))
	b.blank()
	b.add(format.Center(styles.TaglineStyle.Render(m.cfg.Tagline), m.width))
	if m.cfg.HeroAlt != "" {
		b.add(format.Center(styles.DimStyle.Render(format.Truncate(m.cfg.HeroAlt, textWidth)), m.width))
	}
	b.blank()
	m.ctaLine = b.line()
	b.add(format.Center(styles.CTAStyle.Render("Разгледай бестселърите ↵"), m.width))
	b.blank()

	// About.
	b.anchor("about")
	b.add(styles.SectionTitleStyle.Render("За нас"))
	b.add(m.about)
	b.blank()

	// Carousels.
	m.carouselTop = m.carouselTop[:0]
	for _, cv := range m.carousels {
		b.anchor(cv.ID)
		b.add(styles.SectionTitleStyle.Render(cv.Title))
		b.blank()
		m.carouselTop = append(m.carouselTop, b.line())
		b.add(cv.View())
		b.blank()
	}

	// Testimonials.
	b.anchor("testimonials")
	b.add(styles.SectionTitleStyle.Render("Какво казват клиентите"))
	b.blank()
	for _, t := range m.cfg.Testimonials {
		b.add(styles.QuoteStyle.Width(textWidth).Render("„" + t.Text + "“"))
		b.add(styles.AuthorStyle.Render("– " + t.Author))
		b.blank()
	}

	// Newsletter.
	b.anchor("newsletter")
	b.add(styles.SectionTitleStyle.Render("Бюлетин"))
	b.add(wrap.Render("Първа научи за новите колекции. Натисни " + styles.BrandStyle.Render("n") + ", за да се абонираш."))
	b.blank()

	// Contact.
	b.anchor("contact")
	b.add(styles.SectionTitleStyle.Render("Контакт"))
	b.add(wrap.Render("Пиши ни на " + styles.BrandStyle.Render(m.cfg.ContactEmail) + " или натисни " + styles.BrandStyle.Render("c") + " за форма за контакт."))
	b.blank()

	// Footer.
	b.add(styles.DimStyle.Render(strings.Repeat("─", m.width)))
	labels := make([]string, 0, len(m.cfg.Navigation))
	for _, n := range m.cfg.Navigation {
		labels = append(labels, n.Label)
	}
	b.add(format.Center(styles.DimStyle.Render(strings.Join(labels, styles.Separator)), m.width))
	b.add(format.Center(styles.DimStyle.Render(fmt.Sprintf("© %s · ръчно изработени бижута", m.cfg.Brand)), m.width))

	m.anchors = b.anchors
	return strings.Join(b.lines, "\n")
}

// spaced puts a space between letters: "IRENA" -> "I R E N A".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// carouselAt maps a content line to a carousel and the row inside it.
func (m Model) carouselAt(line int) (int, int) {
	for i, top := range m.carouselTop {
		if line >= top && line < top+carouselview.Height {
			return i, line - top
		}
	}
	return -1, 0
}

// activeSection is the navigation anchor the viewport is reading, or "".
func (m Model) activeSection() string {
	mark := m.vp.YOffset + m.vp.Height/3
	active := ""
	best := -1
	for _, n := range m.cfg.Navigation {
		line, ok := m.anchors[n.Anchor()]
		if ok && line <= mark && line > best {
			active, best = n.Anchor(), line
		}
	}
	return active
}

// scrolled reports whether the page has left the top.
func (m Model) scrolled() bool {
	return m.vp.YOffset > 0
}
