package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/germanamz/irena/cmd/irena/internal/carouselview"
	"github.com/germanamz/irena/cmd/irena/internal/format"
	"github.com/germanamz/irena/cmd/irena/internal/msgs"
	"github.com/germanamz/irena/cmd/irena/internal/styles"
	"github.com/germanamz/irena/pkg/carousel"
	"github.com/germanamz/irena/pkg/forms"
	"github.com/germanamz/irena/pkg/site"
)

// State represents the application state machine.
type State int

const (
	StateBrowsing State = iota
	StateForm
	StateSubmitting
)

// NarrowWidth is the terminal width below which the navigation collapses
// into a menu.
const NarrowWidth = 96

// carouselSections lists the carousel sections in page order.
var carouselSections = []struct {
	id    string
	title string
}{
	{site.SectionCollections, "Колекции"},
	{site.SectionBestsellers, "Бестселъри"},
}

type settings struct {
	clock     carousel.Clock
	log       *slog.Logger
	submitter *forms.Submitter
}

// Option customises the page model.
type Option func(*settings)

// WithClock drives every carousel's timers from c.
func WithClock(c carousel.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLogger sets the page logger, shared with the carousels.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithSubmitter replaces the form submitter.
func WithSubmitter(sub *forms.Submitter) Option {
	return func(s *settings) { s.submitter = sub }
}

// Model is the root bubbletea model: one scrolling storefront page.
type Model struct {
	ctx       context.Context
	log       *slog.Logger
	cfg       site.Config
	program   *tea.Program
	hub       *carousel.ReleaseHub
	carousels []carouselview.Model
	focus     int // index into carousels, -1 for none
	submitter *forms.Submitter

	vp       viewport.Model
	help     help.Model
	keys     KeyMap
	state    State
	menuOpen bool
	showHelp bool
	framing  bool

	form       *huh.Form
	formKind   forms.Kind
	contact    *forms.Contact
	newsletter *forms.Newsletter

	about       string // rendered markdown
	anchors     map[string]int
	carouselTop []int
	ctaLine     int

	status      string
	statusStyle lipgloss.Style

	width  int
	height int
}

// New builds the page for cfg.
func New(ctx context.Context, cfg site.Config, opts ...Option) (Model, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.submitter == nil {
		s.submitter = forms.NewSubmitter(forms.WithSubmitLogger(s.log))
	}

	m := Model{
		ctx:       ctx,
		log:       s.log,
		cfg:       cfg,
		hub:       carousel.NewReleaseHub(),
		focus:     -1,
		submitter: s.submitter,
		vp:        viewport.New(0, 0),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		anchors:   map[string]int{},
	}

	for _, sec := range carouselSections {
		cc, err := cfg.Carousel(sec.id)
		if err != nil {
			m.Close()
			return Model{}, err
		}
		viewOpts := []carouselview.Option{
			carouselview.WithHub(m.hub),
			carouselview.WithLogger(s.log),
			carouselview.WithCellWidth(cfg.CellWidthPx),
		}
		if s.clock != nil {
			viewOpts = append(viewOpts, carouselview.WithClock(s.clock))
		}
		m.carousels = append(m.carousels, carouselview.New(sec.id, sec.title, cfg.Slides(sec.id), cc, viewOpts...))
	}

	return m, nil
}

// Close unmounts every carousel.
func (m Model) Close() {
	for _, cv := range m.carousels {
		cv.Close()
	}
}

// State returns the current application state.
func (m Model) State() State { return m.state }

// Carousel returns the carousel of a section, or nil.
func (m Model) Carousel(id string) *carousel.Carousel {
	if i := m.carouselIndex(id); i >= 0 {
		return m.carousels[i].Carousel()
	}
	return nil
}

func (m Model) carouselIndex(id string) int {
	for i, cv := range m.carousels {
		if cv.ID == id {
			return i
		}
	}
	return -1
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.Brand)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case msgs.ProgramReadyMsg:
		m.program = msg.Program
		for _, cv := range m.carousels {
			cv.Attach(msg.Program)
		}
		return m, nil

	case msgs.CarouselChangedMsg:
		for i := range m.carousels {
			m.carousels[i], _ = m.carousels[i].Update(msg)
		}
		m.refresh()
		return m, m.animate()

	case msgs.FrameMsg:
		m.framing = false
		for i := range m.carousels {
			m.carousels[i].Step()
		}
		m.refresh()
		return m, m.animate()

	case msgs.SiteReloadedMsg:
		m.applySite(msg.Config)
		return m, m.animate()

	case msgs.SiteReloadFailedMsg:
		m.setStatus("Каталогът не е обновен: "+msg.Err.Error(), styles.ErrorStyle)
		return m, nil

	case msgs.FormCompletedMsg:
		if m.state != StateForm {
			return m, nil
		}
		m.state = StateSubmitting
		m.setStatus("Изпращане…", styles.StatusStyle)
		var contact forms.Contact
		var newsletter forms.Newsletter
		if m.contact != nil {
			contact = *m.contact
		}
		if m.newsletter != nil {
			newsletter = *m.newsletter
		}
		return m, submitCmd(m.ctx, m.submitter, m.formKind, contact, newsletter)

	case msgs.FormAbortedMsg:
		m.closeForm()
		return m, nil

	case msgs.FormSubmittedMsg:
		return m.handleSubmitted(msg)

	case tea.MouseMsg:
		if m.state != StateBrowsing {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == StateBrowsing {
			return m.handleKey(msg)
		}
	}

	if m.form != nil && m.state == StateForm {
		f, cmd := m.form.Update(msg)
		if ff, ok := f.(*huh.Form); ok {
			m.form = ff
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if m.width < NarrowWidth {
		m.menuOpen = false
	}

	format.InitMarkdownRenderer(m.width - 2)
	m.about = format.RenderMarkdown(m.cfg.About)
	m.help.Width = m.width

	for i := range m.carousels {
		m.carousels[i].SetWidth(m.width)
	}
	if m.form != nil {
		m.form = m.form.WithWidth(min(formWidth, m.width-4))
	}

	m.layout()
	m.refresh()
	return m, m.animate()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.setFocus((m.focus+2)%(len(m.carousels)+1) - 1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.FocusBack):
		m.setFocus((m.focus+len(m.carousels)+1)%(len(m.carousels)+1) - 1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.menuOpen = false
		m.setFocus(-1)
		m.layout()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		if m.width < NarrowWidth {
			m.menuOpen = !m.menuOpen
			m.layout()
		}
		return m, nil

	case key.Matches(msg, m.keys.Sections):
		i := int(msg.Runes[0] - '1')
		if i < len(m.cfg.Navigation) {
			m.scrollTo(m.cfg.Navigation[i].Anchor())
		}
		return m, nil

	case key.Matches(msg, m.keys.Explore):
		if m.focus < 0 {
			m.scrollTo(site.SectionBestsellers)
		}
		return m, nil

	case key.Matches(msg, m.keys.Contact):
		return m.openForm(forms.KindContact)

	case key.Matches(msg, m.keys.Newsletter):
		return m.openForm(forms.KindNewsletter)
	}

	if m.focus >= 0 {
		switch {
		case key.Matches(msg, m.keys.Carousel.Prev, m.keys.Carousel.Next, m.keys.Carousel.First, m.keys.Carousel.Last):
			var cmd tea.Cmd
			m.carousels[m.focus], cmd = m.carousels[m.focus].Update(msg)
			m.refresh()
			return m, tea.Batch(cmd, m.animate())
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	for j := range m.carousels {
		m.carousels[j].Blur()
	}
	m.focus = i
	if i < 0 || i >= len(m.carousels) {
		m.focus = -1
		return
	}
	m.carousels[i].Focus()
	m.scrollTo(m.carousels[i].ID)
}

// scrollTo moves the viewport to a section anchor and closes the menu.
func (m *Model) scrollTo(anchor string) {
	line, ok := m.anchors[anchor]
	if !ok {
		return
	}
	m.vp.SetYOffset(line)
	if m.menuOpen {
		m.menuOpen = false
		m.layout()
	}
}

func (m Model) openForm(kind forms.Kind) (tea.Model, tea.Cmd) {
	width := min(formWidth, max(m.width-4, 20))
	m.formKind = kind
	switch kind {
	case forms.KindContact:
		m.contact = &forms.Contact{Subject: forms.SubjectGeneral}
		m.form = newContactForm(m.contact, width)
	default:
		m.newsletter = &forms.Newsletter{}
		m.form = newNewsletterForm(m.newsletter, width)
	}
	m.state = StateForm
	m.menuOpen = false
	m.status = ""
	m.layout()
	return m, m.form.Init()
}

func (m *Model) closeForm() {
	m.state = StateBrowsing
	m.form = nil
	m.contact = nil
	m.newsletter = nil
}

func (m Model) handleSubmitted(msg msgs.FormSubmittedMsg) (tea.Model, tea.Cmd) {
	kind := m.formKind
	m.closeForm()

	if msg.Err != nil {
		m.log.Warn("form submission failed", "kind", string(kind), "error", msg.Err)
		m.setStatus("Грешка при изпращане: "+msg.Err.Error(), styles.ErrorStyle)
		return m, nil
	}

	if kind == forms.KindContact {
		m.setStatus("Благодарим! Ще се свържем с вас до 24 часа.", styles.SuccessStyle)
	} else {
		m.setStatus("Благодарим за абонамента!", styles.SuccessStyle)
	}
	return m, nil
}

func (m *Model) setStatus(text string, style lipgloss.Style) {
	m.status = text
	m.statusStyle = style
}

// applySite swaps in a reloaded catalog, keeping every carousel mounted.
func (m *Model) applySite(cfg site.Config) {
	for i := range m.carousels {
		cv := m.carousels[i]
		before := cv.Carousel().Items()
		after := cfg.Slides(cv.ID)

		diff, err := site.DiffSlides(cv.ID, before, after)
		if err != nil {
			m.log.Warn("catalog diff failed", "section", cv.ID, "error", err)
		} else if diff != "" {
			m.log.Info("catalog slides changed", "section", cv.ID, "diff", diff)
		}
		cv.Carousel().SetItems(after)

		if cc, err := cfg.Carousel(cv.ID); err == nil {
			cv.Carousel().SetShowPrices(cc.ShowPrices)
			cv.Carousel().SetAutoPlayInterval(cc.AutoPlayInterval)
			cv.Carousel().SetAutoPlay(cc.AutoPlay)
		} else {
			m.log.Warn("carousel settings ignored", "section", cv.ID, "error", err)
		}
	}

	m.cfg = cfg
	m.about = format.RenderMarkdown(cfg.About)
	m.setStatus("Каталогът е обновен", styles.SuccessStyle)
	m.refresh()
}

// animate schedules the next frame while any carousel is moving.
func (m *Model) animate() tea.Cmd {
	if m.framing {
		return nil
	}
	for _, cv := range m.carousels {
		if cv.Animating() {
			m.framing = true
			return frameCmd()
		}
	}
	return nil
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/carouselview.FPS, func(t time.Time) tea.Msg {
		return msgs.FrameMsg(t)
	})
}

// layout sizes the viewport between the header and the footer.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.vp.Width = m.width
	m.vp.Height = max(m.height-m.headerHeight()-m.footerHeight(), 1)
}

// refresh rebuilds the page content.
func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	m.vp.SetContent(m.buildPage())
}
