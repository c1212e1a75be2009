package styles

import "github.com/charmbracelet/lipgloss"

// Warm gold-on-ivory palette of the storefront.
var (
	ColorFg      = lipgloss.Color("#2b2420") // primary foreground
	ColorMuted   = lipgloss.Color("#8a7f76") // muted/dim text
	ColorAccent  = lipgloss.Color("#b8860b") // gold accent
	ColorBlush   = lipgloss.Color("#c97b84") // rose highlight
	ColorError   = lipgloss.Color("#b3261e") // error red
	ColorSuccess = lipgloss.Color("#3b7a57") // success green
)

// Centralized style definitions for the TUI.
var (
	// Header styles.
	BrandStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	NavStyle          = lipgloss.NewStyle().Foreground(ColorFg)
	NavActiveStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorAccent)
	HeaderStyle       = lipgloss.NewStyle().Padding(0, 1)
	HeaderScrollStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	MenuStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	// Section styles.
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).MarginLeft(1)
	TaglineStyle      = lipgloss.NewStyle().Italic(true).Foreground(ColorBlush)
	QuoteStyle        = lipgloss.NewStyle().Italic(true).PaddingLeft(2).Foreground(ColorFg)
	AuthorStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(ColorMuted)
	CTAStyle          = lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(ColorAccent).Foreground(lipgloss.Color("#fffaf0"))

	// Carousel styles.
	CardStyle        = lipgloss.NewStyle().Padding(0, 1)
	CardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	CardBodyStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	PriceStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	ArtStyle         = lipgloss.NewStyle().Foreground(ColorBlush).Faint(true)
	ArrowStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	DotActiveStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	DotInactiveStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusMarkStyle   = lipgloss.NewStyle().Foreground(ColorAccent)

	// General utility styles.
	DimStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)

	// Form overlay style.
	FormBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)
)

// Glyphs shared across views.
const (
	ArrowPrev   = "‹"
	ArrowNext   = "›"
	DotActive   = "●"
	DotInactive = "○"
	Burger      = "☰"
	Separator   = " · "
)
