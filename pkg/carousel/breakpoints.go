package carousel

// Breakpoint maps a minimum window width to the number of slides shown at
// once.
type Breakpoint struct {
	MinWidth     int `yaml:"min_width"`
	ItemsPerView int `yaml:"items_per_view"`
}

// Default responsive widths.
const (
	TabletWidth  = 768
	DesktopWidth = 1024
)

// DefaultBreakpoints shows three slides on desktop widths, two on tablets and
// one otherwise.
var DefaultBreakpoints = []Breakpoint{
	{MinWidth: DesktopWidth, ItemsPerView: 3},
	{MinWidth: TabletWidth, ItemsPerView: 2},
}

// ItemsPerView picks the breakpoint with the largest MinWidth not exceeding
// windowWidth. Widths below every breakpoint show a single slide. The result
// is always at least 1.
func ItemsPerView(windowWidth int, breakpoints []Breakpoint) int {
	perView := 1
	best := -1
	for _, bp := range breakpoints {
		if windowWidth >= bp.MinWidth && bp.MinWidth > best {
			best = bp.MinWidth
			perView = bp.ItemsPerView
		}
	}

	return max(perView, 1)
}
