package msgs

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/irena/pkg/forms"
	"github.com/germanamz/irena/pkg/site"
)

// --- Background → TUI messages ---

// ProgramReadyMsg passes the *tea.Program to the model so carousels can
// notify it from their timer goroutines.
type ProgramReadyMsg struct {
	Program *tea.Program
}

// CarouselChangedMsg reports that the carousel with the given section ID
// changed state outside of Update (autoplay, snap settle, debounced resize).
type CarouselChangedMsg struct {
	ID string
}

// SiteReloadedMsg delivers a catalog that changed on disk and validated.
type SiteReloadedMsg struct {
	Config site.Config
}

// SiteReloadFailedMsg reports an edit of the catalog that did not load.
type SiteReloadFailedMsg struct {
	Err error
}

// --- Internal messages ---

// FrameMsg drives carousel animation.
type FrameMsg time.Time

// FormCompletedMsg is emitted by a form overlay once every field validated.
type FormCompletedMsg struct{}

// FormAbortedMsg is emitted when the user dismisses a form overlay.
type FormAbortedMsg struct{}

// FormSubmittedMsg is returned by the tea.Cmd that submits a form.
type FormSubmittedMsg struct {
	Receipt forms.Receipt
	Err     error
}
