package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/germanamz/irena/cmd/irena/internal/carouselview"
)

// KeyMap holds the page-level bindings.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Focus      key.Binding
	FocusBack  key.Binding
	Escape     key.Binding
	Menu       key.Binding
	Sections   key.Binding
	Explore    key.Binding
	Contact    key.Binding
	Newsletter key.Binding
	Carousel   carouselview.KeyMap
}

// DefaultKeyMap returns the standard page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus carousel")),
		FocusBack:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Sections:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to section")),
		Explore:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "shop bestsellers")),
		Contact:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Newsletter: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "newsletter")),
		Carousel:   carouselview.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Carousel.Prev, k.Carousel.Next, k.Contact, k.Newsletter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.FocusBack, k.Carousel.Prev, k.Carousel.Next, k.Carousel.First, k.Carousel.Last},
		{k.Sections, k.Explore, k.Menu, k.Escape},
		{k.Contact, k.Newsletter},
		{k.Help, k.Quit},
	}
}
