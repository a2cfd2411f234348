package ui

import "github.com/charmbracelet/bubbles/key"

// --- Key Map ---

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextLink key.Binding
	PrevLink key.Binding
	Open     key.Binding
	Theme    key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "Scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Top:      key.NewBinding(key.WithKeys("home", "g")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G")),
		NextLink: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "Next link")),
		PrevLink: key.NewBinding(key.WithKeys("shift+tab", "h", "left")),
		Open:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "Open")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Theme")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reload")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	}
}

// hintBindings are shown in the status bar, in order.
func (k keyMap) hintBindings() []key.Binding {
	return []key.Binding{k.Up, k.NextLink, k.Open, k.Theme, k.Reload, k.Quit}
}
