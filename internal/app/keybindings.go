package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Pane keys live with
// their panes.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Save      key.Binding
	Help      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding

	ShrinkLeft  key.Binding
	GrowLeft    key.Binding
	LineNumbers key.Binding
	CopyPath    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "save and quit now"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "switch pane"),
		),
		ShrinkLeft: key.NewBinding(
			key.WithKeys("alt+["),
			key.WithHelp("alt+[", "narrow tree"),
		),
		GrowLeft: key.NewBinding(
			key.WithKeys("alt+]"),
			key.WithHelp("alt+]", "widen tree"),
		),
		LineNumbers: key.NewBinding(
			key.WithKeys("alt+n"),
			key.WithHelp("alt+n", "line numbers"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy path"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Save, k.FocusNext, k.Quit}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.FocusNext, k.CopyPath},
		{k.ShrinkLeft, k.GrowLeft, k.LineNumbers},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
