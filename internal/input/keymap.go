package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the key bindings for the picker.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding

	PageNext     key.Binding
	PagePrevious key.Binding

	Pick    key.Binding
	Today   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding

	ViewMonth   key.Binding
	ViewYear    key.Binding
	ViewDecade  key.Binding
	ViewCentury key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns a KeyMap struct with default values.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		ExtendUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),
		ExtendLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ExtendRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),

		PageNext:     key.NewBinding(key.WithKeys("pgdown", "ctrl+right", "n"), key.WithHelp("n", "next page")),
		PagePrevious: key.NewBinding(key.WithKeys("pgup", "ctrl+left", "p"), key.WithHelp("p", "prev page")),

		Pick:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		ZoomIn:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("Z", "esc"), key.WithHelp("Z", "zoom out")),

		ViewMonth:   key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "month view")),
		ViewYear:    key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "year view")),
		ViewDecade:  key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "decade view")),
		ViewCentury: key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "century view")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the footer's single-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pick, k.PageNext, k.Today, k.ZoomIn, k.Quit}
}

// FullHelp implements help.KeyMap for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ExtendLeft, k.ExtendRight, k.Pick, k.Today},
		{k.PageNext, k.PagePrevious, k.ZoomIn, k.ZoomOut},
		{k.ViewMonth, k.ViewYear, k.ViewDecade, k.ViewCentury, k.Quit},
	}
}
