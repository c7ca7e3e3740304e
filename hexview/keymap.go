package hexview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the hexview key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	PageUp, PageDown                          key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocStart, DocEnd                          key.Binding

	SwitchSection key.Binding
	SelectAll     key.Binding
	Center        key.Binding

	ScrollUp, ScrollDown, ScrollLeft, ScrollRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup", "alt+v"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+v"), key.WithHelp("pgdn", "page down")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+b"), key.WithHelp("home", "row start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "row end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to row start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to row end")),

		// Portable document movement: not every terminal reports ctrl+home.
		DocStart: key.NewBinding(key.WithKeys("ctrl+home", "alt+<"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end", "alt+>"), key.WithHelp("ctrl+end", "document end")),

		SwitchSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch section")),
		SelectAll:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Center:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "center caret")),

		ScrollUp:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "scroll down")),
		ScrollLeft:  key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "scroll right")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchSection, k.PageDown, k.DocEnd, k.Center}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageUp, k.PageDown, k.Home, k.End, k.DocStart, k.DocEnd},
		{k.ShiftLeft, k.ShiftRight, k.ShiftUp, k.ShiftDown, k.ShiftHome, k.ShiftEnd, k.SelectAll},
		{k.SwitchSection, k.Center, k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight},
	}
}
