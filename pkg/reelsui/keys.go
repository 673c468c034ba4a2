package reelsui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the reels viewer.
type KeyMap struct {
	// Scrolling. Up/Down move a line at a time so a card can be partly
	// visible; page keys snap to the next whole card.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Like     key.Binding
	Save     key.Binding
	Comments key.Binding
	Dismiss  key.Binding
	Refresh  key.Binding

	// Comments panel.
	Submit key.Binding
	Close  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u", "K"),
		key.WithHelp("K", "prev reel"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d", "J", " "),
		key.WithHelp("J", "next reel"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Like: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "like"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Comments: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comments"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "post"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (keys KeyMap) feedHelp() []key.Binding {
	return []key.Binding{keys.Down, keys.PageDown, keys.Like, keys.Save, keys.Comments, keys.Refresh, keys.Quit}
}

func (keys KeyMap) commentHelp() []key.Binding {
	return []key.Binding{keys.Submit, keys.Close}
}
