package projects

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the showcase bindings. Scrolling keys belong to the viewport.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
	All  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
		All:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.All}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
