package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Search       key.Binding
	Enter        key.Binding
	Back         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Close        key.Binding
	Copy         key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	NextCategory: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/h", "prev category")),
	Close:        key.NewBinding(key.WithKeys("esc", "enter", "c", "backspace"), key.WithHelp("esc", "close")),
	Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy image url")),
	Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Search, k.NextCategory, k.Enter, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Close},
		{k.Search, k.Back, k.NextCategory, k.PrevCategory},
		{k.Copy, k.Refresh, k.Help, k.Quit},
	}
}

// modalKeyMap is the help shown while the detail modal is open.
type modalKeyMap struct{ k keyMap }

func (m modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.k.Up, m.k.Down, m.k.Copy, m.k.Close}
}

func (m modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
