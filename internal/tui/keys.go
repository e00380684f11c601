package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Toggle, Remove key.Binding
	Add, Submit    key.Binding
	Cancel         key.Binding
	Increment      key.Binding
	Decrement      key.Binding
	ResetCounter   key.Binding
	ToggleTheme    key.Binding
	ResetAll       key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "done")),
		Remove:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Add:          key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new todo")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Increment:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "+1")),
		Decrement:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "-1")),
		ResetCounter: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset counter")),
		ToggleTheme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ResetAll:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Increment, k.Decrement, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Remove},
		{k.Add, k.Submit, k.Cancel},
		{k.Increment, k.Decrement, k.ResetCounter},
		{k.ToggleTheme, k.ResetAll, k.Help, k.Quit},
	}
}

// inputKeyMap is shown while the draft field has focus.
type inputKeyMap struct{ keys keyMap }

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.keys.Submit, k.keys.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
