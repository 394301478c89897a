package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings. It implements help.KeyMap so
// the footer help can render straight from it.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	NewTodo   key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Amount    key.Binding
	ThemeFlip key.Binding
	Dismiss   key.Binding
	Banner    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		NewTodo: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new todo"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear all"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "count up"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "count down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset count"),
		),
		Amount: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "add amount"),
		),
		ThemeFlip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "light/dark"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "dismiss banner"),
		),
		Banner: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "show banner"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the one-line footer help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTodo, k.Toggle, k.Increment, k.ThemeFlip, k.Help, k.Quit}
}

// FullHelp returns all bindings, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.NewTodo, k.Remove, k.Clear},
		{k.Increment, k.Decrement, k.Reset, k.Amount},
		{k.ThemeFlip, k.Dismiss, k.Banner, k.Help, k.Quit},
	}
}
