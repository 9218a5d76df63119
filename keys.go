package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	Edit          key.Binding
	Resume        key.Binding
	Undo          key.Binding
	Redo          key.Binding
	Copy          key.Binding
	Paste         key.Binding
	ToggleNumeric key.Binding
	Mute          key.Binding
	ExportPNG     key.Binding
	ExportText    key.Binding
	Help          key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "tear down the boards and quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "select previous board"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "select next board"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "type a message on the selected board"),
	),
	Resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "drop the message and resume the feed"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo last message change"),
	),
	Redo: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "redo last undone message change"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy the selected board to the clipboard"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "show the clipboard on the selected board"),
	),
	ToggleNumeric: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle the strict numeric drum"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle flap sound"),
	),
	ExportPNG: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "export the boards as PNG"),
	),
	ExportText: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "export the boards as text"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle this help screen"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "put the message on the board"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// helpBindings lists the bindings in help screen order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Edit, k.Confirm, k.Cancel, k.Resume, k.Undo, k.Redo,
		k.Copy, k.Paste, k.ToggleNumeric, k.Mute, k.ExportPNG, k.ExportText,
		k.Help, k.Quit,
	}
}
