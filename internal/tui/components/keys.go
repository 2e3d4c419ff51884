package components

import "github.com/charmbracelet/bubbles/key"

// CursorKeyMap moves a cursor through lists, grids and pickers
type CursorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultCursorKeyMap returns the default cursor bindings
func DefaultCursorKeyMap() CursorKeyMap {
	return CursorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
	}
}

// PickerKeyMap drives menus and confirmation dialogs
type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
}

// DefaultPickerKeyMap returns the default picker bindings. Ctrl+N and
// Ctrl+P are left to the global router.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "tab"),
			key.WithHelp("↓", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// Package-level key map instances
var (
	CursorKeys = DefaultCursorKeyMap()
	PickerKeys = DefaultPickerKeyMap()
)
