package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen-local bindings. Transport, volume, quit and
// search live in the router's global key map.
type KeyMap struct {
	// Focus
	SwitchPane key.Binding
	Back       key.Binding

	// Actions on the selection
	Open       key.Binding
	Play       key.Binding
	PlayRandom key.Binding
	AddQueue   key.Binding
	Menu       key.Binding
	Delete     key.Binding

	// Ordering
	SortName  key.Binding
	SortAdded key.Binding
	SortTime  key.Binding

	// Panels and playback modes
	Queue    key.Binding
	Settings key.Binding
	Import   key.Binding
	Shuffle  key.Binding
	Repeat   key.Binding
	Mute     key.Binding
	Help     key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "esc"),
			key.WithHelp("⌫", "back"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/play"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		PlayRandom: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "play shuffled"),
		),
		AddQueue: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to queue"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "actions"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),

		SortName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by name"),
		),
		SortAdded: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by added"),
		),
		SortTime: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by time"),
		),

		Queue: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "queue"),
		),
		Settings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "settings"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		Mute: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Play, k.Menu, k.Queue, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPane, k.Back, k.Open, k.Play, k.PlayRandom, k.AddQueue, k.Menu, k.Delete},
		{k.SortName, k.SortAdded, k.SortTime},
		{k.Queue, k.Settings, k.Import, k.Shuffle, k.Repeat, k.Mute, k.Help},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
