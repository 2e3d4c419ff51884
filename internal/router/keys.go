package router

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global shortcuts
type KeyMap struct {
	// Modal-independent
	Quit        key.Binding
	Search      key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	NewPlaylist key.Binding
	Cancel      key.Binding

	// Transport, suppressed while typing
	PlayPause    key.Binding
	PrevTrack    key.Binding
	NextTrack    key.Binding
	SeekBackward key.Binding
	SeekForward  key.Binding
	Silence      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+w"),
			key.WithHelp("C-q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "search"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("ctrl+up", "ctrl+shift+up"),
			key.WithHelp("C-↑", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("ctrl+down"),
			key.WithHelp("C-↓", "volume down"),
		),
		NewPlaylist: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new playlist"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		PrevTrack: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-←", "previous"),
		),
		NextTrack: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-→", "next"),
		),
		SeekBackward: key.NewBinding(
			key.WithKeys("ctrl+shift+left"),
			key.WithHelp("C-S-←", "rewind 10s"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("ctrl+shift+right"),
			key.WithHelp("C-S-→", "forward 10s"),
		),
		Silence: key.NewBinding(
			key.WithKeys("ctrl+shift+down"),
			key.WithHelp("C-S-↓", "silence"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// ShortHelp lists the bindings shown in the status line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.PrevTrack, k.NextTrack, k.Search, k.Quit}
}

// FullHelp groups every binding for the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Search, k.NewPlaylist, k.Cancel},
		{k.PlayPause, k.PrevTrack, k.NextTrack},
		{k.SeekBackward, k.SeekForward, k.VolumeUp, k.VolumeDown, k.Silence},
	}
}
