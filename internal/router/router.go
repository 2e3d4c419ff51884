// Package router maps global key presses to backend requests and overlay
// changes.
package router

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/service"
)

// Outcome tells the caller what a key press did
type Outcome int

const (
	// Ignored keys fall through to the focused view
	Ignored Outcome = iota
	Handled
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Handled:
		return "handled"
	case Quit:
		return "quit"
	default:
		return "ignored"
	}
}

// Router is the single global keyboard listener
type Router struct {
	keys     KeyMap
	stack    *overlay.Stack
	playback *service.PlaybackService
	logger   *slog.Logger
}

// New creates a router using the default key map
func New(stack *overlay.Stack, playback *service.PlaybackService, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		keys:     Keys,
		stack:    stack,
		playback: playback,
		logger:   logger,
	}
}

// KeyMap returns the bindings the router matches against
func (r *Router) KeyMap() KeyMap { return r.keys }

// HandleKey routes msg. Transport shortcuts are suppressed while an overlay
// that takes typed input is visible; quit, search, volume and cancel are not.
func (r *Router) HandleKey(msg tea.KeyMsg) Outcome {
	k := r.keys

	switch {
	case key.Matches(msg, k.Quit):
		return Quit
	case key.Matches(msg, k.Search):
		r.stack.Toggle(overlay.Search)
		return Handled
	case key.Matches(msg, k.VolumeUp):
		r.playback.VolumeUp()
		return Handled
	case key.Matches(msg, k.VolumeDown):
		r.playback.VolumeDown()
		return Handled
	case key.Matches(msg, k.NewPlaylist):
		r.stack.OpenEdit(domain.Context{ID: 0, Type: domain.DataTypePlaylist})
		return Handled
	case key.Matches(msg, k.Cancel):
		hidden := r.stack.DismissTop()
		if hidden == nil {
			return Ignored
		}
		r.logger.Debug("dismissed overlays", "overlays", hidden)
		return Handled
	}

	if r.stack.TextEntryVisible() {
		return Ignored
	}

	switch {
	case key.Matches(msg, k.PlayPause):
		r.playback.TogglePlay()
	case key.Matches(msg, k.PrevTrack):
		r.playback.Prev()
	case key.Matches(msg, k.NextTrack):
		r.playback.Next()
	case key.Matches(msg, k.SeekBackward):
		r.playback.SeekBackward()
	case key.Matches(msg, k.SeekForward):
		r.playback.SeekForward()
	case key.Matches(msg, k.Silence):
		r.playback.Silence()
	default:
		return Ignored
	}
	return Handled
}
