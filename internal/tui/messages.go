package tui

import "github.com/mmcdole/muse/internal/domain"

// Message types for the TUI

// EventMsg carries one push event from the backend listener
type EventMsg struct {
	Event domain.PushEvent
}

// StreamClosedMsg signals that the backend event stream ended
type StreamClosedMsg struct {
	Err error
}

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// TickMsg advances the spinner and playback clock
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
