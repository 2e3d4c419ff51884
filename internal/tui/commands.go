package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
)

// Command factories

// WaitForEventCmd blocks on the next push event. errFn reports why the
// stream ended once the channel is closed.
func WaitForEventCmd(events <-chan domain.PushEvent, errFn func() error) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			var err error
			if errFn != nil {
				err = errFn()
			}
			return StreamClosedMsg{Err: err}
		}
		return EventMsg{Event: ev}
	}
}

// TickCmd returns a command that ticks after delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay, unless
// a newer status replaced it in the meantime
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}
