package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/contextmenu"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/router"
)

// typedOverlay reports overlays that take raw text but do not silence transport keys in the router
func typedOverlay(id overlay.ID) bool {
	return id == overlay.MediaPath || id == overlay.Import
}

func isTyping(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// handleKeyMsg gives the global router the first look at a key, then the
// top overlay, then the focused pane
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.App.Session.View.View

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var (
		next tea.Model = m
		cmd  tea.Cmd
	)

	top, hasTop := m.App.Overlays.Top()
	switch {
	case hasTop && typedOverlay(top) && isTyping(msg):
		next, cmd = m.handleOverlayKey(top, msg)
	default:
		switch m.App.Router.HandleKey(msg) {
		case router.Quit:
			return m, tea.Quit
		case router.Handled:
		default:
			if top, ok := m.App.Overlays.Top(); ok {
				next, cmd = m.handleOverlayKey(top, msg)
			} else {
				next, cmd = m.handleLocalKey(msg)
			}
		}
	}

	m = next.(Model)
	if m.App.Session.View.View != before {
		m.App.LibrarySvc.RefreshView()
	}
	m.refresh(true)
	return m, tea.Batch(cmd, m.syncOverlays())
}

// sortKeys maps the sort shortcuts to the column pair each view toggles
func sortKeys(t domain.DataType) [3][2]domain.Order {
	name := [2]domain.Order{domain.OrderByName, domain.OrderByNameInverse}
	added := [2]domain.Order{domain.OrderByAddedDate, domain.OrderByAddedDateInverse}
	switch t {
	case domain.DataTypeTrack:
		return [3][2]domain.Order{name, added, {domain.OrderByTime, domain.OrderByTimeInverse}}
	case domain.DataTypeAlbum:
		return [3][2]domain.Order{name, added, {domain.OrderByReleaseDate, domain.OrderByReleaseDateInverse}}
	default:
		return [3][2]domain.Order{name, added, {domain.OrderBySize, domain.OrderBySizeInverse}}
	}
}

func (m Model) handleLocalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.App.Session
	stack := m.App.Overlays
	view := session.View.View

	switch {
	case key.Matches(msg, Keys.SwitchPane):
		if m.Focus == PaneSidebar {
			m.setFocus(PaneContent)
		} else {
			m.setFocus(PaneSidebar)
		}
		return m, nil

	case key.Matches(msg, Keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, Keys.Queue):
		stack.Toggle(overlay.Queue)
		return m, nil

	case key.Matches(msg, Keys.Settings):
		stack.Toggle(overlay.Settings)
		return m, nil

	case key.Matches(msg, Keys.Import):
		stack.Show(overlay.Import)
		return m, nil

	case key.Matches(msg, Keys.Shuffle):
		m.App.PlaybackSvc.SetShuffle(!session.Audio.ShuffleMode)
		return m, nil

	case key.Matches(msg, Keys.Repeat):
		m.App.PlaybackSvc.CycleRepeat()
		return m, nil

	case key.Matches(msg, Keys.Mute):
		m.App.PlaybackSvc.ToggleMute()
		return m, nil
	}

	if view == domain.ActiveViewFirst {
		if key.Matches(msg, Keys.Open) {
			stack.Show(overlay.MediaPath)
		}
		return m, nil
	}

	if m.Focus == PaneSidebar {
		var changed bool
		m.Sidebar, changed = m.Sidebar.Update(msg)
		if key.Matches(msg, Keys.Open) {
			m.setFocus(PaneContent)
		}
		if changed {
			session.View.View = m.Sidebar.Selected()
		}
		return m, nil
	}

	return m.handleContentKey(msg)
}

func (m Model) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.App.Session
	stack := m.App.Overlays
	lib := m.App.LibrarySvc
	t := domain.DataTypeFor(session.View.View)
	target, hasTarget := m.selection()

	switch {
	case key.Matches(msg, Keys.Back):
		if m.drill.ID != 0 {
			m.drill = domain.Context{}
			m.rebuildContent()
			return m, nil
		}
		m.setFocus(PaneSidebar)
		return m, nil

	case key.Matches(msg, Keys.Open):
		if !hasTarget {
			return m, nil
		}
		switch {
		case m.isGrid():
			session.View.ToggleSplit(target.ID)
			m.rebuildSplit()
		case target.Type == domain.DataTypeTrack:
			lib.Play(domain.DataTypeTrack, target.ID)
		default:
			m.drill = target
			session.View.Selected[target.Type] = target.ID
			m.rebuildContent()
		}
		return m, nil

	case key.Matches(msg, Keys.Play), key.Matches(msg, Keys.PlayRandom):
		play := lib.Play
		if key.Matches(msg, Keys.PlayRandom) {
			play = lib.PlayShuffled
		}
		switch {
		case hasTarget:
			play(target.Type, target.ID)
		case m.drill.ID != 0:
			play(m.drill.Type, m.drill.ID)
		}
		return m, nil

	case key.Matches(msg, Keys.AddQueue):
		if hasTarget {
			lib.Enqueue(target.Type, nil, target.ID)
			return m, m.setStatus("Added "+m.App.Library.Entities.Name(target.Type, target.ID)+" to the queue", false)
		}
		return m, nil

	case key.Matches(msg, Keys.Menu):
		if hasTarget {
			contextmenu.Open(stack, session.Config, target, 0, 0)
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		if !hasTarget {
			return m, nil
		}
		if m.drill.Type == domain.DataTypePlaylist && target.Type == domain.DataTypeTrack {
			if err := m.App.PlaylistSvc.RemoveFromPlaylist(m.drill.ID, target.ID); err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			return m, m.setStatus("Removed from playlist", false)
		}
		if !session.Config.AllowDeleteFromDB {
			return m, m.setStatus("Deleting is disabled in settings", true)
		}
		stack.OpenDelete(target)
		return m, nil

	case key.Matches(msg, Keys.SortName), key.Matches(msg, Keys.SortAdded), key.Matches(msg, Keys.SortTime):
		if t == domain.DataTypeNone || session.View.View == domain.ActiveViewRecents {
			return m, nil
		}
		pairs := sortKeys(t)
		i := 0
		switch {
		case key.Matches(msg, Keys.SortAdded):
			i = 1
		case key.Matches(msg, Keys.SortTime):
			i = 2
		}
		lib.ToggleOrder(pairs[i][0], pairs[i][1], t)
		return m, nil
	}

	var changed bool
	if m.isGrid() {
		m.Grid, changed = m.Grid.Update(msg)
		if changed {
			m.requestVisibleCovers()
		}
		return m, nil
	}
	m.Table, _ = m.Table.Update(msg)
	return m, nil
}
