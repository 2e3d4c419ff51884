package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/search"
	"github.com/mmcdole/muse/internal/tui/components"
)

var actionLabels = map[domain.ContextAction]string{
	domain.ActionPlay:         "Play",
	domain.ActionPlayRandom:   "Play shuffled",
	domain.ActionPlayNext:     "Play next",
	domain.ActionAddQueue:     "Add to queue",
	domain.ActionAddPlaylist:  "Add to playlist...",
	domain.ActionEdit:         "Edit...",
	domain.ActionOpenPath:     "Open containing folder",
	domain.ActionShowArtist:   "Go to artist",
	domain.ActionShowComposer: "Go to composer",
	domain.ActionShowAlbum:    "Go to album",
	domain.ActionShowGenre:    "Go to genre",
	domain.ActionShowPlaylist: "Go to playlist",
	domain.ActionExtractCover: "Extract cover",
	domain.ActionDelete:       "Delete...",
}

func actionLabel(a domain.ContextAction) string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

var searchGroupTitles = map[domain.DataType]string{
	domain.DataTypeArtist:   "Artists",
	domain.DataTypeAlbum:    "Albums",
	domain.DataTypeTrack:    "Tracks",
	domain.DataTypeComposer: "Composers",
	domain.DataTypeGenre:    "Genres",
	domain.DataTypePlaylist: "Playlists",
}

// syncOverlays points the shared input and picker at the top overlay
// whenever the top of the overlay stack changes
func (m *Model) syncOverlays() tea.Cmd {
	stack := m.App.Overlays
	top, ok := stack.Top()
	if !ok {
		if m.hasActive {
			m.closeActive()
		}
		return nil
	}
	if m.hasActive && top == m.active {
		return nil
	}
	if m.hasActive {
		m.closeActive()
	}
	m.active, m.hasActive = top, true
	return m.openOverlay(top)
}

func (m *Model) closeActive() {
	switch m.active {
	case overlay.Search:
		m.Search.Blur()
	case overlay.Edit:
		m.Input.Hide()
		m.newTracks = nil
	case overlay.MediaPath, overlay.Import:
		m.Input.Hide()
	}
	m.hasActive = false
}

func (m *Model) openOverlay(id overlay.ID) tea.Cmd {
	stack := m.App.Overlays
	ents := m.App.Library.Entities
	cfg := m.App.Session.Config

	switch id {
	case overlay.ContextMenu:
		labels := make([]string, len(stack.Menu.Actions))
		for i, a := range stack.Menu.Actions {
			labels[i] = actionLabel(a)
		}
		title := ents.Name(stack.Menu.Target.Type, stack.Menu.Target.ID)
		m.Picker = components.NewPicker(title, labels)

	case overlay.PlaylistSelect:
		ids, names := m.App.Library.OrderedNames(domain.DataTypePlaylist)
		if len(ids) == 0 {
			ids = ents.Playlists.IDs()
			names = make([]string, len(ids))
			for i, pid := range ids {
				names[i] = ents.Name(domain.DataTypePlaylist, pid)
			}
		}
		m.pickerIDs = ids
		options := append([]string{"+ New playlist"}, names...)
		title := fmt.Sprintf("Add %d tracks to", len(stack.PlaylistTracks))
		m.Picker = components.NewPicker(title, options)

	case overlay.Delete:
		target := stack.DeleteTarget
		title := fmt.Sprintf("Delete %s %q?", target.Type, ents.Name(target.Type, target.ID))
		if cfg.AllowDeleteFiles {
			title += " Files will be removed too."
		}
		m.Picker = components.NewPicker(title, []string{"Cancel", "Delete"})

	case overlay.Search:
		if len(stack.Search.Types) == 0 {
			stack.Search.Types = overlay.DefaultSearchTypes()
		}
		m.updateSearchResults()
		return m.Search.Focus(stack.Search.Term)

	case overlay.Edit:
		target := stack.Edit.Target
		if target.ID == 0 {
			return m.Input.Show("New playlist", "Playlist name", "")
		}
		m.newTracks = nil
		return m.Input.Show("Rename "+string(target.Type), "Name", ents.Name(target.Type, target.ID))

	case overlay.MediaPath:
		return m.Input.Show("Media folder", "/path/to/music", cfg.MediaPath)

	case overlay.Import:
		return m.Input.Show("Import library export (.xml)", "/path/to/Library.xml", stack.ImportPath)
	}
	return nil
}

// handleOverlayKey routes a key to the top overlay
func (m Model) handleOverlayKey(top overlay.ID, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch top {
	case overlay.ContextMenu:
		var chosen int
		m.Picker, chosen = m.Picker.Update(msg)
		if chosen < 0 {
			return m, nil
		}
		actions := m.App.Overlays.Menu.Actions
		if err := m.App.Menu.Dispatch(actions[chosen]); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, nil

	case overlay.PlaylistSelect:
		return m.handlePlaylistSelect(msg)

	case overlay.Delete:
		return m.handleDeleteConfirm(msg)

	case overlay.Search:
		return m.handleSearchKey(msg)

	case overlay.Edit, overlay.MediaPath, overlay.Import:
		var cmd tea.Cmd
		var submitted bool
		m.Input, cmd, submitted = m.Input.Update(msg)
		if !submitted {
			return m, cmd
		}
		return m.submitInput(top)

	case overlay.Queue:
		return m.handleQueueKey(msg)

	case overlay.Settings:
		return m.handleSettingsKey(msg)

	case overlay.CustomColor:
		switch msg.String() {
		case "d":
			m.App.ConfigSvc.ResetCustomColors(true)
		case "l":
			m.App.ConfigSvc.ResetCustomColors(false)
		case "v":
			m.App.ConfigSvc.RevertCustomColors()
		default:
			var cmd tea.Cmd
			m.Colors, cmd = m.Colors.Update(msg)
			return m, cmd
		}
		m.refresh(true)
		return m, nil
	}
	return m, nil
}

func (m Model) handlePlaylistSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var chosen int
	m.Picker, chosen = m.Picker.Update(msg)
	if chosen < 0 {
		return m, nil
	}

	stack := m.App.Overlays
	tracks := stack.PlaylistTracks
	stack.Hide(overlay.PlaylistSelect)

	if chosen == 0 {
		m.newTracks = append([]int64(nil), tracks...)
		stack.OpenEdit(domain.Context{ID: 0, Type: domain.DataTypePlaylist})
		return m, m.syncOverlays()
	}

	playlistID := m.pickerIDs[chosen-1]
	if err := m.App.PlaylistSvc.AddToPlaylist(playlistID, tracks); err != nil {
		return m, m.setStatus(err.Error(), true)
	}
	name := m.App.Library.Entities.Name(domain.DataTypePlaylist, playlistID)
	return m, m.setStatus(fmt.Sprintf("Added %d tracks to %s", len(tracks), name), false)
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stack := m.App.Overlays
	confirmed := key.Matches(msg, Keys.Confirm)
	if key.Matches(msg, Keys.Deny) {
		stack.Hide(overlay.Delete)
		return m, nil
	}
	if !confirmed {
		var chosen int
		m.Picker, chosen = m.Picker.Update(msg)
		switch chosen {
		case -1:
			return m, nil
		case 0:
			stack.Hide(overlay.Delete)
			return m, nil
		}
	}

	target := stack.DeleteTarget
	stack.Hide(overlay.Delete)
	if err := m.App.LibrarySvc.Delete(target); err != nil {
		return m, m.setStatus(err.Error(), true)
	}
	return m, m.setStatus("Deleting "+m.App.Library.Entities.Name(target.Type, target.ID), false)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd             tea.Cmd
		changed, chosen bool
	)
	m.Search, cmd, changed, chosen = m.Search.Update(msg)
	stack := m.App.Overlays

	if changed {
		m.App.Search.Query(m.Search.Value(), stack.Search.Types)
		stack.Search.Term = m.App.Search.Term()
		m.updateSearchResults()
	}
	if chosen {
		if entry, ok := m.Search.Selected(); ok {
			stack.Hide(overlay.Search)
			m.openSearchEntry(entry)
		}
	}
	return m, cmd
}

// handleQueueKey moves the queue cursor and reorders the queue around it
func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := &m.App.Overlays.Queue
	queue := m.App.Session.Audio.Queue
	last := len(queue) - 1

	if key.Matches(msg, Keys.Queue) {
		m.App.Overlays.Hide(overlay.Queue)
		return m, nil
	}
	switch msg.String() {
	case "h":
		q.ShowHistory = !q.ShowHistory
	case "j", "down":
		q.Position = min(q.Position+1, max(last, 0))
	case "k", "up":
		q.Position = max(q.Position-1, 0)
	case "J", "K", "x":
		if q.Position < 0 || q.Position > last {
			return m, nil
		}
		ids := append([]int64(nil), queue...)
		switch msg.String() {
		case "J":
			if q.Position == last {
				return m, nil
			}
			ids[q.Position], ids[q.Position+1] = ids[q.Position+1], ids[q.Position]
			q.Position++
		case "K":
			if q.Position == 0 {
				return m, nil
			}
			ids[q.Position], ids[q.Position-1] = ids[q.Position-1], ids[q.Position]
			q.Position--
		case "x":
			ids = append(ids[:q.Position], ids[q.Position+1:]...)
			q.Position = max(min(q.Position, len(ids)-1), 0)
		}
		m.App.PlaybackSvc.QueueMove(ids)
	default:
		var cmd tea.Cmd
		m.Queue, cmd = m.Queue.Update(msg)
		return m, cmd
	}
	m.Queue.SetContent(m.queueContent())
	m.Queue.ScrollTo(q.Position)
	return m, nil
}

// updateSearchResults copies the search service's current answer into the box
func (m *Model) updateSearchResults() {
	svc := m.App.Search
	var groups []components.SearchGroup
	for _, t := range m.App.Overlays.Search.Types {
		entries := svc.Results(t)
		if len(entries) > 20 {
			entries = entries[:20]
		}
		groups = append(groups, components.SearchGroup{Title: searchGroupTitles[t], Entries: entries})
	}
	m.Search.SetResults(groups, svc.Pending())
}

// openSearchEntry jumps to a search hit. Tracks play directly.
func (m *Model) openSearchEntry(e search.Entry) {
	if e.Type == domain.DataTypeTrack {
		m.App.LibrarySvc.Play(domain.DataTypeTrack, e.ID)
		return
	}
	view := map[domain.DataType]domain.ActiveView{
		domain.DataTypeAlbum:    domain.ActiveViewAlbums,
		domain.DataTypeArtist:   domain.ActiveViewArtists,
		domain.DataTypeComposer: domain.ActiveViewComposers,
		domain.DataTypeGenre:    domain.ActiveViewGenres,
		domain.DataTypePlaylist: domain.ActiveViewPlaylists,
	}[e.Type]
	m.App.Session.View.Select(view, e.Type, e.ID)
}

func (m Model) submitInput(id overlay.ID) (tea.Model, tea.Cmd) {
	value := m.Input.Value()
	stack := m.App.Overlays

	switch id {
	case overlay.Edit:
		if err := m.submitEdit(stack.Edit.Target, value); err != nil {
			m.Input.SetHint(err.Error())
			return m, nil
		}
		stack.Hide(overlay.Edit)

	case overlay.MediaPath:
		m.App.ConfigSvc.SetMediaPath(value)
		m.App.LibrarySvc.AddToLibrary(value)
		stack.Hide(overlay.MediaPath)
		if m.App.Session.View.View == domain.ActiveViewFirst {
			m.App.ConfigSvc.CompleteSetup()
			m.App.Session.View.View = domain.ActiveViewRecents
		}

	case overlay.Import:
		if err := m.App.LibrarySvc.ImportLibrary(value); err != nil {
			m.Input.SetHint(err.Error())
			return m, nil
		}
		stack.ImportPath = value
		stack.Hide(overlay.Import)
	}
	return m, nil
}

// submitEdit renames target. Id 0 creates a playlist.
func (m *Model) submitEdit(target domain.Context, name string) error {
	lib := m.App.Library
	ents := lib.Entities
	if target.ID == 0 && target.Type == domain.DataTypePlaylist {
		err := m.App.PlaylistSvc.CreatePlaylist(name, "", m.newTracks)
		if err == nil {
			m.newTracks = nil
		}
		return err
	}

	switch target.Type {
	case domain.DataTypePlaylist:
		p, ok := ents.Playlists.Get(target.ID)
		if !ok {
			break
		}
		p.Name = name
		return m.App.PlaylistSvc.UpdatePlaylist(p)
	case domain.DataTypeAlbum:
		a, ok := ents.Albums.Get(target.ID)
		if !ok {
			break
		}
		a.Name = name
		m.App.LibrarySvc.UpdateAlbum(a,
			ents.Name(domain.DataTypeArtist, a.ArtistID),
			ents.Name(domain.DataTypeGenre, a.GenreID))
		return nil
	case domain.DataTypeArtist:
		a, ok := ents.Artists.Get(target.ID)
		if !ok {
			break
		}
		a.Name = name
		m.App.LibrarySvc.UpdateArtist(a)
		return nil
	case domain.DataTypeComposer:
		c, ok := ents.Composers.Get(target.ID)
		if !ok {
			break
		}
		c.Name = name
		m.App.LibrarySvc.UpdateComposer(c)
		return nil
	case domain.DataTypeGenre:
		g, ok := ents.Genres.Get(target.ID)
		if !ok {
			break
		}
		g.Name = name
		m.App.LibrarySvc.UpdateGenre(g)
		return nil
	case domain.DataTypeTrack:
		t, ok := ents.Tracks.Get(target.ID)
		if !ok {
			break
		}
		t.Name = name
		return m.App.LibrarySvc.UpdateTracks([]domain.Track{t},
			[]string{ents.Name(domain.DataTypeArtist, t.ArtistID)},
			[]string{ents.Name(domain.DataTypeAlbum, t.AlbumID)},
			[]string{ents.Name(domain.DataTypeGenre, t.GenreID)})
	}
	return fmt.Errorf("%s %d is not loaded", target.Type, target.ID)
}

var (
	themeCycle = []domain.Theme{domain.ThemeSystem, domain.ThemeLight, domain.ThemeDark, domain.ThemeCustom}
	viewCycle  = []domain.View{
		domain.ViewRecents, domain.ViewAlbums, domain.ViewArtists, domain.ViewTracks,
		domain.ViewComposers, domain.ViewGenres, domain.ViewPlaylists,
	}
)

func cycleNext[T comparable](cycle []T, cur T) T {
	for i, v := range cycle {
		if v == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfgSvc := m.App.ConfigSvc
	cfg := m.App.Session.Config
	stack := m.App.Overlays

	switch msg.String() {
	case "t":
		cfgSvc.SetTheme(cycleNext(themeCycle, cfg.Theme))
	case "v":
		cfgSvc.SetStartupView(cycleNext(viewCycle, cfg.StartupView))
	case "p":
		stack.Show(overlay.MediaPath)
		return m, m.syncOverlays()
	case "d":
		cfgSvc.Update(func(c *domain.ConfigState) { c.AllowDeleteFromDB = !c.AllowDeleteFromDB })
	case "f":
		cfgSvc.Update(func(c *domain.ConfigState) { c.AllowDeleteFiles = !c.AllowDeleteFiles })
	case "c":
		stack.Show(overlay.CustomColor)
		return m, m.syncOverlays()
	case ",":
		stack.Hide(overlay.Settings)
		return m, nil
	default:
		var cmd tea.Cmd
		m.Settings, cmd = m.Settings.Update(msg)
		return m, cmd
	}
	m.refresh(true)
	return m, nil
}
