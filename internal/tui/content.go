package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/mmcdole/muse/internal/tui/components"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// countersChanged reports whether any change counter moved since the last
// call, and records the new values
func (m *Model) countersChanged() (changed bool, config bool) {
	for f, v := range m.App.Session.Counters.Snapshot() {
		if m.seen[f] != v {
			changed = true
			if f == domain.FieldConfig {
				config = true
			}
			m.seen[f] = v
		}
	}
	return changed, config
}

// refresh rebuilds what the mirrored state feeds into the components.
// Without force it only does so when a change counter moved.
func (m *Model) refresh(force bool) {
	changed, config := m.countersChanged()
	view := m.App.Session.View.View
	viewChanged := view != m.lastView
	if viewChanged {
		m.lastView = view
		m.drill = domain.Context{}
		m.Sidebar.Select(view)
	}
	if config || m.theme == "" {
		m.applyTheme()
	}
	if !changed && !viewChanged && !force {
		return
	}

	m.Sidebar.SetCounts(m.viewCounts())
	m.rebuildContent()
	if viewChanged {
		m.restoreSelection()
	}
	if m.App.Overlays.Visible(overlay.Search) {
		m.updateSearchResults()
	}
	m.Queue.SetContent(m.queueContent())
	m.Settings.SetContent(m.settingsContent())
	m.Colors.SetContent(m.colorsContent())
	m.Help.SetContent(m.helpContent())
	m.requestVisibleCovers()
}

// restoreSelection puts the cursor on the entity remembered for the screen
func (m *Model) restoreSelection() {
	t := domain.DataTypeFor(m.App.Session.View.View)
	id, ok := m.App.Session.View.Selected[t]
	if !ok {
		return
	}
	if m.isGrid() {
		m.Grid.SelectAlbum(id)
		return
	}
	m.Table.SelectTarget(domain.Context{ID: id, Type: t})
}

func (m *Model) viewCounts() map[domain.ActiveView]int64 {
	db := m.App.Session.DB
	ents := m.App.Library.Entities
	return map[domain.ActiveView]int64{
		domain.ActiveViewAlbums:    db.AlbumsMax,
		domain.ActiveViewArtists:   db.ArtistsMax,
		domain.ActiveViewTracks:    db.TracksMax,
		domain.ActiveViewComposers: int64(ents.Composers.Len()),
		domain.ActiveViewGenres:    db.GenresMax,
		domain.ActiveViewPlaylists: db.PlaylistsMax,
	}
}

// isGrid reports whether the active screen is an album grid
func (m Model) isGrid() bool {
	v := m.App.Session.View.View
	return v == domain.ActiveViewRecents || v == domain.ActiveViewAlbums
}

func (m *Model) rebuildContent() {
	session := m.App.Session
	switch session.View.View {
	case domain.ActiveViewRecents:
		m.Grid.SetTitle("Recently Added")
		m.Grid.SetRows(m.App.Sections.Rows(), m.albumCell)
	case domain.ActiveViewAlbums:
		ids, _ := m.App.Library.OrderedNames(domain.DataTypeAlbum)
		title := fmt.Sprintf("%d albums", len(ids))
		m.Grid.SetTitle(orderTitle("Albums", m.App.Library.Orders.Spec(domain.DataTypeAlbum)))
		m.Grid.SetRows(sections.Rows([]sections.Section{{Title: title, Albums: ids}}, m.App.Sections.Columns()), m.albumCell)
	case domain.ActiveViewTracks:
		ids, _ := m.App.Library.OrderedNames(domain.DataTypeTrack)
		m.Table.SetTitle(orderTitle("Tracks", m.App.Library.Orders.Spec(domain.DataTypeTrack)))
		m.Table.SetColumns(m.trackColumns())
		m.Table.SetRows(m.trackRows(ids))
	case domain.ActiveViewArtists, domain.ActiveViewComposers,
		domain.ActiveViewGenres, domain.ActiveViewPlaylists:
		if m.drill.ID != 0 {
			m.rebuildDrill()
		} else {
			m.rebuildOwners(domain.DataTypeFor(session.View.View))
		}
	}

	if m.isGrid() {
		m.rebuildSplit()
	}
}

func (m *Model) rebuildSplit() {
	split := m.App.Session.View.OpenSplit
	if split < 0 {
		m.Grid.SetSplit(-1, nil)
		return
	}
	album, ok := m.App.Library.Entities.Albums.Get(split)
	if !ok {
		m.Grid.SetSplit(-1, nil)
		return
	}
	var lines []string
	for _, t := range m.App.Library.Entities.Tracks.Resolve(album.Tracks) {
		num := "  "
		if t.TrackNumber > 0 {
			num = fmt.Sprintf("%2d", t.TrackNumber)
		}
		lines = append(lines, styles.DimStyle.Render(num)+"  "+
			styles.SubtitleStyle.Render(t.Name)+"  "+
			styles.DimStyle.Render(components.FormatDuration(t.TotalTime)))
	}
	if len(lines) == 0 {
		lines = []string{styles.DimStyle.Render("No tracks loaded")}
	}
	m.Grid.SetSplit(split, lines)
}

func (m *Model) albumCell(id int64) components.AlbumCell {
	ents := m.App.Library.Entities
	album, ok := ents.Albums.Get(id)
	if !ok {
		return components.AlbumCell{Name: "…"}
	}
	cell := components.AlbumCell{Name: album.Name, Year: album.Year}
	if artist, ok := ents.Artists.Get(album.ArtistID); ok {
		cell.Artist = artist.Name
	}
	cell.HasCover = album.CoverID != 0 && ents.Covers.Has(album.CoverID)
	cell.Loading = !cell.HasCover && m.App.Session.Covers.Pending(album.CoverID)
	return cell
}

// requestVisibleCovers asks for the covers of albums on screen
func (m *Model) requestVisibleCovers() {
	if !m.isGrid() {
		return
	}
	albums := m.App.Library.Entities.Albums
	for _, id := range m.Grid.VisibleAlbums() {
		if a, ok := albums.Get(id); ok && a.CoverID != 0 {
			m.App.LibrarySvc.GetCover(a.CoverID)
		}
	}
}

func (m Model) trackColumns() []components.Column {
	h := m.App.Session.View.Headers
	return []components.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Indicator: h.Name},
		{Title: "Artist", Indicator: h.Artist},
		{Title: "Album", Indicator: h.Album},
		{Title: "Genre", Width: 12, Indicator: h.Genre},
		{Title: "Time", Width: 8, Indicator: h.Time},
	}
}

func (m Model) trackRows(ids []int64) []components.Row {
	ents := m.App.Library.Entities
	rows := make([]components.Row, 0, len(ids))
	for _, t := range ents.Tracks.Resolve(ids) {
		num := ""
		if t.TrackNumber > 0 {
			num = fmt.Sprint(t.TrackNumber)
		}
		rows = append(rows, components.Row{
			Target: domain.Context{ID: t.ID, Type: domain.DataTypeTrack},
			Cells: []string{
				num,
				t.Name,
				ents.Name(domain.DataTypeArtist, t.ArtistID),
				ents.Name(domain.DataTypeAlbum, t.AlbumID),
				ents.Name(domain.DataTypeGenre, t.GenreID),
				components.FormatDuration(t.TotalTime),
			},
		})
	}
	return rows
}

func (m *Model) rebuildOwners(t domain.DataType) {
	lib := m.App.Library
	ids, names := lib.OrderedNames(t)
	rows := make([]components.Row, len(ids))

	headers := m.App.Session.View.Headers
	cols := []components.Column{{Title: "Name", Indicator: headers.Name}, {Title: "Tracks", Width: 8}}
	switch t {
	case domain.DataTypeArtist:
		cols = []components.Column{{Title: "Name", Indicator: headers.Name}, {Title: "Albums", Width: 8}, {Title: "Tracks", Width: 8}}
	case domain.DataTypePlaylist:
		cols = []components.Column{{Title: "Name", Indicator: headers.Name}, {Title: "Description"}, {Title: "Tracks", Width: 8}}
	}

	for i, id := range ids {
		target := domain.Context{ID: id, Type: t}
		tracks := fmt.Sprint(len(m.ownerTracks(target)))
		cells := []string{names[i], tracks}
		switch t {
		case domain.DataTypeArtist:
			albums, _ := lib.Relations.Get(domain.RelationArtistAlbums, id)
			cells = []string{names[i], fmt.Sprint(len(albums)), tracks}
		case domain.DataTypePlaylist:
			p, _ := lib.Entities.Playlists.Get(id)
			cells = []string{names[i], p.Description, tracks}
		}
		rows[i] = components.Row{Target: target, Cells: cells}
	}

	m.Table.SetTitle(components.ViewTitle(m.App.Session.View.View))
	m.Table.SetColumns(cols)
	m.Table.SetRows(rows)
}

func (m *Model) rebuildDrill() {
	name := m.App.Library.Entities.Name(m.drill.Type, m.drill.ID)
	m.Table.SetTitle(components.ViewTitle(m.App.Session.View.View) + " › " + name)
	m.Table.SetColumns(m.trackColumns())
	m.Table.SetRows(m.trackRows(m.ownerTracks(m.drill)))
}

// ownerTracks lists the tracks an artist, composer, genre or playlist holds
func (m Model) ownerTracks(owner domain.Context) []int64 {
	lib := m.App.Library
	var kind domain.RelationKind
	switch owner.Type {
	case domain.DataTypeArtist:
		kind = domain.RelationArtistTracks
	case domain.DataTypeComposer:
		kind = domain.RelationComposerTracks
	case domain.DataTypeGenre:
		kind = domain.RelationGenreTracks
	case domain.DataTypePlaylist:
		p, _ := lib.Entities.Playlists.Get(owner.ID)
		return p.Tracks
	default:
		return nil
	}
	ids, _ := lib.Relations.Get(kind, owner.ID)
	return ids
}

// selection is the entity the content pane points at
func (m Model) selection() (domain.Context, bool) {
	if m.isGrid() {
		id, ok := m.Grid.Selected()
		return domain.Context{ID: id, Type: domain.DataTypeAlbum}, ok
	}
	row, ok := m.Table.Selected()
	return row.Target, ok
}

// orderTitle names a list after its active sort key
func orderTitle(title string, spec domain.SortSpec) string {
	if p := spec.Primary(); p != "" {
		return title + " · " + strings.TrimPrefix(string(p), "By")
	}
	return title
}

// queueEntry is one queue row. Rows follow Audio.Queue by index so the
// cursor always addresses the id it highlights.
type queueEntry struct {
	domain.Track
	Missing bool
}

func (m Model) queueEntries() []queueEntry {
	tracks := m.App.Library.Entities.Tracks
	entries := make([]queueEntry, len(m.App.Session.Audio.Queue))
	for i, id := range m.App.Session.Audio.Queue {
		t, ok := tracks.Get(id)
		if !ok {
			t = domain.Track{ID: id, Name: "…"}
		}
		entries[i] = queueEntry{Track: t, Missing: !ok}
	}
	return entries
}

func (m Model) queueContent() string {
	audio := m.App.Session.Audio
	tracks := m.App.Library.Entities.Tracks
	q := m.App.Overlays.Queue
	var b strings.Builder

	if q.ShowHistory && len(audio.History) > 0 {
		b.WriteString(styles.SectionTitleStyle.Render("History") + "\n")
		for _, t := range tracks.Resolve(audio.History) {
			b.WriteString(styles.DimStyle.Render("  "+t.Name) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.SectionTitleStyle.Render("Up next") + "\n")
	if len(audio.Queue) == 0 {
		b.WriteString(styles.DimStyle.Render("  Queue is empty"))
		return b.String()
	}
	for i, e := range m.queueEntries() {
		line := fmt.Sprintf("%3d  %s  %s", i+1, e.Name, components.FormatDuration(e.TotalTime))
		switch {
		case i == q.Position:
			b.WriteString(styles.SelectedItemStyle.Render(line) + "\n")
		case e.Missing:
			b.WriteString(styles.DimStyle.Render(line) + "\n")
		case e.ID == audio.CurrentTrack:
			b.WriteString(styles.AccentStyle.Render("▶"+line[1:]) + "\n")
		default:
			b.WriteString(styles.SubtitleStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + styles.DimStyle.Render("j/k select  J/K move  x remove  h history"))
	return b.String()
}

func (m Model) settingsContent() string {
	s := m.App.Session
	cfg := s.Config
	row := func(k, label, value string) string {
		return styles.HelpKeyStyle.Render(fmt.Sprintf("%-3s", k)) +
			styles.HelpDescStyle.Render(fmt.Sprintf("%-22s", label)) +
			styles.SubtitleStyle.Render(value) + "\n"
	}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	var b strings.Builder
	b.WriteString(row("t", "Theme", string(cfg.Theme)))
	b.WriteString(row("v", "Startup view", string(cfg.StartupView)))
	b.WriteString(row("p", "Media folder", cfg.MediaPath))
	b.WriteString(row("d", "Delete from library", onOff(cfg.AllowDeleteFromDB)))
	b.WriteString(row("f", "Delete files", onOff(cfg.AllowDeleteFiles)))
	b.WriteString(row("c", "Custom colors", "edit"))

	st := m.App.Library.SpaceTime
	b.WriteString("\n" + styles.SectionTitleStyle.Render("Library") + "\n")
	b.WriteString(row("", "Tracks", fmt.Sprint(s.DB.TracksMax)))
	b.WriteString(row("", "Albums", fmt.Sprint(s.DB.AlbumsMax)))
	if st.Space != nil {
		b.WriteString(row("", "Size on disk", components.FormatBytes(*st.Space)))
	}
	if st.Time != nil {
		b.WriteString(row("", "Total time", components.FormatDuration(*st.Time)))
	}
	if cfg.Version != (domain.Version{}) {
		b.WriteString(row("", "Version", fmt.Sprintf("%d.%d.%d", cfg.Version.Major, cfg.Version.Minor, cfg.Version.Patch)))
	}
	return b.String()
}

func (m Model) helpContent() string {
	var b strings.Builder
	groups := append(Keys.FullHelp(), m.App.Router.KeyMap().FullHelp()...)
	for _, group := range groups {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(styles.HelpKeyStyle.Render(fmt.Sprintf("%-14s", h.Key)) +
				styles.HelpDescStyle.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) colorsContent() string {
	c := m.App.Session.Config.CustomColors
	swatch := func(label, value string) string {
		sample := "      "
		if value != "" {
			sample = lipgloss.NewStyle().Background(lipgloss.Color(value)).Render(sample)
		}
		return sample + "  " + styles.HelpDescStyle.Render(fmt.Sprintf("%-20s", label)) +
			styles.SubtitleStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(swatch("Background", c.Background))
	b.WriteString(swatch("Active background", c.BackgroundActive))
	b.WriteString(swatch("Hover background", c.BackgroundHover))
	b.WriteString(swatch("Button background", c.BackgroundButton))
	b.WriteString(swatch("Border", c.BorderColor))
	b.WriteString(swatch("Accent", c.AccentInput))
	b.WriteString(swatch("Warning", c.Warn))
	b.WriteString(swatch("Text", c.Text))
	b.WriteString(swatch("Dim text", c.TextDim))
	b.WriteString(swatch("Highlighted text", c.TextHighlight))
	b.WriteString("\n" + styles.HelpKeyStyle.Render("d") + styles.HelpDescStyle.Render(" reset dark  ") +
		styles.HelpKeyStyle.Render("l") + styles.HelpDescStyle.Render(" reset light  ") +
		styles.HelpKeyStyle.Render("v") + styles.HelpDescStyle.Render(" revert"))
	return b.String()
}
