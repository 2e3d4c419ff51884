package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// BorderSize is the frame overhead of a bordered panel
const BorderSize = 2

// Browsable lists the screens reachable from the sidebar, in display order
var Browsable = []domain.ActiveView{
	domain.ActiveViewRecents,
	domain.ActiveViewAlbums,
	domain.ActiveViewArtists,
	domain.ActiveViewTracks,
	domain.ActiveViewComposers,
	domain.ActiveViewGenres,
	domain.ActiveViewPlaylists,
}

var viewTitles = map[domain.ActiveView]string{
	domain.ActiveViewRecents:   "Recently Added",
	domain.ActiveViewAlbums:    "Albums",
	domain.ActiveViewArtists:   "Artists",
	domain.ActiveViewTracks:    "Tracks",
	domain.ActiveViewComposers: "Composers",
	domain.ActiveViewGenres:    "Genres",
	domain.ActiveViewPlaylists: "Playlists",
}

// ViewTitle is the display name of a screen
func ViewTitle(v domain.ActiveView) string {
	if t, ok := viewTitles[v]; ok {
		return t
	}
	return v.String()
}

// ViewItem implements list.Item for a screen entry
type ViewItem struct {
	View  domain.ActiveView
	Count int64 // 0 hides the count
}

func (i ViewItem) FilterValue() string { return ViewTitle(i.View) }

func (i ViewItem) Title() string {
	if i.Count > 0 {
		return ViewTitle(i.View) + " " + styles.DimStyle.Render(formatCount(i.Count))
	}
	return ViewTitle(i.View)
}

func (i ViewItem) Description() string { return "" }

// Sidebar selects the active screen
type Sidebar struct {
	list    list.Model
	focused bool
	width   int
	height  int
	counts  map[domain.ActiveView]int64
}

// NewSidebar creates a new sidebar component
func NewSidebar() Sidebar {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Current.TextBright).
		Background(styles.Current.Surface).
		Padding(0, 1)
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(styles.Current.Text).
		Padding(0, 1)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Library"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(styles.Current.Accent).
		Bold(true).
		Padding(0, 1)

	s := Sidebar{list: l, counts: make(map[domain.ActiveView]int64)}
	s.refreshItems()
	return s
}

// SetCounts updates the per-screen entity counts shown next to titles
func (s *Sidebar) SetCounts(counts map[domain.ActiveView]int64) {
	s.counts = counts
	s.refreshItems()
}

func (s *Sidebar) refreshItems() {
	items := make([]list.Item, len(Browsable))
	for i, v := range Browsable {
		items[i] = ViewItem{View: v, Count: s.counts[v]}
	}
	s.list.SetItems(items)
}

// SetSize updates the component dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.list.SetSize(width-BorderSize, height-BorderSize)
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) { s.focused = focused }

// IsFocused returns the focus state
func (s Sidebar) IsFocused() bool { return s.focused }

// Selected returns the highlighted screen
func (s Sidebar) Selected() domain.ActiveView {
	if item, ok := s.list.SelectedItem().(ViewItem); ok {
		return item.View
	}
	return domain.ActiveViewRecents
}

// Select highlights v when it is browsable
func (s *Sidebar) Select(v domain.ActiveView) {
	for i, b := range Browsable {
		if b == v {
			s.list.Select(i)
			return
		}
	}
}

// Update moves the highlight. It reports whether the selection changed.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, bool) {
	if !s.focused {
		return s, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	before := s.list.Index()
	switch {
	case key.Matches(keyMsg, CursorKeys.Down):
		s.list.CursorDown()
	case key.Matches(keyMsg, CursorKeys.Up):
		s.list.CursorUp()
	case key.Matches(keyMsg, CursorKeys.Home):
		s.list.Select(0)
	case key.Matches(keyMsg, CursorKeys.End):
		s.list.Select(len(Browsable) - 1)
	}
	return s, s.list.Index() != before
}

// View renders the component
func (s Sidebar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(s.width - frameW).
		Height(s.height - frameH).
		Render(s.list.View())
}
