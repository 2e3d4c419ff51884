package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/search"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func track(id int64) domain.Context { return domain.Context{ID: id, Type: domain.DataTypeTrack} }

func TestTable_SetRowsKeepsSelection(t *testing.T) {
	tbl := NewTable()
	tbl.SetSize(80, 20)
	tbl.SetFocused(true)
	tbl.SetRows([]Row{{Target: track(1)}, {Target: track(2)}, {Target: track(3)}})

	tbl, moved := tbl.Update(keyDown)
	require.True(t, moved)
	sel, _ := tbl.Selected()
	assert.Equal(t, int64(2), sel.Target.ID)

	// a reorder keeps the cursor on the same entity
	tbl.SetRows([]Row{{Target: track(3)}, {Target: track(2)}, {Target: track(1)}})
	sel, _ = tbl.Selected()
	assert.Equal(t, int64(2), sel.Target.ID)
	assert.Equal(t, 1, tbl.Cursor())

	// losing it clamps into range
	tbl.SetRows([]Row{{Target: track(9)}})
	assert.Equal(t, 0, tbl.Cursor())
}

func TestTable_CursorClamped(t *testing.T) {
	tbl := NewTable()
	tbl.SetSize(80, 20)
	tbl.SetFocused(true)
	tbl.SetRows([]Row{{Target: track(1)}, {Target: track(2)}})

	tbl, _ = tbl.Update(keyUp)
	assert.Equal(t, 0, tbl.Cursor())
	tbl, _ = tbl.Update(keyRunes("G"))
	assert.Equal(t, 1, tbl.Cursor())
	tbl, moved := tbl.Update(keyDown)
	assert.False(t, moved)
}

func TestTable_UnfocusedIgnoresKeys(t *testing.T) {
	tbl := NewTable()
	tbl.SetRows([]Row{{Target: track(1)}, {Target: track(2)}})
	tbl, moved := tbl.Update(keyDown)
	assert.False(t, moved)
	assert.Equal(t, 0, tbl.Cursor())
}

func gridRows() []sections.Row {
	return sections.Rows([]sections.Section{
		{Title: "Today", Albums: []int64{1, 2, 3}},
		{Title: "Last week", Albums: []int64{4}},
	}, 2)
}

func TestGrid_NavigationSkipsTitles(t *testing.T) {
	g := NewGrid()
	g.SetSize(100, 40)
	g.SetFocused(true)
	g.SetRows(gridRows(), nil)

	id, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	g, _ = g.Update(keyRight)
	id, _ = g.Selected()
	assert.Equal(t, int64(2), id)

	// right at a row end wraps to the next album row
	g, _ = g.Update(keyRight)
	id, _ = g.Selected()
	assert.Equal(t, int64(3), id)

	// down crosses the section title
	g, _ = g.Update(keyDown)
	id, _ = g.Selected()
	assert.Equal(t, int64(4), id)

	g, _ = g.Update(keyLeft)
	id, _ = g.Selected()
	assert.Equal(t, int64(3), id)
}

func TestGrid_DownClampsColumn(t *testing.T) {
	g := NewGrid()
	g.SetSize(100, 40)
	g.SetFocused(true)
	g.SetRows(gridRows(), nil)

	g, _ = g.Update(keyRight)
	g, _ = g.Update(keyDown)
	id, _ := g.Selected()
	assert.Equal(t, int64(3), id, "row {3} has one column")
}

func TestGrid_SetRowsKeepsAlbum(t *testing.T) {
	g := NewGrid()
	g.SetSize(100, 40)
	g.SetFocused(true)
	g.SetRows(gridRows(), nil)
	require.True(t, g.SelectAlbum(4))

	g.SetRows(sections.Rows([]sections.Section{{Title: "Today", Albums: []int64{4, 5}}}, 3), nil)
	id, _ := g.Selected()
	assert.Equal(t, int64(4), id)
}

func TestPicker_WrapsAndConfirms(t *testing.T) {
	p := NewPicker("Pick", []string{"a", "b", "c"})

	p, chosen := p.Update(keyUp)
	assert.Equal(t, -1, chosen)
	assert.Equal(t, 2, p.Cursor())

	p, _ = p.Update(keyDown)
	_, chosen = p.Update(keyEnter)
	assert.Equal(t, 0, chosen)
}

func TestSearchBox_TypingReportsChange(t *testing.T) {
	s := NewSearchBox()
	s.Focus("")

	s, _, changed, chosen := s.Update(keyRunes("j"))
	assert.True(t, changed, "letters go to the input, not the cursor")
	assert.False(t, chosen)
	assert.Equal(t, "j", s.Value())

	s.SetResults([]SearchGroup{{Title: "Artists", Entries: []search.Entry{
		{Type: domain.DataTypeArtist, ID: 1, Name: "Jaco"},
		{Type: domain.DataTypeArtist, ID: 2, Name: "Joni"},
	}}}, false)
	s, _, _, _ = s.Update(keyDown)
	_, _, _, chosen = s.Update(keyEnter)
	assert.True(t, chosen)
	e, _ := s.Selected()
	assert.Equal(t, int64(2), e.ID)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "3:05", FormatDuration(185_000))
	assert.Equal(t, "1:01:01", FormatDuration(3_661_000))
	assert.Equal(t, "0:00", FormatDuration(-5))
	assert.Equal(t, "1,234,567", formatCount(1234567))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "12 B", FormatBytes(12))
}

func TestSidebar_SelectsBrowsableViews(t *testing.T) {
	s := NewSidebar()
	s.SetSize(20, 20)
	s.SetFocused(true)
	s.Select(domain.ActiveViewGenres)
	assert.Equal(t, domain.ActiveViewGenres, s.Selected())

	s, changed := s.Update(keyDown)
	assert.True(t, changed)
	assert.Equal(t, domain.ActiveViewPlaylists, s.Selected())
}

func TestGrid_VisibleAlbumsFollowScroll(t *testing.T) {
	var secs []sections.Section
	for i := int64(0); i < 10; i++ {
		secs = append(secs, sections.Section{Title: "s", Albums: []int64{i}})
	}
	g := NewGrid()
	g.SetSize(60, 12)
	g.SetFocused(true)
	g.SetRows(sections.Rows(secs, 1), nil)

	assert.Contains(t, g.VisibleAlbums(), int64(0))
	assert.NotContains(t, g.VisibleAlbums(), int64(9))

	g, _ = g.Update(keyRunes("G"))
	assert.Contains(t, g.VisibleAlbums(), int64(9))
	assert.NotContains(t, g.VisibleAlbums(), int64(0))
}
