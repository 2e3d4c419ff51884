package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// AlbumCell is what a grid cell shows for one album
type AlbumCell struct {
	Name     string
	Artist   string
	Year     int
	HasCover bool
	Loading  bool // cover requested, not yet received
}

// AlbumLookup resolves an album id for display
type AlbumLookup func(id int64) AlbumCell

// cellLines is the rendered height of an album row: border plus two text lines
const cellLines = 4

// Grid lays albums out in titled rows with a two-dimensional cursor
type Grid struct {
	title  string
	rows   []sections.Row
	lookup AlbumLookup

	row    int // index into rows; always an album row when any exists
	col    int
	offset int

	split      int64 // album whose tracks are expanded, -1 when none
	splitLines []string

	width   int
	height  int
	focused bool
}

// NewGrid creates an empty grid
func NewGrid() Grid {
	return Grid{split: -1}
}

// SetTitle sets the grid heading
func (g *Grid) SetTitle(title string) { g.title = title }

// SetRows replaces the layout, keeping the cursor on the same album when
// it is still present
func (g *Grid) SetRows(rows []sections.Row, lookup AlbumLookup) {
	selected, ok := g.Selected()
	g.rows = rows
	g.lookup = lookup
	if ok && g.SelectAlbum(selected) {
		return
	}
	g.row, g.col = g.firstAlbumRow(), 0
	g.clamp()
	g.ensureVisible()
}

// SetSplit expands albumID's track listing below its row
func (g *Grid) SetSplit(albumID int64, lines []string) {
	g.split = albumID
	g.splitLines = lines
	g.ensureVisible()
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) { g.focused = focused }

// Selected returns the album under the cursor
func (g Grid) Selected() (int64, bool) {
	if g.row < 0 || g.row >= len(g.rows) {
		return 0, false
	}
	r := g.rows[g.row]
	if r.IsTitle() || g.col >= len(r.Albums) {
		return 0, false
	}
	return r.Albums[g.col], true
}

// SelectAlbum moves the cursor to id. It reports whether it was found.
func (g *Grid) SelectAlbum(id int64) bool {
	for i, r := range g.rows {
		for j, a := range r.Albums {
			if a == id {
				g.row, g.col = i, j
				g.ensureVisible()
				return true
			}
		}
	}
	return false
}

func (g Grid) firstAlbumRow() int {
	for i, r := range g.rows {
		if !r.IsTitle() {
			return i
		}
	}
	return 0
}

// step finds the next album row from g.row in direction dir, or -1
func (g Grid) step(dir int) int {
	for i := g.row + dir; i >= 0 && i < len(g.rows); i += dir {
		if !g.rows[i].IsTitle() {
			return i
		}
	}
	return -1
}

func (g *Grid) clamp() {
	if g.row < 0 || g.row >= len(g.rows) || g.rows[g.row].IsTitle() {
		g.col = 0
		return
	}
	g.col = max(0, min(g.col, len(g.rows[g.row].Albums)-1))
}

// Update moves the cursor. It reports whether the selection changed.
func (g Grid) Update(msg tea.Msg) (Grid, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !g.focused || len(g.rows) == 0 {
		return g, false
	}

	beforeRow, beforeCol := g.row, g.col
	switch {
	case key.Matches(keyMsg, CursorKeys.Left):
		if g.col > 0 {
			g.col--
		} else if prev := g.step(-1); prev >= 0 {
			g.row, g.col = prev, len(g.rows[prev].Albums)-1
		}
	case key.Matches(keyMsg, CursorKeys.Right):
		if g.row < len(g.rows) && g.col < len(g.rows[g.row].Albums)-1 {
			g.col++
		} else if next := g.step(1); next >= 0 {
			g.row, g.col = next, 0
		}
	case key.Matches(keyMsg, CursorKeys.Up):
		if prev := g.step(-1); prev >= 0 {
			g.row = prev
		}
	case key.Matches(keyMsg, CursorKeys.Down):
		if next := g.step(1); next >= 0 {
			g.row = next
		}
	case key.Matches(keyMsg, CursorKeys.Home):
		g.row, g.col = g.firstAlbumRow(), 0
	case key.Matches(keyMsg, CursorKeys.End):
		for i := len(g.rows) - 1; i >= 0; i-- {
			if !g.rows[i].IsTitle() {
				g.row, g.col = i, len(g.rows[i].Albums)-1
				break
			}
		}
	}
	g.clamp()
	g.ensureVisible()
	return g, g.row != beforeRow || g.col != beforeCol
}

func (g Grid) rowHeight(i int) int {
	r := g.rows[i]
	if r.IsTitle() {
		if i == 0 {
			return 1
		}
		return 2
	}
	h := cellLines
	for _, id := range r.Albums {
		if id == g.split {
			h += len(g.splitLines) + 1
		}
	}
	return h
}

func (g Grid) available() int {
	return max(g.height-BorderHeight-TitleLines, 1)
}

// ensureVisible scrolls so the cursor row, and the title right above it,
// fit on screen
func (g *Grid) ensureVisible() {
	if len(g.rows) == 0 || g.height == 0 {
		g.offset = 0
		return
	}
	top := g.row
	if top > 0 && g.rows[top-1].IsTitle() {
		top--
	}
	if top < g.offset {
		g.offset = top
	}
	for g.offset < g.row {
		used := 0
		for i := g.offset; i <= g.row; i++ {
			used += g.rowHeight(i)
		}
		if used <= g.available() {
			break
		}
		g.offset++
	}
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(g.render())
}

func (g Grid) columns() int {
	n := 1
	for _, r := range g.rows {
		n = max(n, len(r.Albums))
	}
	return n
}

func (g Grid) render() string {
	inner := max(g.width-BorderWidth-HorizontalPadding, 1)
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render(styles.Truncate(g.title, inner)))

	if len(g.rows) == 0 {
		b.WriteString("\n \n" + styles.DimStyle.Render("No albums"))
		return b.String()
	}

	cellWidth := max(inner/g.columns()-BorderWidth-HorizontalPadding, 6)
	budget := g.available()
	for i := g.offset; i < len(g.rows) && budget > 0; i++ {
		r := g.rows[i]
		if r.IsTitle() {
			if i > g.offset {
				b.WriteString("\n")
			}
			b.WriteString("\n" + styles.SectionTitleStyle.Render(r.Title))
			budget -= g.rowHeight(i)
			continue
		}

		cells := make([]string, len(r.Albums))
		for j, id := range r.Albums {
			cells[j] = g.renderCell(id, i == g.row && j == g.col, cellWidth)
		}
		b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		for _, id := range r.Albums {
			if id == g.split {
				b.WriteString("\n" + strings.Join(g.splitLines, "\n") + "\n")
			}
		}
		budget -= g.rowHeight(i)
	}
	return b.String()
}

func (g Grid) renderCell(id int64, selected bool, width int) string {
	c := AlbumCell{Name: fmt.Sprintf("#%d", id)}
	if g.lookup != nil {
		c = g.lookup(id)
	}

	name := c.Name
	switch {
	case c.Loading:
		name = "… " + name
	case !c.HasCover:
		name = "♪ " + name
	}
	sub := c.Artist
	if c.Year > 0 {
		sub = fmt.Sprintf("%s · %d", sub, c.Year)
	}

	style := styles.GridCellStyle
	nameStyle := styles.SubtitleStyle
	if selected {
		style = styles.GridCellSelectedStyle
		nameStyle = styles.TitleStyle
	}
	return style.Width(width + HorizontalPadding).Render(
		nameStyle.Render(styles.Pad(name, width)) + "\n" +
			styles.DimStyle.Render(styles.Pad(sub, width)),
	)
}

// VisibleAlbums returns the album ids of the rows currently on screen
func (g Grid) VisibleAlbums() []int64 {
	var ids []int64
	budget := g.available()
	for i := g.offset; i < len(g.rows) && budget > 0; i++ {
		ids = append(ids, g.rows[i].Albums...)
		budget -= g.rowHeight(i)
	}
	return ids
}
