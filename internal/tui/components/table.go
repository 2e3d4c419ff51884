package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// Layout constants shared by bordered panels
const (
	BorderWidth          = 2
	BorderHeight         = 2
	HorizontalPadding    = 2
	ScrollIndicatorLines = 2
	TitleLines           = 1
)

// Column is a table column. Width 0 shares the remaining space.
type Column struct {
	Title     string
	Width     int
	Indicator state.Indicator
}

// Row is one entity line
type Row struct {
	Target domain.Context
	Cells  []string
}

// Table is a scrolling, sortable entity list
type Table struct {
	title   string
	columns []Column
	rows    []Row
	empty   string

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool
}

// NewTable creates an empty table
func NewTable() Table {
	return Table{empty: "Nothing here yet"}
}

// SetTitle sets the border title line
func (t *Table) SetTitle(title string) { t.title = title }

// SetEmptyText sets what is shown when there are no rows
func (t *Table) SetEmptyText(s string) { t.empty = s }

// SetColumns replaces the column layout
func (t *Table) SetColumns(cols []Column) { t.columns = cols }

// SetRows replaces the rows, keeping the cursor on the same entity when it
// is still present
func (t *Table) SetRows(rows []Row) {
	var keep domain.Context
	hadSelection := false
	if r, ok := t.Selected(); ok {
		keep, hadSelection = r.Target, true
	}

	t.rows = rows
	if hadSelection && t.SelectTarget(keep) {
		return
	}
	t.cursor = min(t.cursor, max(len(rows)-1, 0))
	t.ensureVisible()
}

// Rows returns the current rows
func (t Table) Rows() []Row { return t.rows }

// SetSize updates the component dimensions
func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.maxVisible = max(height-BorderHeight-TitleLines-1-ScrollIndicatorLines, 1)
	t.ensureVisible()
}

// SetFocused sets the focus state
func (t *Table) SetFocused(focused bool) { t.focused = focused }

// Cursor returns the selected row index
func (t Table) Cursor() int { return t.cursor }

// Selected returns the row under the cursor
func (t Table) Selected() (Row, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[t.cursor], true
}

// SelectTarget moves the cursor to target. It reports whether it was found.
func (t *Table) SelectTarget(target domain.Context) bool {
	for i, r := range t.rows {
		if r.Target == target {
			t.cursor = i
			t.ensureVisible()
			return true
		}
	}
	return false
}

func (t *Table) ensureVisible() {
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
	t.offset = max(0, min(t.offset, max(len(t.rows)-t.maxVisible, 0)))
}

// Update moves the cursor. It reports whether the selection changed.
func (t Table) Update(msg tea.Msg) (Table, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || len(t.rows) == 0 {
		return t, false
	}

	before := t.cursor
	last := len(t.rows) - 1
	switch {
	case key.Matches(keyMsg, CursorKeys.Up):
		t.cursor--
	case key.Matches(keyMsg, CursorKeys.Down):
		t.cursor++
	case key.Matches(keyMsg, CursorKeys.Home):
		t.cursor = 0
	case key.Matches(keyMsg, CursorKeys.End):
		t.cursor = last
	case key.Matches(keyMsg, CursorKeys.PageUp):
		t.cursor -= t.maxVisible
	case key.Matches(keyMsg, CursorKeys.PageDown):
		t.cursor += t.maxVisible
	}
	t.cursor = max(0, min(t.cursor, last))
	t.ensureVisible()
	return t, t.cursor != before
}

// View renders the component
func (t Table) View() string {
	style := styles.InactiveBorder
	if t.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(t.width - frameW).
		Height(t.height - frameH).
		Render(t.render())
}

func (t Table) innerWidth() int {
	return max(t.width-BorderWidth-HorizontalPadding, 1)
}

// widths resolves flexible columns against the inner width
func (t Table) widths() []int {
	inner := t.innerWidth()
	out := make([]int, len(t.columns))
	fixed, flex := 0, 0
	for i, c := range t.columns {
		if c.Width > 0 {
			out[i] = c.Width
			fixed += c.Width + 1
		} else {
			flex++
		}
	}
	if flex == 0 {
		return out
	}
	share := max((inner-fixed)/flex-1, 4)
	for i, c := range t.columns {
		if c.Width == 0 {
			out[i] = share
		}
	}
	return out
}

func indicatorGlyph(ind state.Indicator) string {
	switch ind {
	case state.IndicatorDown:
		return " ▾"
	case state.IndicatorUp:
		return " ▴"
	default:
		return ""
	}
}

func (t Table) render() string {
	title := styles.AccentStyle.Render(styles.Truncate(t.title, t.innerWidth()))
	widths := t.widths()

	var header []string
	for i, c := range t.columns {
		header = append(header, styles.Pad(c.Title+indicatorGlyph(c.Indicator), widths[i]))
	}
	headerLine := styles.HeaderStyle.Render(strings.Join(header, " "))

	if len(t.rows) == 0 {
		return title + "\n" + headerLine + "\n \n" + styles.DimStyle.Render(t.empty)
	}

	end := min(t.offset+t.maxVisible, len(t.rows))
	lines := make([]string, 0, end-t.offset)
	for i := t.offset; i < end; i++ {
		r := t.rows[i]
		parts := make([]styles.RowPart, 0, len(widths))
		for j, w := range widths {
			cell := ""
			if j < len(r.Cells) {
				cell = r.Cells[j]
			}
			text := styles.Pad(cell, w)
			if j < len(widths)-1 {
				text += " "
			}
			parts = append(parts, styles.RowPart{Text: text})
		}
		lines = append(lines, styles.RenderListRow(parts, i == t.cursor, t.innerWidth()))
	}

	up := " "
	if t.offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(t.rows) {
		down = styles.DimStyle.Render("↓ more")
	}
	return title + "\n" + headerLine + "\n" + up + "\n" + strings.Join(lines, "\n") + "\n" + down
}
