package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/search"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// SearchKeyMap drives the search overlay. Letters always go to the input.
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// SearchKeys are the search overlay bindings
var SearchKeys = SearchKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
	Down:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "next")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
}

// SearchGroup is one entity type's hits
type SearchGroup struct {
	Title   string
	Entries []search.Entry
}

// SearchBox is the search overlay: a query input above grouped results
type SearchBox struct {
	input   textinput.Model
	groups  []SearchGroup
	flat    []search.Entry
	cursor  int
	pending bool
	width   int
	height  int
}

// NewSearchBox creates a new search box
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = "Search artists, albums, tracks..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle
	ti.CharLimit = 128
	return SearchBox{input: ti}
}

// Focus starts a fresh query
func (s *SearchBox) Focus(term string) tea.Cmd {
	s.input.SetValue(term)
	s.input.CursorEnd()
	s.cursor = 0
	return s.input.Focus()
}

// Blur stops taking input
func (s *SearchBox) Blur() { s.input.Blur() }

// Value returns the current query
func (s SearchBox) Value() string { return s.input.Value() }

// SetSize updates the component dimensions
func (s *SearchBox) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = max(width-BorderWidth-HorizontalPadding-4, 10)
}

// SetResults replaces the result groups. pending marks local-only results
// shown while the backend answer is outstanding.
func (s *SearchBox) SetResults(groups []SearchGroup, pending bool) {
	s.groups = groups
	s.pending = pending
	s.flat = s.flat[:0]
	for _, g := range groups {
		s.flat = append(s.flat, g.Entries...)
	}
	s.cursor = max(0, min(s.cursor, len(s.flat)-1))
}

// Selected returns the highlighted result
func (s SearchBox) Selected() (search.Entry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.flat) {
		return search.Entry{}, false
	}
	return s.flat[s.cursor], true
}

// Update handles input. It returns whether the query text changed and
// whether a result was chosen.
func (s SearchBox) Update(msg tea.Msg) (sb SearchBox, cmd tea.Cmd, changed, chosen bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, SearchKeys.Up):
			s.cursor = max(s.cursor-1, 0)
			return s, nil, false, false
		case key.Matches(keyMsg, SearchKeys.Down):
			s.cursor = min(s.cursor+1, max(len(s.flat)-1, 0))
			return s, nil, false, false
		case key.Matches(keyMsg, SearchKeys.Select):
			_, ok := s.Selected()
			return s, nil, false, ok
		}
	}

	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before, false
}

// View renders the search box
func (s SearchBox) View() string {
	width := max(s.width-BorderWidth-HorizontalPadding, 20)
	var b strings.Builder
	b.WriteString(s.input.View())
	if s.pending {
		b.WriteString("  " + styles.DimStyle.Render("searching..."))
	}
	b.WriteString("\n")

	budget := max(s.height-BorderHeight-4, 3)
	idx := 0
	for _, g := range s.groups {
		if len(g.Entries) == 0 {
			continue
		}
		if budget <= 1 {
			break
		}
		b.WriteString("\n" + styles.SectionTitleStyle.Render(g.Title))
		budget--
		for _, e := range g.Entries {
			if budget <= 0 {
				break
			}
			line := styles.Truncate(e.Name, width-2)
			if idx == s.cursor {
				b.WriteString("\n" + styles.SelectedItemStyle.Width(width).Render(line))
			} else {
				b.WriteString("\n" + styles.NormalItemStyle.Width(width).Render(line))
			}
			idx++
			budget--
		}
	}
	if len(s.flat) == 0 && s.input.Value() != "" && !s.pending {
		b.WriteString("\n" + styles.DimStyle.Render("No matches"))
	}

	return styles.ModalStyle.Width(width).Render(lipgloss.NewStyle().Render(b.String()))
}
