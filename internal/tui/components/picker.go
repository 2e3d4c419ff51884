package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// Picker is a small modal list: context menus, playlist choice, confirmations
type Picker struct {
	title   string
	options []string
	cursor  int
	width   int
}

// NewPicker creates a picker over options
func NewPicker(title string, options []string) Picker {
	w := lipgloss.Width(title)
	for _, o := range options {
		w = max(w, lipgloss.Width(o)+4)
	}
	return Picker{title: title, options: options, width: min(w, 48)}
}

// Cursor returns the highlighted option index
func (p Picker) Cursor() int { return p.cursor }

// Len returns how many options there are
func (p Picker) Len() int { return len(p.options) }

// Update moves the highlight and returns the chosen index on confirm, or -1
func (p Picker) Update(msg tea.Msg) (Picker, int) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.options) == 0 {
		return p, -1
	}
	switch {
	case key.Matches(keyMsg, PickerKeys.Up):
		p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
	case key.Matches(keyMsg, PickerKeys.Down):
		p.cursor = (p.cursor + 1) % len(p.options)
	case key.Matches(keyMsg, PickerKeys.Confirm):
		return p, p.cursor
	}
	return p, -1
}

// View renders the picker
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(p.title))
	for i, o := range p.options {
		b.WriteString("\n")
		if i == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Width(p.width).Render(o))
		} else {
			b.WriteString(styles.NormalItemStyle.Width(p.width).Render(o))
		}
	}
	if len(p.options) == 0 {
		b.WriteString("\n" + styles.DimStyle.Render("Nothing to choose"))
	}
	return styles.ModalStyle.Render(b.String())
}
