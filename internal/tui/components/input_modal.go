package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// InputModal is a single-line text prompt
type InputModal struct {
	visible bool
	title   string
	hint    string
	input   textinput.Model
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{input: ti}
}

// Show displays the modal prefilled with value
func (m *InputModal) Show(title, placeholder, value string) tea.Cmd {
	m.visible = true
	m.title = title
	m.hint = ""
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// SetHint sets a line shown under the input, usually a validation error
func (m *InputModal) SetHint(hint string) { m.hint = hint }

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool { return m.visible }

// Value returns the current input value
func (m InputModal) Value() string { return m.input.Value() }

// Update handles input events, returns (modal, cmd, submitted).
// Escape is left to the global router.
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		return m, nil, true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 44
	lines := []string{
		styles.ModalTitleStyle.Width(modalWidth).Render(m.title),
		lipgloss.NewStyle().Width(modalWidth).Render(m.input.View()),
	}
	if m.hint != "" {
		lines = append(lines, "", styles.ErrorStyle.Width(modalWidth).Render(m.hint))
	}
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
