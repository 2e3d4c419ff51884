package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// Panel is a scrollable bordered text panel (queue, settings, help)
type Panel struct {
	title    string
	viewport viewport.Model
	width    int
	height   int
}

// NewPanel creates a panel
func NewPanel(title string) Panel {
	return Panel{title: title, viewport: viewport.New(0, 0)}
}

// SetTitle sets the panel heading
func (p *Panel) SetTitle(title string) { p.title = title }

// SetContent replaces the body, keeping the scroll position where possible
func (p *Panel) SetContent(s string) { p.viewport.SetContent(s) }

// ScrollTo moves line into view
func (p *Panel) ScrollTo(line int) {
	if line < p.viewport.YOffset || line >= p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(max(line-p.viewport.Height/2, 0))
	}
}

// SetSize updates the component dimensions
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-BorderWidth-HorizontalPadding, 1)
	p.viewport.Height = max(height-BorderHeight-TitleLines-2, 1)
}

// Update scrolls the panel
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the component
func (p Panel) View() string {
	body := styles.ModalTitleStyle.Render(p.title) + "\n" + p.viewport.View()
	return styles.ModalStyle.
		Width(max(p.width-BorderWidth, 1)).
		Render(body)
}
