package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/muse/internal/domain"
)

// Palette is one color scheme
type Palette struct {
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color
	Warn       lipgloss.Color
	Success    lipgloss.Color
}

var (
	DarkPalette = Palette{
		Accent:     lipgloss.Color("#E0607E"),
		Background: lipgloss.Color("#1A1B26"),
		Surface:    lipgloss.Color("#2F3346"),
		Border:     lipgloss.Color("#565F89"),
		Text:       lipgloss.Color("#A9B1D6"),
		TextDim:    lipgloss.Color("#6B7089"),
		TextBright: lipgloss.Color("#F5F5FA"),
		Warn:       lipgloss.Color("#F7768E"),
		Success:    lipgloss.Color("#9ECE6A"),
	}

	LightPalette = Palette{
		Accent:     lipgloss.Color("#C2185B"),
		Background: lipgloss.Color("#FAFAFA"),
		Surface:    lipgloss.Color("#E4E6EE"),
		Border:     lipgloss.Color("#9AA0B4"),
		Text:       lipgloss.Color("#3B3F51"),
		TextDim:    lipgloss.Color("#7A7F94"),
		TextBright: lipgloss.Color("#111320"),
		Warn:       lipgloss.Color("#D32F2F"),
		Success:    lipgloss.Color("#2E7D32"),
	}
)

// Current is the palette every style below was built from
var Current = DarkPalette

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HighlightStyle lipgloss.Style
)

// Panel and list styles
var (
	ActiveBorder      lipgloss.Style
	InactiveBorder    lipgloss.Style
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
	HeaderStyle       lipgloss.Style
	SectionTitleStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
)

// Help, progress and cell styles
var (
	HelpKeyStyle          lipgloss.Style
	HelpDescStyle         lipgloss.Style
	ProgressFullStyle     lipgloss.Style
	ProgressEmptyStyle    lipgloss.Style
	GridCellStyle         lipgloss.Style
	GridCellSelectedStyle lipgloss.Style
	StatusBarStyle        lipgloss.Style
	MatchHighlightStyle   lipgloss.Style
)

func init() { Use(DarkPalette) }

// Use rebuilds every style from p
func Use(p Palette) {
	Current = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.TextBright).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Text)
	DimStyle = lipgloss.NewStyle().Foreground(p.TextDim)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Warn)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(p.TextBright).
		Background(p.Accent).
		Padding(0, 1)

	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)
	InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(p.TextBright).
		Background(p.Surface).
		Padding(0, 1)
	NormalItemStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Bold(true).
		Padding(0, 1)
	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.TextBright).
		Bold(true).
		MarginBottom(1)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.TextDim)
	ProgressFullStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ProgressEmptyStyle = lipgloss.NewStyle().Foreground(p.TextDim)

	GridCellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	GridCellSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().Foreground(p.TextDim)
	MatchHighlightStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// PaletteFor picks the palette for a configured theme. Custom themes start
// from the dark palette and override every color the user set.
func PaletteFor(theme domain.Theme, custom domain.ThemeColors) Palette {
	switch theme {
	case domain.ThemeLight:
		return LightPalette
	case domain.ThemeCustom:
		p := DarkPalette
		override(&p.Accent, custom.AccentInput)
		override(&p.Background, custom.Background)
		override(&p.Surface, custom.BackgroundActive)
		override(&p.Border, custom.BorderColor)
		override(&p.Text, custom.Text)
		override(&p.TextDim, custom.TextDim)
		override(&p.TextBright, custom.TextHighlight)
		override(&p.Warn, custom.Warn)
		return p
	default:
		return DarkPalette
	}
}

func override(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

// Truncate truncates a string to the given display width with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, width, "…")
}

// Pad pads or cuts a string to exactly width columns
func Pad(s string, width int) string {
	s = Truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// RenderProgressBar renders a bar filled to fraction (0..1)
func RenderProgressBar(fraction float64, width int) string {
	if width < 3 {
		return ""
	}
	filled := int(float64(width) * fraction)
	filled = max(0, min(filled, width))

	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// RowPart is a segment of a list row with an optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a list row with a uniform background when selected.
// Each part is styled separately to avoid ANSI resets breaking the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	p := Current
	var b strings.Builder
	visible := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(p.TextBright)
		default:
			style = style.Foreground(p.Text)
		}
		if selected {
			style = style.Background(p.Surface)
		}
		b.WriteString(style.Render(part.Text))
		visible += lipgloss.Width(part.Text)
	}

	pad := lipgloss.NewStyle()
	if selected {
		pad = pad.Background(p.Surface)
	}
	if n := width - visible - 2; n > 0 {
		b.WriteString(pad.Render(strings.Repeat(" ", n)))
	}
	margin := pad.Render(" ")
	return margin + b.String() + margin
}
