package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/tui/components"
	"github.com/mmcdole/muse/internal/tui/styles"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) spinner() string {
	return styles.AccentStyle.Render(spinnerFrames[m.SpinnerFrame%len(spinnerFrames)])
}

// renderContent draws the right-hand pane for the active screen
func (m Model) renderContent() string {
	l := m.layout()
	box := lipgloss.NewStyle().Width(l.contentWidth).Height(l.contentHeight)

	switch m.App.Session.View.View {
	case domain.ActiveViewLoading:
		return box.Align(lipgloss.Center, lipgloss.Center).
			Render(m.spinner() + " Connecting to the backend...")

	case domain.ActiveViewFirst:
		lines := []string{
			styles.TitleStyle.Render("Welcome to muse"),
			"",
			styles.SubtitleStyle.Render("Pick the folder that holds your music to build the library."),
			styles.DimStyle.Render("Press enter to choose a folder, or i to import a library export."),
		}
		return box.Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	}

	if m.isGrid() {
		return m.Grid.View()
	}
	return m.Table.View()
}

// renderNowPlaying draws the transport line and its progress bar
func (m Model) renderNowPlaying() string {
	audio := m.App.Session.Audio
	ents := m.App.Library.Entities
	width := max(m.Width, 20)

	title := styles.DimStyle.Render("Nothing playing")
	var total int64
	if t, ok := ents.Tracks.Get(audio.CurrentTrack); ok && audio.CurrentTrack != 0 {
		total = t.TotalTime
		title = styles.TitleStyle.Render(t.Name)
		if artist := ents.Name(domain.DataTypeArtist, t.ArtistID); artist != "" {
			title += styles.DimStyle.Render(" · " + artist)
		}
	}

	state := "■"
	if audio.IsPlaying {
		state = "▶"
	}

	var modes []string
	if audio.ShuffleMode {
		modes = append(modes, "shuffle")
	}
	switch audio.RepeatMode {
	case domain.RepeatTrack:
		modes = append(modes, "repeat one")
	case domain.RepeatQueue:
		modes = append(modes, "repeat")
	}
	volume := fmt.Sprintf("vol %d%%", audio.Volume)
	if audio.IsMuted {
		volume = "muted"
	}
	right := styles.DimStyle.Render(strings.Join(append(modes, volume), "  "))

	left := styles.AccentStyle.Render(state) + " " + title
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	top := styles.Truncate(left, width-lipgloss.Width(right)-1) + strings.Repeat(" ", gap) + right
	if lipgloss.Width(top) > width {
		top = styles.Truncate(top, width)
	}

	clock := fmt.Sprintf(" %s / %s", components.FormatDuration(audio.Position), components.FormatDuration(total))
	fraction := 0.0
	if total > 0 {
		fraction = float64(audio.Position) / float64(total)
	}
	bar := styles.RenderProgressBar(fraction, max(width-lipgloss.Width(clock), 3)) + styles.DimStyle.Render(clock)

	return lipgloss.JoinVertical(lipgloss.Left, top, bar)
}

// renderFooter draws the status line: a transient message, backend job
// state, or key hints
func (m Model) renderFooter() string {
	session := m.App.Session
	width := max(m.Width, 20)

	var text string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		text = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		text = styles.SuccessStyle.Render(m.StatusMsg)
	case session.Progress.Active:
		text = m.spinner() + " " + progressText(session.Progress.Data)
	case session.Notice.Visible && session.Notice.Notification == domain.NotificationLibraryImport:
		text = styles.SuccessStyle.Render("Library import finished")
	case session.LastError != "":
		text = styles.ErrorStyle.Render(session.LastError)
	case session.LastWarning != "":
		text = styles.DimStyle.Render(session.LastWarning)
	case m.App.Overlays.AnyVisible():
		text = styles.HelpKeyStyle.Render("esc") + " " + styles.HelpDescStyle.Render("close")
	default:
		var hints []string
		for _, b := range Keys.ShortHelp() {
			h := b.Help()
			hints = append(hints, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
		}
		text = strings.Join(hints, "  ")
	}
	return styles.StatusBarStyle.Width(width).Render(styles.Truncate(text, width))
}

func progressText(p domain.Progress) string {
	label := map[domain.ProgressInfo]string{
		domain.ProgressLibraryImport: "Importing library",
		domain.ProgressFileImport:    "Adding files",
		domain.ProgressCoverExtract:  "Extracting covers",
		domain.ProgressDelete:        "Deleting",
		domain.ProgressUpdateTracks:  "Updating tracks",
		domain.ProgressUpdateAlbum:   "Updating album",
	}[p.Info]
	if label == "" {
		label = "Working"
	}
	if p.Value != nil {
		return fmt.Sprintf("%s %.0f%%", label, *p.Value*100)
	}
	return label + "..."
}

// renderOverlay draws the top overlay, or "" when none is shown
func (m Model) renderOverlay() string {
	if m.showHelp {
		return m.Help.View()
	}
	top, ok := m.App.Overlays.Top()
	if !ok {
		return ""
	}
	switch top {
	case overlay.ContextMenu, overlay.PlaylistSelect, overlay.Delete:
		return m.Picker.View()
	case overlay.Edit, overlay.MediaPath, overlay.Import:
		return m.Input.View()
	case overlay.Search:
		return m.Search.View()
	case overlay.Queue:
		return m.Queue.View()
	case overlay.Settings:
		return m.Settings.View()
	case overlay.CustomColor:
		return m.Colors.View()
	}
	return ""
}
