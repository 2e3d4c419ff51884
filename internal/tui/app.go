package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/muse/internal/app"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/tui/components"
	"github.com/mmcdole/muse/internal/tui/styles"
)

// Pane is the focused half of the screen
type Pane int

const (
	PaneSidebar Pane = iota
	PaneContent
)

// Layout proportions
const (
	SidebarWidth   = 22
	MinGridCell    = 24
	NowPlayingRows = 2
	ChromeHeight   = NowPlayingRows + 1

	tickInterval  = 250 * time.Millisecond
	statusTimeout = 4 * time.Second
)

// Source is the inbound side of the backend connection
type Source struct {
	Events <-chan domain.PushEvent
	Err    func() error
}

// Model is the main Bubble Tea model for the application. It only reads
// the mirrored state; every change goes through the services or the
// ingest pipeline.
type Model struct {
	App    *app.App
	source Source
	logger *slog.Logger

	// UI components
	Sidebar  components.Sidebar
	Table    components.Table
	Grid     components.Grid
	Search   components.SearchBox
	Input    components.InputModal
	Picker   components.Picker
	Queue    components.Panel
	Settings components.Panel
	Help     components.Panel
	Colors   components.Panel

	// The overlay the shared input and picker currently serve
	active    overlay.ID
	hasActive bool
	pickerIDs []int64
	newTracks []int64 // tracks for a playlist being created from the picker
	showHelp  bool

	// Owner whose tracks replace the owner list, zero when none
	drill domain.Context

	// Counter values and screen at the last refresh
	seen     map[domain.Field]uint64
	lastView domain.ActiveView

	Focus  Pane
	Width  int
	Height int
	Ready  bool

	StatusMsg    string
	StatusIsErr  bool
	statusSeq    int
	SpinnerFrame int
	StreamClosed bool
	theme        domain.Theme
}

// NewModel creates a new application model
func NewModel(a *app.App, source Source, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := Model{
		App:      a,
		source:   source,
		logger:   logger,
		Sidebar:  components.NewSidebar(),
		Table:    components.NewTable(),
		Grid:     components.NewGrid(),
		Search:   components.NewSearchBox(),
		Input:    components.NewInputModal(),
		Queue:    components.NewPanel("Queue"),
		Settings: components.NewPanel("Settings"),
		Help:     components.NewPanel("Keys"),
		Colors:   components.NewPanel("Custom colors"),
		seen:     make(map[domain.Field]uint64),
		Focus:    PaneContent,
	}
	m.setFocus(PaneContent)
	return m
}

// Init waits for the first push event and starts the clock
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForEventCmd(m.source.Events, m.source.Err),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		m.refresh(true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case EventMsg:
		m.App.Handle(msg.Event)
		m.refresh(false)
		return m, WaitForEventCmd(m.source.Events, m.source.Err)

	case StreamClosedMsg:
		m.StreamClosed = true
		m.logger.Warn("backend event stream closed", "error", msg.Err)
		text := "backend disconnected"
		if msg.Err != nil {
			text += ": " + msg.Err.Error()
		}
		return m, m.setStatus(text, true)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(tickInterval)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ErrMsg:
		m.logger.Error("ui error", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		if msg.seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusTimeout)
}

func (m *Model) setFocus(p Pane) {
	m.Focus = p
	m.Sidebar.SetFocused(p == PaneSidebar)
	m.Table.SetFocused(p == PaneContent)
	m.Grid.SetFocused(p == PaneContent)
}

// View renders the screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.Sidebar.View(), m.renderContent())
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.renderNowPlaying(), m.renderFooter())

	if modal := m.renderOverlay(); modal != "" {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			modal)
	}
	return view
}

// applyTheme rebuilds styles when the configured theme changed
func (m *Model) applyTheme() {
	cfg := m.App.Session.Config
	if cfg.Theme == m.theme && cfg.Theme != domain.ThemeCustom {
		return
	}
	m.theme = cfg.Theme
	styles.Use(styles.PaletteFor(cfg.Theme, cfg.CustomColors))

	selected := m.Sidebar.Selected()
	m.Sidebar = components.NewSidebar()
	m.Sidebar.Select(selected)
	m.setFocus(m.Focus)
	m.updateLayout()
}
