package tui

// screenLayout holds the calculated pane sizes for the View
type screenLayout struct {
	sidebarWidth  int
	contentWidth  int
	contentHeight int
	modalWidth    int
	modalHeight   int
	gridColumns   int
}

// layout computes pane sizes from the window size
func (m Model) layout() screenLayout {
	l := screenLayout{
		sidebarWidth:  SidebarWidth,
		contentHeight: max(m.Height-ChromeHeight, 3),
		contentWidth:  max(m.Width-SidebarWidth, 10),
	}
	l.modalWidth = max(min(m.Width-4, 72), 20)
	l.modalHeight = max(l.contentHeight-2, 6)

	// Each album cell needs MinGridCell columns; the table border takes the rest
	usable := l.contentWidth - 2
	l.gridColumns = max(usable/MinGridCell, 1)
	return l
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	l := m.layout()

	m.Sidebar.SetSize(l.sidebarWidth, l.contentHeight)
	m.Table.SetSize(l.contentWidth, l.contentHeight)
	m.Grid.SetSize(l.contentWidth, l.contentHeight)

	m.Search.SetSize(l.modalWidth, l.modalHeight)
	m.Queue.SetSize(l.modalWidth, l.modalHeight)
	m.Settings.SetSize(l.modalWidth, l.modalHeight)
	m.Help.SetSize(l.modalWidth, l.modalHeight)
	m.Colors.SetSize(l.modalWidth, l.modalHeight)

	m.App.Sections.SetColumns(l.gridColumns)
}
