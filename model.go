package csview

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nick-f925/csv-editor/detail"
	nt "github.com/nick-f925/csv-editor/entity"
	"github.com/nick-f925/csv-editor/grid"
	"github.com/nick-f925/csv-editor/message"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the csv viewer TUI.
type Model struct {
	Store  Store
	Layout *Layout
	logger nt.Logger
	ctx    context.Context

	CurrentScreen Screen
	errorString   string

	GridPanel   grid.Panel
	DetailPanel detail.Panel

	current int    // 1-indexed selected row, 0 when there are none
	sorted  string // active sort for the footer, "" until first sort

	Width  int
	Height int
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, store Store, layout *Layout, lgr nt.Logger) Model {

	columns := layout.Columns(store)

	return Model{
		Store:         store,
		Layout:        layout,
		logger:        lgr,
		ctx:           ctx,
		CurrentScreen: TableScreen,
		GridPanel:     grid.New(columns, store.Rows(), layout.Placeholder),
		DetailPanel:   detail.New(columns, layout.Placeholder),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.SelectedMsg:
		m.current = msg.Row
		return m, nil

	case message.SortedMsg:
		m.sorted = FormatSort(msg.Label, msg.Desc)
		return m, nil

	case message.InspectMsg:
		m.logger.Info(m.ctx, "inspecting row", "rowid", msg.Row.RowID())
		m.CurrentScreen = DetailScreen
		var cmd tea.Cmd
		m.DetailPanel, cmd = m.DetailPanel.Update(detail.RowMsg{Row: msg.Row})
		return m, cmd

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.CurrentScreen != TableScreen {
				m.CurrentScreen = TableScreen
				return m, nil
			}
			return m, tea.Quit
		}

		// remaining keys go to the current screen's panel
		var cmd tea.Cmd
		switch m.CurrentScreen {
		case DetailScreen:
			m.DetailPanel, cmd = m.DetailPanel.Update(msg)
		default:
			m.GridPanel, cmd = m.GridPanel.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd1, cmd2 tea.Cmd
		m.GridPanel, cmd1 = m.GridPanel.Update(grid.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		m.DetailPanel, cmd2 = m.DetailPanel.Update(detail.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		return m, tea.Sequence(cmd1, cmd2)
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	// Get current screen's content from child panes
	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	default:
		screenContent = m.GridPanel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(m.current, m.Store.NumRows(), m.sorted, m.Store.Name(), m.Width)
	if m.errorString != "" {
		footerContent = m.errorString
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	// Compose layers on canvas
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
