package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turnmaze/internal/storage"
)

// History layout constants
const (
	maxRuns = 100 // Max runs to load per maze
)

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	mazes      []string // Maze IDs with at least one run
	mazeCursor int
	store      *storage.Store
	settings   storage.Settings
	stats      map[string]*storage.MazeStats
	runs       []storage.RunEntry
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	err        error
	quitting   bool
}

// NewHistoryModel creates a history view. When mazeID is not empty the
// view starts on that maze. Runs and best costs are those made under
// settings.
func NewHistoryModel(store *storage.Store, settings storage.Settings, mazeID string, width, height int) HistoryModel {
	m := HistoryModel{
		store:    store,
		settings: settings,
		keys:     DefaultHistoryKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}

	stats, err := store.AllMazeStats(settings)
	if err != nil {
		m.err = err
	}
	m.stats = stats
	for id := range stats {
		m.mazes = append(m.mazes, id)
	}
	sort.Strings(m.mazes)
	for i, id := range m.mazes {
		if id == mazeID {
			m.mazeCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.mazes) > 0 {
		m.loadRuns(m.mazes[m.mazeCursor])
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Cost", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Turns", Width: 6},
		{Title: "Expanded", Width: 9},
		{Title: "Key", Width: 22},
		{Title: "Date", Width: 13},
	}

	height := m.height - 10 // Leave room for header, summary and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the given maze ID.
func (m *HistoryModel) loadRuns(mazeID string) {
	runs, err := m.store.RunsForMaze(mazeID, m.settings, maxRuns)
	if err != nil {
		m.err = err
		runs = nil
	}
	m.runs = runs
	m.table.SetRows(runRows(runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		cost := "-"
		if r.Found {
			cost = fmt.Sprintf("%d", r.Cost)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			cost,
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Expanded),
			r.Settings.KeyMode,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMaze):
			if len(m.mazes) > 0 {
				m.mazeCursor = (m.mazeCursor + 1) % len(m.mazes)
				m.loadRuns(m.mazes[m.mazeCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMaze):
			if len(m.mazes) > 0 {
				m.mazeCursor--
				if m.mazeCursor < 0 {
					m.mazeCursor = len(m.mazes) - 1
				}
				m.loadRuns(m.mazes[m.mazeCursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the maze currently shown, or "" when there are no runs.
func (m HistoryModel) Selected() string {
	if len(m.mazes) == 0 {
		return ""
	}
	return m.mazes[m.mazeCursor]
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder

	title := "RUN HISTORY"
	if id := m.Selected(); id != "" {
		title = fmt.Sprintf("RUN HISTORY - %s (%d/%d)", id, m.mazeCursor+1, len(m.mazes))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.err.Error())
	case len(m.mazes) == 0:
		b.WriteString(dimStyle.Italic(true).Render("No runs recorded yet.\nUse `turnmaze solve --save` to record one."))
	default:
		b.WriteString(m.summary())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.settings.String()))
		b.WriteString("\n")
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary describes the selected maze's aggregate stats.
func (m HistoryModel) summary() string {
	st, ok := m.stats[m.Selected()]
	if !ok {
		return ""
	}
	best := "never solved"
	if st.BestCost >= 0 {
		best = fmt.Sprintf("best %d", st.BestCost)
	}
	return fmt.Sprintf("%d runs, %d solved, %s, avg %.1f expanded", st.Runs, st.Solved, best, st.AvgExpanded)
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, settings storage.Settings, mazeID string, width, height int) error {
	model := NewHistoryModel(store, settings, mazeID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
