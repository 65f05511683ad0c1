package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turnmaze/internal/core"
	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/render"
	"github.com/vovakirdan/turnmaze/internal/search"
	"github.com/vovakirdan/turnmaze/internal/storage"
)

// Visualiser pacing limits, in search steps per second.
const (
	minTickRate   = 1
	maxTickRate   = 2000
	maxFrameRate  = 60
	speedupFactor = 2
)

// WatchConfig configures a visualiser session.
type WatchConfig struct {
	Maze     levels.Maze
	Options  []search.Option
	// Settings are recorded with saved runs.
	Settings storage.Settings
	TickRate int
	// Store receives the run once it finishes; nil disables saving.
	Store *storage.Store
}

// WatchModel is the Bubble Tea model that steps a search on a timer.
type WatchModel struct {
	cfg      WatchConfig
	stepper  *search.Stepper
	last     search.Snapshot
	path     []core.Coord
	result   search.Result
	err      error
	tickRate int
	paused   bool
	saved    bool
	keys     WatchKeyMap
	help     help.Model
	theme    render.Theme
	width    int
	height   int
	quitting bool
}

// NewWatchModel creates a visualiser for the maze. It fails when the
// search options are invalid.
func NewWatchModel(cfg WatchConfig) (WatchModel, error) {
	stepper, err := search.NewStepper(cfg.Maze.Grid, cfg.Options...)
	if err != nil {
		return WatchModel{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}

	return WatchModel{
		cfg:      cfg,
		stepper:  stepper,
		tickRate: core.Clamp(cfg.TickRate, minTickRate, maxTickRate),
		keys:     DefaultWatchKeyMap(),
		help:     help.New(),
		theme:    render.DefaultTheme(),
	}, nil
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(frameRate(m.tickRate))
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m.advance(stepsPerFrame(m.tickRate))
		}
		return m, tickCmd(frameRate(m.tickRate))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.advance(1)

	case key.Matches(msg, m.keys.Finish):
		m.advance(-1)

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = core.Clamp(m.tickRate*speedupFactor, minTickRate, maxTickRate)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = core.Clamp(m.tickRate/speedupFactor, minTickRate, maxTickRate)

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// advance performs up to n search steps; n < 0 runs to completion.
func (m *WatchModel) advance(n int) {
	for i := 0; (n < 0 || i < n) && !m.stepper.Status().Done(); i++ {
		m.last = m.stepper.Step()
	}
	if m.stepper.Status().Done() && m.path == nil && m.err == nil {
		m.finish()
	}
}

// finish collects the result and saves it once.
func (m *WatchModel) finish() {
	res, err := m.stepper.Result()
	m.result = res
	m.err = err
	if res.Found() {
		m.path = res.Path.Cells()
	}

	if m.cfg.Store != nil && !m.saved {
		run := storage.RunFromResult(m.cfg.Maze.ID, m.cfg.Settings, res, 0)
		//nolint:errcheck // Best-effort save, the visualiser continues regardless
		m.cfg.Store.SaveRun(run)
		m.saved = true
	}
}

// restart discards the current search and starts a new one.
func (m *WatchModel) restart() {
	stepper, err := search.NewStepper(m.cfg.Maze.Grid, m.cfg.Options...)
	if err != nil {
		// Options were accepted by NewWatchModel, so this is unreachable.
		m.err = err
		return
	}
	m.stepper = stepper
	m.last = search.Snapshot{}
	m.path = nil
	m.result = search.Result{}
	m.err = nil
	m.saved = false
}

// Status returns the status of the running search.
func (m WatchModel) Status() search.Status {
	return m.stepper.Status()
}

// Paused reports whether stepping is paused.
func (m WatchModel) Paused() bool { return m.paused }

// TickRate returns the current speed in steps per second.
func (m WatchModel) TickRate() int { return m.tickRate }

// Result returns the outcome once the search has finished.
func (m WatchModel) Result() (search.Result, error) {
	return m.result, m.err
}

// Canvas draws the grid with the current search progress.
func (m WatchModel) Canvas() *render.Canvas {
	ov := render.Overlay{
		Explored: m.stepper.Explored(),
		Frontier: m.stepper.Pending(),
		Path:     m.path,
	}
	if !m.stepper.Status().Done() {
		ov.Current = m.stepper.Current()
	}
	return render.Draw(m.cfg.Maze.Grid, ov)
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.Maze.Name))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(render.Styled(m.Canvas(), m.theme)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statusLine summarises the search progress.
func (m WatchModel) statusLine() string {
	status := m.stepper.Status()
	parts := []string{
		fmt.Sprintf("status: %s", status),
		fmt.Sprintf("step: %d", m.last.Step),
		fmt.Sprintf("expanded: %d", m.last.Expanded),
		fmt.Sprintf("frontier: %d", m.last.FrontierLen),
		fmt.Sprintf("speed: %d/s", m.tickRate),
	}
	if m.paused {
		parts = append(parts, "paused")
	}

	line := strings.Join(parts, "  ")
	switch {
	case status == search.StatusFound:
		line += "\n" + fmt.Sprintf("cost %d: %s", m.result.Path.Cost, search.FormatActions(m.result.Path.Actions))
	case m.err != nil:
		line += "\n" + m.err.Error()
	case m.last.State != nil:
		line += "\n" + fmt.Sprintf("at %v facing %v, cost %d", m.last.State.Pos, m.last.State.Heading, m.last.State.Cost())
	}
	return line
}

// frameRate caps the redraw rate.
func frameRate(tickRate int) int {
	return min(tickRate, maxFrameRate)
}

// stepsPerFrame spreads the tick rate over the capped frame rate.
func stepsPerFrame(tickRate int) int {
	return max(1, tickRate/maxFrameRate)
}

// RunWatch starts the visualiser as a full-screen program.
func RunWatch(cfg WatchConfig) error {
	model, err := NewWatchModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
