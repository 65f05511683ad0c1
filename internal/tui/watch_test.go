package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/levels/formats"
	"github.com/vovakirdan/turnmaze/internal/search"
	"github.com/vovakirdan/turnmaze/internal/storage"
)

func testMaze(t *testing.T, rows ...string) levels.Maze {
	t.Helper()
	m, err := formats.ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	g, err := m.Grid()
	if err != nil {
		t.Fatal(err)
	}
	return levels.Maze{ID: "test", Name: "Test", Grid: g}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m WatchModel, msg tea.Msg) WatchModel {
	t.Helper()
	next, _ := m.Update(msg)
	wm, ok := next.(WatchModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return wm
}

func TestWatchTicksUntilFound(t *testing.T) {
	m, err := NewWatchModel(WatchConfig{Maze: testMaze(t, "S...E"), TickRate: 10})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20 && !m.Status().Done(); i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if m.Status() != search.StatusFound {
		t.Fatalf("status = %v", m.Status())
	}

	res, err := m.Result()
	if err != nil || res.Path.Cost != 4 {
		t.Errorf("result = %s, %v", res.Path, err)
	}

	view := m.View()
	if !strings.Contains(view, "cost 4: MMMM") {
		t.Errorf("view does not show the path:\n%s", view)
	}
	if !strings.Contains(m.Canvas().String(), "SXXXE") {
		t.Errorf("canvas = %q", m.Canvas().String())
	}
}

func TestWatchKeys(t *testing.T) {
	m, err := NewWatchModel(WatchConfig{Maze: testMaze(t, "S..", "...", "..E"), TickRate: 8})
	if err != nil {
		t.Fatal(err)
	}

	m = update(t, m, keyPress("p"))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m = update(t, m, TickMsg(time.Now()))
	if m.Status() != search.StatusIdle {
		t.Errorf("paused model stepped: %v", m.Status())
	}

	m = update(t, m, keyPress("n"))
	if m.Status() != search.StatusRunning || m.last.Step != 1 {
		t.Errorf("single step: status=%v step=%d", m.Status(), m.last.Step)
	}

	m = update(t, m, keyPress("+"))
	if m.TickRate() != 16 {
		t.Errorf("faster: %d", m.TickRate())
	}
	m = update(t, m, keyPress("-"))
	m = update(t, m, keyPress("-"))
	if m.TickRate() != 4 {
		t.Errorf("slower: %d", m.TickRate())
	}

	m = update(t, m, keyPress("f"))
	if m.Status() != search.StatusFound {
		t.Fatalf("finish: %v", m.Status())
	}
	if res, _ := m.Result(); res.Path.Cost != 1004 {
		t.Errorf("cost = %d", res.Path.Cost)
	}

	m = update(t, m, keyPress("r"))
	if m.Status() != search.StatusIdle || m.path != nil {
		t.Errorf("restart left status %v", m.Status())
	}

	next, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("view after quit = %q", v)
	}
}

func TestWatchUnreachable(t *testing.T) {
	m, err := NewWatchModel(WatchConfig{Maze: testMaze(t, "S#E")})
	if err != nil {
		t.Fatal(err)
	}
	m = update(t, m, keyPress("f"))
	if m.Status() != search.StatusExhausted {
		t.Fatalf("status = %v", m.Status())
	}
	if !strings.Contains(m.View(), search.ErrNoPath.Error()) {
		t.Error("view should report the missing path")
	}
}

func TestWatchSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	settings := storage.SettingsOf("position", search.DefaultCostModel(), search.DefaultPruning())
	m, err := NewWatchModel(WatchConfig{Maze: testMaze(t, "SE"), Settings: settings, Store: store})
	if err != nil {
		t.Fatal(err)
	}
	m = update(t, m, keyPress("f"))
	m = update(t, m, keyPress("f"))
	m = update(t, m, TickMsg(time.Now()))

	runs, err := store.RunsForMaze("test", settings, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Cost != 1 || runs[0].Settings != settings {
		t.Errorf("runs = %+v", runs)
	}
}

func TestNewWatchModelRejectsBadOptions(t *testing.T) {
	_, err := NewWatchModel(WatchConfig{
		Maze:    testMaze(t, "SE"),
		Options: []search.Option{search.WithCosts(search.CostModel{Move: -1})},
	})
	if err == nil {
		t.Error("expected error")
	}
}

func TestPacing(t *testing.T) {
	tests := []struct {
		rate, frames, steps int
	}{
		{1, 1, 1},
		{30, 30, 1},
		{60, 60, 1},
		{240, 60, 4},
		{2000, 60, 33},
	}
	for _, tc := range tests {
		if got := frameRate(tc.rate); got != tc.frames {
			t.Errorf("frameRate(%d) = %d, expected %d", tc.rate, got, tc.frames)
		}
		if got := stepsPerFrame(tc.rate); got != tc.steps {
			t.Errorf("stepsPerFrame(%d) = %d, expected %d", tc.rate, got, tc.steps)
		}
	}
}
