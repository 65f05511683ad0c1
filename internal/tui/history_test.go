package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turnmaze/internal/search"
	"github.com/vovakirdan/turnmaze/internal/storage"
)

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	settings := storage.DefaultSettings()
	cheap := storage.SettingsOf("", search.CostModel{Move: 1, Turn: 1}, search.DefaultPruning())

	store.SaveRun(storage.RunEntry{MazeID: "alpha", Found: true, Cost: 12, Settings: settings})
	store.SaveRun(storage.RunEntry{MazeID: "beta", Found: true, Cost: 2008, Settings: settings})
	store.SaveRun(storage.RunEntry{MazeID: "beta", Found: false, Settings: settings})
	store.SaveRun(storage.RunEntry{MazeID: "beta", Found: true, Cost: 10, Settings: cheap})

	m := NewHistoryModel(store, settings, "beta", 100, 30)
	if m.Selected() != "beta" {
		t.Fatalf("Selected() = %q", m.Selected())
	}
	if len(m.runs) != 2 {
		t.Errorf("loaded %d runs", len(m.runs))
	}

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY - beta") || !strings.Contains(view, "best 2008") {
		t.Errorf("view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.Selected() != "alpha" || len(m.runs) != 1 {
		t.Errorf("after tab: %q with %d runs", m.Selected(), len(m.runs))
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewHistoryModel(store, storage.DefaultSettings(), "", 80, 24)
	if m.Selected() != "" {
		t.Errorf("Selected() = %q", m.Selected())
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("view:\n%s", m.View())
	}
}
