package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/turnmaze/internal/search"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var (
	defaults = DefaultSettings()
	parity   = SettingsOf("position", search.DefaultCostModel(), search.DefaultPruning())
	cheap    = SettingsOf("", search.CostModel{Move: 1, Turn: 1}, search.DefaultPruning())
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{MazeID: "wall", Found: true, Cost: 2008, Steps: 8, Turns: 2, Expanded: 40, Settings: defaults, Actions: "MMRMMMMLMM", Duration: 1500 * time.Microsecond},
		{MazeID: "wall", Found: false, Cost: 123, Settings: defaults, Expanded: 12},
		{MazeID: "wall", Found: true, Cost: 3008, Settings: defaults},
		{MazeID: "wall", Found: true, Cost: 10, Settings: cheap},
		{MazeID: "line", Found: true, Cost: 4, Steps: 4, Settings: defaults, Actions: "MMMM"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RunsForMaze("wall", defaults, 10)
	if err != nil {
		t.Fatalf("RunsForMaze() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Solved first, cheapest first
	if got[0].Cost != 2008 || got[1].Cost != 3008 || got[2].Found {
		t.Errorf("Runs not in expected order: %+v", got)
	}
	if got[2].Cost != -1 {
		t.Errorf("Unsolved run should store cost -1, got %d", got[2].Cost)
	}

	first := got[0]
	if first.Actions != "MMRMMMMLMM" || first.Steps != 8 || first.Turns != 2 || first.Expanded != 40 {
		t.Errorf("Run fields not preserved: %+v", first)
	}
	if first.Settings != defaults {
		t.Errorf("Settings = %+v, expected %+v", first.Settings, defaults)
	}
	if first.Duration != 1500*time.Microsecond {
		t.Errorf("Duration = %v", first.Duration)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreSaveRunRequiresMaze(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunEntry{Found: true, Cost: 1}); err == nil {
		t.Error("Expected error for run without maze id")
	}
}

func TestStoreRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{MazeID: "test", Found: true, Cost: (i + 1) * 100, Settings: parity})
	}
	store.SaveRun(RunEntry{MazeID: "other", Found: true, Cost: 7, Settings: parity})

	runs, err := store.RunsForMaze("test", parity, 3)
	if err != nil {
		t.Fatalf("RunsForMaze() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Cost != 100 || runs[1].Cost != 200 || runs[2].Cost != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	recent, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Cost != 7 || recent[1].Cost != 500 {
		t.Errorf("RecentRuns() = %+v", recent)
	}

	recent, err = store.RecentRuns("test", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Cost != 500 || recent[1].Cost != 400 {
		t.Errorf("RecentRuns(test) = %+v", recent)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("wall", defaults)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for maze without runs, got %+v", best)
	}

	store.SaveRun(RunEntry{MazeID: "wall", Found: false, Settings: defaults})
	if best, _ := store.BestRun("wall", defaults); best != nil {
		t.Errorf("Unsolved runs must not count as best: %+v", best)
	}

	store.SaveRun(RunEntry{MazeID: "wall", Found: true, Cost: 3008, Settings: defaults})
	store.SaveRun(RunEntry{MazeID: "wall", Found: true, Cost: 2008, Settings: defaults})

	best, err = store.BestRun("wall", defaults)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Cost != 2008 || best.Settings != defaults {
		t.Errorf("BestRun() = %+v", best)
	}
}

func TestStoreBestRunSeparatesSettings(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{MazeID: "wall", Found: true, Cost: 2008, Settings: defaults})
	store.SaveRun(RunEntry{MazeID: "wall", Found: true, Cost: 10, Settings: cheap})

	tests := []struct {
		name     string
		settings Settings
		cost     int
	}{
		{"default costs", defaults, 2008},
		{"turn cost 1", cheap, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			best, err := store.BestRun("wall", tc.settings)
			if err != nil {
				t.Fatalf("BestRun() failed: %v", err)
			}
			if best == nil || best.Cost != tc.cost || best.Settings != tc.settings {
				t.Errorf("BestRun() = %+v, expected cost %d", best, tc.cost)
			}

			stats, err := store.AllMazeStats(tc.settings)
			if err != nil {
				t.Fatalf("AllMazeStats() failed: %v", err)
			}
			if st := stats["wall"]; st.BestCost != tc.cost || st.Runs != 2 {
				t.Errorf("stats[wall] = %+v", st)
			}
		})
	}

	if best, _ := store.BestRun("wall", parity); best != nil {
		t.Errorf("BestRun() under unused settings = %+v", best)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL,
			found INTEGER NOT NULL,
			cost INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			key_mode TEXT NOT NULL,
			actions TEXT NOT NULL DEFAULT '',
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO runs (maze_id, found, cost, key_mode) VALUES ('wall', 1, 10, 'position-heading-turn');
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	// Old runs stay listed but never compete for best.
	recent, err := store.RecentRuns("wall", 10)
	if err != nil || len(recent) != 1 || recent[0].Settings.KeyMode != "position-heading-turn" {
		t.Errorf("RecentRuns() = %+v, %v", recent, err)
	}
	if best, _ := store.BestRun("wall", defaults); best != nil {
		t.Errorf("BestRun() = %+v", best)
	}

	if _, err := store.SaveRun(RunEntry{MazeID: "wall", Found: true, Cost: 2008, Settings: defaults}); err != nil {
		t.Fatalf("SaveRun() after migration failed: %v", err)
	}
	if best, _ := store.BestRun("wall", defaults); best == nil || best.Cost != 2008 {
		t.Errorf("BestRun() = %+v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{MazeID: "a", Found: true, Cost: 1, Settings: parity})
	store.SaveRun(RunEntry{MazeID: "a", Found: true, Cost: 2, Settings: parity})
	store.SaveRun(RunEntry{MazeID: "b", Found: true, Cost: 3, Settings: parity})

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	aRuns, _ := store.RecentRuns("a", 10)
	if len(aRuns) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(aRuns))
	}

	bRuns, _ := store.RecentRuns("b", 10)
	if len(bRuns) != 1 {
		t.Errorf("Maze b should not be affected by clearing a")
	}
}

func TestStoreAllMazeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{MazeID: "a", Found: true, Cost: 10, Expanded: 4, Settings: parity})
	store.SaveRun(RunEntry{MazeID: "a", Found: true, Cost: 6, Expanded: 8, Settings: parity})
	store.SaveRun(RunEntry{MazeID: "b", Found: false, Expanded: 3, Settings: parity})

	stats, err := store.AllMazeStats(parity)
	if err != nil {
		t.Fatalf("AllMazeStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 mazes, got %d", len(stats))
	}

	a := stats["a"]
	if a.Runs != 2 || a.Solved != 2 || a.BestCost != 6 || a.AvgExpanded != 6 {
		t.Errorf("stats[a] = %+v", a)
	}
	b := stats["b"]
	if b.Runs != 1 || b.Solved != 0 || b.BestCost != -1 {
		t.Errorf("stats[b] = %+v", b)
	}
}

func TestRunFromResult(t *testing.T) {
	actions, err := search.ParseActions("MMRMM")
	if err != nil {
		t.Fatal(err)
	}
	found := search.Result{
		Status:   search.StatusFound,
		Expanded: 7,
		Path:     search.Path{Actions: actions, Cost: 1004},
	}

	run := RunFromResult("grid", parity, found, time.Millisecond)
	if !run.Found || run.Cost != 1004 || run.Steps != 4 || run.Turns != 1 || run.Actions != "MMRMM" || run.Settings != parity {
		t.Errorf("RunFromResult() = %+v", run)
	}

	missed := RunFromResult("grid", parity, search.Result{Status: search.StatusExhausted, Expanded: 3}, 0)
	if missed.Found || missed.Cost != -1 || missed.Actions != "" || missed.Expanded != 3 {
		t.Errorf("RunFromResult() = %+v", missed)
	}
}

func TestSettings(t *testing.T) {
	if defaults.KeyMode != string(search.KeyPositionHeadingTurn) {
		t.Errorf("default key mode = %q", defaults.KeyMode)
	}
	if got := defaults.String(); got != "position-heading-turn move=1 turn=1000 run=3 repeat=no" {
		t.Errorf("String() = %q", got)
	}
	if defaults.String() == cheap.String() || defaults.String() == parity.String() {
		t.Error("different settings share a fingerprint")
	}
}
