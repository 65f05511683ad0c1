// Package storage provides SQLite-based persistence for solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded search run.
type RunEntry struct {
	ID       int64
	MazeID   string
	Found    bool
	Cost     int // -1 when no path was found
	Steps    int
	Turns    int
	Expanded int
	Settings Settings
	Actions  string // action codes, e.g. "MMRMM"
	Duration time.Duration
	// CreatedAt is set by the database.
	CreatedAt time.Time
}

// MazeStats contains aggregated statistics for a maze.
type MazeStats struct {
	MazeID      string
	Runs        int
	Solved      int
	BestCost    int // -1 when never solved under the requested settings
	AvgExpanded float64
	LastRun     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist and adds the
// settings columns to databases created before they were recorded.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
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
		CREATE INDEX IF NOT EXISTS idx_runs_maze_id ON runs(maze_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	existing, err := s.columns("runs")
	if err != nil {
		return err
	}
	added := []struct{ name, def string }{
		{"move_cost", "INTEGER NOT NULL DEFAULT 0"},
		{"turn_cost", "INTEGER NOT NULL DEFAULT 0"},
		{"max_turn_run", "INTEGER NOT NULL DEFAULT 0"},
		{"forbid_repeat_turn", "INTEGER NOT NULL DEFAULT 0"},
		{"settings", "TEXT NOT NULL DEFAULT ''"},
	}
	for _, col := range added {
		if existing[col.name] {
			continue
		}
		if _, err := s.db.Exec("ALTER TABLE runs ADD COLUMN " + col.name + " " + col.def); err != nil {
			return fmt.Errorf("adding column %s: %w", col.name, err)
		}
	}

	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_settings_best ON runs(maze_id, settings, found DESC, cost ASC)`)
	return err
}

// columns returns the column names of a table.
func (s *Store) columns(table string) (map[string]bool, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.MazeID == "" {
		return 0, errors.New("storage: run has no maze id")
	}
	if !run.Found {
		run.Cost = -1
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (maze_id, found, cost, steps, turns, expanded, key_mode,
		  move_cost, turn_cost, max_turn_run, forbid_repeat_turn, settings,
		  actions, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.MazeID,
		run.Found,
		run.Cost,
		run.Steps,
		run.Turns,
		run.Expanded,
		run.Settings.KeyMode,
		run.Settings.MoveCost,
		run.Settings.TurnCost,
		run.Settings.MaxTurnRun,
		run.Settings.ForbidRepeatTurn,
		run.Settings.String(),
		run.Actions,
		run.Duration.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, maze_id, found, cost, steps, turns, expanded,
	key_mode, move_cost, turn_cost, max_turn_run, forbid_repeat_turn,
	actions, duration_us, created_at`

// RunsForMaze retrieves up to limit runs for the given maze that were made
// under settings. Solved runs come first, cheapest first; ties go to the
// earlier run.
func (s *Store) RunsForMaze(mazeID string, settings Settings, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE maze_id = ? AND settings = ?
		 ORDER BY found DESC, cost ASC, id ASC
		 LIMIT ?`,
		mazeID, settings.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs of the given maze, or of all
// mazes when mazeID is empty, whatever their settings.
func (s *Store) RecentRuns(mazeID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR maze_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mazeID, mazeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRun returns the cheapest solved run for the maze made under
// settings, or nil if there is none.
func (s *Store) BestRun(mazeID string, settings Settings) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE maze_id = ? AND settings = ? AND found = 1
		 ORDER BY cost ASC, id ASC
		 LIMIT 1`,
		mazeID, settings.String(),
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return &run, nil
}

// ClearRuns deletes all runs for the given maze.
func (s *Store) ClearRuns(mazeID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE maze_id = ?", mazeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllMazeStats retrieves statistics for every maze with at least one run.
// Counts cover all runs; BestCost only considers runs made under settings.
func (s *Store) AllMazeStats(settings Settings) (map[string]*MazeStats, error) {
	rows, err := s.db.Query(
		`SELECT maze_id, COUNT(*), COALESCE(SUM(found), 0),
		        COALESCE(MIN(CASE WHEN found = 1 AND settings = ? THEN cost END), -1),
		        AVG(expanded), MAX(created_at)
		 FROM runs
		 GROUP BY maze_id`,
		settings.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get maze stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MazeStats)
	for rows.Next() {
		var ms MazeStats
		var lastRun any
		if err := rows.Scan(&ms.MazeID, &ms.Runs, &ms.Solved, &ms.BestCost, &ms.AvgExpanded, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastRun = parseTime(lastRun)
		stats[ms.MazeID] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunEntry, error) {
	var (
		r          RunEntry
		durationUS int64
		createdAt  any
	)
	err := row.Scan(
		&r.ID,
		&r.MazeID,
		&r.Found,
		&r.Cost,
		&r.Steps,
		&r.Turns,
		&r.Expanded,
		&r.Settings.KeyMode,
		&r.Settings.MoveCost,
		&r.Settings.TurnCost,
		&r.Settings.MaxTurnRun,
		&r.Settings.ForbidRepeatTurn,
		&r.Actions,
		&durationUS,
		&createdAt,
	)
	if err != nil {
		return RunEntry{}, err
	}
	r.Duration = time.Duration(durationUS) * time.Microsecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
