// Package levels loads maze files from disk.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/turnmaze/internal/core"
	"github.com/vovakirdan/turnmaze/internal/levels/formats"
)

// Maze is a loaded, validated maze.
type Maze struct {
	ID       string
	Name     string
	Grid     *core.Grid
	Metadata map[string]string
	FilePath string
}

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files.
// Files that fail to parse are skipped. Returns mazes sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Maze, error) {
	var mazes []Maze

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		maze, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		mazes = append(mazes, maze)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})

	return mazes, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return Maze{}, err
	}

	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}

	return Maze{}, fmt.Errorf("maze not found: %s", id)
}

// ListIDs returns all maze IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(mazes))
	for i, m := range mazes {
		ids[i] = m.ID
	}
	return ids, nil
}

// LoadFile loads a single maze file. A maze without an ID takes its file
// name without extension; a maze without a name takes its ID.
func LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Maze{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	grid, err := parsed.Grid()
	if err != nil {
		return Maze{}, fmt.Errorf("invalid maze %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := parsed.Name
	if name == "" {
		name = id
	}

	return Maze{
		ID:       id,
		Name:     name,
		Grid:     grid,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Maze, error) {
	switch ext {
	case ".txt", ".maze":
		return formats.ParseText(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Maze{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
