// Package formats provides pluggable maze file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// Maze glyphs shared by every format.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphGoal  = 'E'
)

// Maze represents a parsed maze ready for grid construction.
type Maze struct {
	ID       string
	Name     string
	Tiles    [][]core.Tile
	Start    core.Coord
	Goal     core.Coord
	Metadata map[string]string
}

// Grid validates the parsed tiles and endpoints and builds the grid.
func (m *Maze) Grid() (*core.Grid, error) {
	return core.New(m.Tiles, m.Start, m.Goal)
}

// ParseError reports a malformed maze row.
// Line and Col are 1-based; Col is 0 when the error concerns the whole maze.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	if e.Col == 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// ParseText parses a plain text maze: one row per line using '#', '.', 'S'
// and 'E'. Carriage returns are dropped and trailing blank lines ignored.
func ParseText(data []byte) (Maze, error) {
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return ParseRows(lines)
}

// ParseRows decodes maze rows into tiles and locates the start and goal.
func ParseRows(rows []string) (Maze, error) {
	if len(rows) == 0 {
		return Maze{}, &ParseError{Msg: "maze has no rows"}
	}

	var (
		m                 Maze
		hasStart, hasGoal bool
	)
	m.Tiles = make([][]core.Tile, len(rows))

	for y, row := range rows {
		if row == "" {
			return Maze{}, &ParseError{Line: y + 1, Msg: "empty row"}
		}
		tiles := make([]core.Tile, 0, len(row))
		col := 0
		for _, r := range row {
			col++
			pos := core.C(col-1, y)
			switch r {
			case GlyphWall:
				tiles = append(tiles, core.Blocked)
				continue
			case GlyphOpen:
			case GlyphStart:
				if hasStart {
					return Maze{}, &ParseError{Line: y + 1, Col: col, Msg: "second start cell"}
				}
				hasStart = true
				m.Start = pos
			case GlyphGoal:
				if hasGoal {
					return Maze{}, &ParseError{Line: y + 1, Col: col, Msg: "second goal cell"}
				}
				hasGoal = true
				m.Goal = pos
			default:
				return Maze{}, &ParseError{Line: y + 1, Col: col, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
			tiles = append(tiles, core.Open)
		}
		m.Tiles[y] = tiles
	}

	if !hasStart {
		return Maze{}, &ParseError{Msg: "maze has no start cell 'S'"}
	}
	if !hasGoal {
		return Maze{}, &ParseError{Msg: "maze has no goal cell 'E'"}
	}
	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".maze", ".yaml", ".yml"}
}
