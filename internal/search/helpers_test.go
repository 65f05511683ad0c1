package search

import (
	"testing"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// gridOf builds a grid from maze rows using '#', '.', 'S' and 'E'.
func gridOf(t *testing.T, rows ...string) *core.Grid {
	t.Helper()

	var start, goal core.Coord
	tiles := make([][]core.Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]core.Tile, len(row))
		for x, r := range row {
			switch r {
			case '#':
				tiles[y][x] = core.Blocked
			case 'S':
				start = core.C(x, y)
			case 'E':
				goal = core.C(x, y)
			case '.':
			default:
				t.Fatalf("bad maze rune %q at (%d,%d)", r, x, y)
			}
		}
	}

	g, err := core.New(tiles, start, goal)
	if err != nil {
		t.Fatalf("core.New() failed: %v", err)
	}
	return g
}
