package render

import (
	"github.com/vovakirdan/turnmaze/internal/core"
	"github.com/vovakirdan/turnmaze/internal/search"
)

// Glyphs used on a canvas. Maze glyphs match the text maze format.
const (
	GlyphOpen     = '.'
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'E'
	GlyphPath     = 'X'
	GlyphExplored = 'o'
	GlyphFrontier = '+'
)

// Overlay is the search progress drawn on top of a grid.
// Layers are drawn in field order, later layers win. Start and goal are
// only covered by the current state.
type Overlay struct {
	Explored map[core.Coord]bool
	Frontier map[core.Coord]bool
	Path     []core.Coord
	Current  *search.State
}

// Draw renders g and the overlay onto a new canvas.
func Draw(g *core.Grid, ov Overlay) *Canvas {
	c := NewCanvas(g.Width(), g.Height())

	for y := range g.Height() {
		for x := range g.Width() {
			p := core.C(x, y)
			if !g.IsOpen(p) {
				c.Set(p, GlyphWall, ClassWall)
			}
		}
	}

	for p := range ov.Explored {
		c.Set(p, GlyphExplored, ClassExplored)
	}
	for p := range ov.Frontier {
		if !ov.Explored[p] {
			c.Set(p, GlyphFrontier, ClassFrontier)
		}
	}
	for _, p := range ov.Path {
		c.Set(p, GlyphPath, ClassPath)
	}

	c.Set(g.Start(), GlyphStart, ClassStart)
	c.Set(g.Goal(), GlyphGoal, ClassGoal)

	if ov.Current != nil {
		c.Set(ov.Current.Pos, ov.Current.Heading.Glyph(), ClassCurrent)
	}
	return c
}

// ASCII renders g as plain text. With an empty overlay the output is the
// grid in text maze format.
func ASCII(g *core.Grid, ov Overlay) string {
	return Draw(g, ov).String()
}

// PathOverlay returns an overlay showing only the cells p passes through.
func PathOverlay(p search.Path) Overlay {
	return Overlay{Path: p.Cells()}
}
