// Package render draws grids and search progress as text.
package render

import (
	"strings"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// Class tags a canvas cell with what it shows, so styled output can colour
// it without re-reading the grid.
type Class uint8

const (
	ClassOpen Class = iota
	ClassWall
	ClassStart
	ClassGoal
	ClassExplored
	ClassFrontier
	ClassPath
	ClassCurrent
)

// Cell is one character of a canvas.
type Cell struct {
	Rune  rune
	Class Class
}

// Canvas is a 2D cell buffer the size of a grid.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas creates a canvas filled with open cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: GlyphOpen, Class: ClassOpen}
	}
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in characters.
func (c *Canvas) Height() int { return c.height }

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(p core.Coord, r rune, class Class) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	c.cells[p.Y*c.width+p.X] = Cell{Rune: r, Class: class}
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (c *Canvas) Get(p core.Coord) Cell {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[p.Y*c.width+p.X]
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String converts the canvas to plain text, one row per line.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}
