package core

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	Open Tile = iota
	Blocked
)

// String returns the maze glyph for the tile.
func (t Tile) String() string {
	if t == Blocked {
		return "#"
	}
	return "."
}

// Grid is an immutable obstacle map with a start and a goal cell.
// Cells are stored in row-major order: index = y*w + x.
type Grid struct {
	w, h  int
	tiles []Tile
	start Coord
	goal  Coord
}

// New builds a Grid from an already decoded tile matrix.
// rows[y][x] is the tile at (x, y). The matrix is copied, so the caller may
// reuse it afterwards. A *ValidationError is returned when the matrix is empty
// or ragged, or when start or goal is outside the grid or on a Blocked tile.
func New(rows [][]Tile, start, goal Coord) (*Grid, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	g := &Grid{
		w:     len(rows[0]),
		h:     len(rows),
		tiles: make([]Tile, 0, len(rows)*len(rows[0])),
		start: start,
		goal:  goal,
	}
	for _, row := range rows {
		g.tiles = append(g.tiles, row...)
	}

	if err := g.validateEndpoints(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// hardcoded fixtures.
func MustNew(rows [][]Tile, start, goal Coord) *Grid {
	g, err := New(rows, start, goal)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Start returns the start cell.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Coord { return g.goal }

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// TileAt returns the tile at c. Cells outside the grid are reported as
// Blocked, so callers never index out of range.
func (g *Grid) TileAt(c Coord) Tile {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.tiles[g.index(c)]
}

// IsOpen reports whether c is inside the grid and not blocked.
func (g *Grid) IsOpen(c Coord) bool {
	return g.TileAt(c) == Open
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	count := 0
	for _, t := range g.tiles {
		if t == Open {
			count++
		}
	}
	return count
}

// Rows returns a copy of the tile matrix, indexed rows[y][x].
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.h)
	for y := range g.h {
		rows[y] = make([]Tile, g.w)
		copy(rows[y], g.tiles[y*g.w:(y+1)*g.w])
	}
	return rows
}
