package render

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/turnmaze/internal/core"
	"github.com/vovakirdan/turnmaze/internal/levels/formats"
	"github.com/vovakirdan/turnmaze/internal/search"
)

func mustGrid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	m, err := formats.ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	g, err := m.Grid()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(4, 3)

	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("canvas is %dx%d", c.Width(), c.Height())
	}
	if got := c.Get(core.C(1, 1)); got.Rune != GlyphOpen || got.Class != ClassOpen {
		t.Errorf("new cell = %+v", got)
	}

	c.Set(core.C(2, 1), 'X', ClassPath)
	if got := c.Get(core.C(2, 1)); got.Rune != 'X' || got.Class != ClassPath {
		t.Errorf("Get() = %+v", got)
	}

	// Out of bounds should be silent
	c.Set(core.C(-1, 0), 'A', ClassPath)
	c.Set(core.C(4, 0), 'A', ClassPath)
	c.Set(core.C(0, 3), 'A', ClassPath)
	if c.Get(core.C(9, 9)).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}

	if got := c.Row(1); got != "..X." {
		t.Errorf("Row(1) = %q", got)
	}
	if got := c.Row(7); got != "    " {
		t.Errorf("Row(7) = %q", got)
	}
	if got := c.String(); got != "....\n..X.\n...." {
		t.Errorf("String() = %q", got)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#S.E#",
		"#.#.#",
		"#####",
	}
	g := mustGrid(t, rows...)

	if got := ASCII(g, Overlay{}); got != strings.Join(rows, "\n") {
		t.Errorf("ASCII() =\n%s", got)
	}
}

func TestASCIIPath(t *testing.T) {
	g := mustGrid(t,
		"S..#.",
		"...#.",
		"...#.",
		"...#.",
		"....E",
	)
	res, err := search.Run(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}

	got := ASCII(g, PathOverlay(res.Path))
	marked := strings.Count(got, string(GlyphPath))
	// Every cell after the start except the goal.
	if marked != res.Path.Steps()-1 {
		t.Errorf("%d cells marked, expected %d:\n%s", marked, res.Path.Steps()-1, got)
	}
	if !strings.HasPrefix(got, "S") || !strings.HasSuffix(got, "E") {
		t.Errorf("start or goal overwritten:\n%s", got)
	}
}

func TestDrawLayers(t *testing.T) {
	g := mustGrid(t, "S...E")
	cur := search.Root(core.C(2, 0), core.HeadingRight)

	c := Draw(g, Overlay{
		Explored: map[core.Coord]bool{core.C(1, 0): true, core.C(2, 0): true},
		Frontier: map[core.Coord]bool{core.C(1, 0): true, core.C(3, 0): true},
		Current:  cur,
	})

	if got := c.String(); got != "So>+E" {
		t.Errorf("Draw() = %q, expected %q", got, "So>+E")
	}
	if c.Get(core.C(2, 0)).Class != ClassCurrent {
		t.Error("current state should be drawn last")
	}
}

func TestStyledKeepsText(t *testing.T) {
	g := mustGrid(t, "S.#", "..E")
	c := Draw(g, Overlay{})

	// Without colours the styled output must carry exactly the canvas text.
	plain := Theme{}
	if got := Styled(c, plain); got != c.String() {
		t.Errorf("Styled() = %q, expected %q", got, c.String())
	}

	if got := Styled(c, DefaultTheme()); !strings.Contains(got, "S") || !strings.Contains(got, "#") {
		t.Errorf("Styled() lost glyphs: %q", got)
	}
}
