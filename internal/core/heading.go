package core

// Heading is the direction a searcher is facing.
type Heading uint8

// The zero value is Right, which is also the puzzle's initial heading.
const (
	HeadingRight Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
)

// DefaultHeading is the heading every search starts with.
const DefaultHeading = HeadingRight

// Headings lists all headings in declaration order.
var Headings = [...]Heading{HeadingRight, HeadingUp, HeadingDown, HeadingLeft}

// String returns the string representation of a heading.
func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "Right"
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	case HeadingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) unit vector for moving one step along h.
// Up decreases Y, Down increases Y (screen coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingRight:
		return 1, 0
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Clockwise returns the heading after a 90° clockwise rotation.
func (h Heading) Clockwise() Heading {
	switch h {
	case HeadingRight:
		return HeadingDown
	case HeadingDown:
		return HeadingLeft
	case HeadingLeft:
		return HeadingUp
	case HeadingUp:
		return HeadingRight
	default:
		return h
	}
}

// CounterClockwise returns the heading after a 90° counter-clockwise rotation.
func (h Heading) CounterClockwise() Heading {
	switch h {
	case HeadingRight:
		return HeadingUp
	case HeadingUp:
		return HeadingLeft
	case HeadingLeft:
		return HeadingDown
	case HeadingDown:
		return HeadingRight
	default:
		return h
	}
}

// Glyph returns a single-rune arrow for the heading.
func (h Heading) Glyph() rune {
	switch h {
	case HeadingRight:
		return '>'
	case HeadingUp:
		return '^'
	case HeadingDown:
		return 'v'
	case HeadingLeft:
		return '<'
	default:
		return '?'
	}
}
