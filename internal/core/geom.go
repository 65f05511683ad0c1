// Package core provides the grid model shared by the search engine and its
// collaborators: coordinates, headings, tiles and the immutable Grid.
// It has no external dependencies and performs no I/O.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
