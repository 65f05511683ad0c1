package core

import "fmt"

// Validation error codes returned by New.
const (
	CodeEmpty            = "EMPTY"
	CodeRagged           = "RAGGED"
	CodeStartOutOfBounds = "START_OUT_OF_BOUNDS"
	CodeStartBlocked     = "START_BLOCKED"
	CodeGoalOutOfBounds  = "GOAL_OUT_OF_BOUNDS"
	CodeGoalBlocked      = "GOAL_BLOCKED"
)

// ValidationError describes why a tile matrix cannot become a Grid.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// validateRows checks the matrix is non-empty and rectangular.
func validateRows(rows [][]Tile) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &ValidationError{
			Code:    CodeEmpty,
			Message: "grid has no cells",
		}
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return &ValidationError{
				Code:    CodeRagged,
				Message: fmt.Sprintf("row %d has %d cells, expected %d", y, len(row), width),
			}
		}
	}
	return nil
}

// validateEndpoints checks start and goal are inside the grid and open.
func (g *Grid) validateEndpoints() error {
	if !g.InBounds(g.start) {
		return &ValidationError{
			Code:    CodeStartOutOfBounds,
			Message: fmt.Sprintf("start %v outside %dx%d grid", g.start, g.w, g.h),
		}
	}
	if g.TileAt(g.start) == Blocked {
		return &ValidationError{
			Code:    CodeStartBlocked,
			Message: fmt.Sprintf("start %v is blocked", g.start),
		}
	}
	if !g.InBounds(g.goal) {
		return &ValidationError{
			Code:    CodeGoalOutOfBounds,
			Message: fmt.Sprintf("goal %v outside %dx%d grid", g.goal, g.w, g.h),
		}
	}
	if g.TileAt(g.goal) == Blocked {
		return &ValidationError{
			Code:    CodeGoalBlocked,
			Message: fmt.Sprintf("goal %v is blocked", g.goal),
		}
	}
	return nil
}
