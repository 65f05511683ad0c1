package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps cell classes to lipgloss styles.
type Theme map[Class]lipgloss.Style

// DefaultTheme returns the standard colour scheme.
func DefaultTheme() Theme {
	return Theme{
		ClassOpen:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ClassWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ClassStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		ClassGoal:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ClassExplored: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		ClassFrontier: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		ClassPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ClassCurrent:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
}

// Styled converts a canvas to a styled string for display.
// Groups adjacent cells with the same class to minimize ANSI escape sequences.
func Styled(c *Canvas, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := c.cells[y*c.width : (y+1)*c.width]
		x := 0
		for x < len(row) {
			class := row[x].Class

			var run strings.Builder
			for x < len(row) && row[x].Class == class {
				run.WriteRune(row[x].Rune)
				x++
			}

			style, ok := theme[class]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
