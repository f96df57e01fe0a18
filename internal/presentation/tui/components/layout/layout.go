// Package layout provides the screen layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Progress string
	Main     string
	Footer   string
}

// Render stacks the indicator row, the main area and the footer.
func Render(p Props) string {
	progress := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingBottom(1).
		Render(p.Progress)
	return lipgloss.JoinVertical(lipgloss.Left, progress, p.Main, p.Footer)
}
