// Package mainview provides the story body area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the main view component. Content taller than Height
// is clipped.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(metrics.BodyPaddingLeft)
	if p.Height > 0 {
		mainStyle = mainStyle.MaxHeight(p.Height)
	}

	content := p.Body
	if p.Header != "" {
		if p.Body != "" {
			content = p.Header + "\n\n" + p.Body
		} else {
			content = p.Header
		}
	}
	return mainStyle.Render(content)
}
