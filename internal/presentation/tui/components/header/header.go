// Package header provides the story header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible    bool
	FeedTitle  string
	Link       string
	Position   string
	TitleColor string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	feed := lipgloss.NewStyle().Bold(true)
	if p.TitleColor != "" {
		feed = feed.Foreground(lipgloss.Color(p.TitleColor))
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	top := feed.Render(fmt.Sprintf("🏷️  %s", p.FeedTitle))
	if p.Position != "" {
		top += muted.Render("  " + p.Position)
	}
	return top + "\n" + muted.Render(fmt.Sprintf("🔗 %s", p.Link))
}
