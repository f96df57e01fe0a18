// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/storybar/internal/presentation/tui/components/header"
	"github.com/tesso57/storybar/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/storybar/internal/presentation/tui/components/main"
)

// Props aggregates properties for all UI components.
type Props struct {
	Progress string
	Header   header.Props
	Main     mainview.Props
	Footer   string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	p.Main.Header = header.Render(p.Header)
	return layout.Render(layout.Props{
		Progress: p.Progress,
		Main:     mainview.Render(p.Main),
		Footer:   p.Footer,
	})
}
