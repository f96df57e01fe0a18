package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

type layoutMetrics struct {
	bodyWidth  int
	bodyHeight int
}

// UpdateSizes fits the story viewport between the indicator row, the
// header and the footer.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.Viewport.Width = layout.bodyWidth
	s.Viewport.Height = layout.bodyHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	available := s.Height - metrics.ProgressLines - metrics.HeaderLines - footerHeight(s)
	return layoutMetrics{
		bodyWidth:  clampMin(s.Width-metrics.BodyPaddingLeft, 1),
		bodyHeight: clampMin(available, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Phase, s.Paused, s.StatusMessage, s.Help.View(&s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
