// Package tui provides the story viewer model and its view composition.
package tui

import (
	"fmt"

	"github.com/tesso57/storybar/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/storybar/internal/presentation/tui/components/main"
	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
	"github.com/tesso57/storybar/internal/presentation/tui/presenter"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
	"github.com/tesso57/storybar/internal/presentation/tui/textutil"
	"github.com/tesso57/storybar/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Progress: m.buildProgress(),
		Header:   m.buildHeaderProps(),
		Main:     m.buildMainProps(),
		Footer:   m.buildFooterProps(),
	}
}

func (m *Model) buildProgress() string {
	width := m.state.Width - 2
	if width <= 0 {
		width = 80
	}
	return m.state.Row.View(width)
}

func (m *Model) buildHeaderProps() header.Props {
	if !headerVisible(m.state) {
		return header.Props{}
	}
	h := presenter.BuildHeader(m.state.Set, m.state.Sequence.CurrentIndex())
	available := m.state.Width - metrics.HeaderWidthPadding - len(h.Position)
	return header.Props{
		Visible:    true,
		FeedTitle:  headerLine(h.FeedTitle, available),
		Link:       headerLine(h.Link, m.state.Width-metrics.HeaderWidthPadding),
		Position:   h.Position,
		TitleColor: m.settings.Theme.FeedName,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch m.state.Phase {
	case state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading %s...", m.state.Spinner.View(), m.state.FeedURL)
	case state.Failed:
		body = fmt.Sprintf("Error: %v\n\nPress %s to quit.", m.state.Err, m.state.Keys.Quit.Help().Key)
	default:
		body = m.state.Viewport.View()
	}

	headerHeight := 0
	if headerVisible(m.state) {
		headerHeight = metrics.HeaderLines
	}
	return mainview.Props{
		Width:  m.state.Width,
		Height: m.state.Viewport.Height + headerHeight,
		Body:   body,
	}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Phase, m.state.Paused, m.state.StatusMessage, helpText)
}

func headerVisible(st *state.ModelState) bool {
	if st == nil || st.Set == nil {
		return false
	}
	return st.Phase == state.Playing || st.Phase == state.Finished
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
