// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/tesso57/storybar/internal/domain/story"
	"github.com/tesso57/storybar/internal/presentation/tui/textutil"
)

const sectionDivider = "----------------------------------------"

// Header is the view model for the line above the story body.
type Header struct {
	FeedTitle string
	Link      string
	Position  string
}

// BuildHeader describes the story at index within set.
func BuildHeader(set *story.Set, index int) Header {
	st, ok := set.At(index)
	if !ok {
		return Header{}
	}
	feedTitle := strings.TrimSpace(st.FeedTitle)
	if feedTitle == "" {
		feedTitle = strings.TrimSpace(set.Title)
	}
	return Header{
		FeedTitle: feedTitle,
		Link:      strings.TrimSpace(st.Link),
		Position:  fmt.Sprintf("%d/%d", index+1, set.Len()),
	}
}

// BuildStoryContent renders the title, date and body of st wrapped to width.
func BuildStoryContent(st story.Story, width int) string {
	title := textutil.SingleLine(st.Title)
	if title == "" {
		title = "(untitled)"
	}
	body := strings.TrimSpace(st.Body)
	if body == "" {
		body = "(No story body available. Open it in the browser.)"
	}

	var b strings.Builder
	b.WriteString(textutil.Wrap(title, width))
	if published := publishedLabel(st); published != "" {
		b.WriteString("\n")
		b.WriteString(published)
	}
	b.WriteString("\n")
	b.WriteString(sectionDivider)
	b.WriteString("\n\n")
	b.WriteString(textutil.Wrap(body, width))
	return b.String()
}

func publishedLabel(st story.Story) string {
	if !st.Date.IsZero() {
		return st.Date.Local().Format("2006-01-02 15:04")
	}
	return strings.TrimSpace(st.Published)
}
