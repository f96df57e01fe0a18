package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/storybar/internal/domain/playback"
	"github.com/tesso57/storybar/internal/domain/story"
	"github.com/tesso57/storybar/internal/presentation/tui/components/segment"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Phase         Phase
	FeedURL       string
	Restore       bool
	StoryDuration time.Duration
	Set           *story.Set
	Sequence      *playback.Sequence
	Row           *segment.Row
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	Paused        bool
	Err           error
	StatusMessage string

	// StoryDone is raised by the completion listener during a frame and
	// consumed once the frame has been applied to the row.
	StoryDone bool
	Ticking   bool
	LastFrame time.Time
}

// CurrentStory returns the story under the sequence cursor.
func (s *ModelState) CurrentStory() (story.Story, bool) {
	if s.Sequence == nil {
		return story.Story{}, false
	}
	return s.Set.At(s.Sequence.CurrentIndex())
}
