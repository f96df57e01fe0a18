package update

import (
	"context"

	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
	"github.com/tesso57/storybar/internal/presentation/tui/presenter"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

// GoNext completes the current story and plays the next one. Without a
// next story the viewer finishes with every indicator completed.
func GoNext(s *state.ModelState, deps Deps) {
	seq := s.Sequence
	seq.CompleteCurrent()
	if err := seq.Next(); err != nil {
		Finish(s, deps)
		return
	}
	seq.UnCompleteCurrent()
	seq.Start()
	s.Paused = false
	RefreshStory(s)
}

// GoPrevious plays the previous story. On the first story it replays the
// current one.
func GoPrevious(s *state.ModelState) {
	seq := s.Sequence
	seq.UnCompleteCurrent()
	if seq.HasPrevious() {
		_ = seq.Previous()
		seq.UnCompleteCurrent()
	}
	seq.Start()
	s.Paused = false
	RefreshStory(s)
}

// Restart replays the current story from an empty indicator.
func Restart(s *state.ModelState) {
	s.Sequence.UnCompleteCurrent()
	s.Sequence.Start()
	s.Paused = false
}

// TogglePause pauses or resumes the current story.
func TogglePause(s *state.ModelState) {
	if s.Paused {
		s.Sequence.Resume()
		s.Paused = false
		return
	}
	if !s.Sequence.IsStarted() {
		return
	}
	s.Sequence.Pause()
	s.Paused = true
}

// Finish ends playback and records the final position.
func Finish(s *state.ModelState, deps Deps) {
	s.Phase = state.Finished
	s.Paused = false
	deps.Logger.Info().Msg("reached the end of the stories")
	SaveSession(s, deps)
}

// SaveSession stores the current position and row styling. Failures are
// logged and otherwise ignored so quitting always works.
func SaveSession(s *state.ModelState, deps Deps) {
	if deps.Sessions == nil || s.Set == nil || s.Sequence == nil || s.Sequence.CurrentIndex() < 0 {
		return
	}
	index := s.Sequence.CurrentIndex()
	if err := deps.Sessions.Save(context.Background(), s.Set, index, s.Row.Styling()); err != nil {
		deps.Logger.Error().Err(err).Str("feed", s.Set.URL).Msg("failed to save session")
		return
	}
	deps.Logger.Debug().Str("feed", s.Set.URL).Int("index", index).Msg("session saved")
}

// RefreshStory renders the current story into the viewport.
func RefreshStory(s *state.ModelState) {
	st, ok := s.CurrentStory()
	if !ok {
		return
	}
	width := s.Viewport.Width - metrics.BodyPaddingRight
	s.Viewport.SetContent(presenter.BuildStoryContent(st, width))
	s.Viewport.GotoTop()
}
