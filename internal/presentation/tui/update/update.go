// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/domain/story"
	"github.com/tesso57/storybar/internal/presentation/tui/intent"
	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

// maxFrameStep bounds a single frame so a suspended terminal does not
// skip whole stories on resume.
const maxFrameStep = 4 * metrics.FrameInterval

// Deps groups external dependencies for updates.
type Deps struct {
	Stories     *usecase.StoryService
	Sessions    *usecase.SessionService
	OpenBrowser func(string) error
	Logger      zerolog.Logger
}

// StoriesLoadedMsg is emitted after fetching the story set.
type StoriesLoadedMsg struct {
	URL        string
	Set        *story.Set
	Restored   usecase.Restored
	HasRestore bool
	RestoreErr error
	Err        error
}

// FrameMsg drives the indicator row.
type FrameMsg time.Time

// LoadStoriesCmd creates a command that fetches the set at url and, when
// restore is set, resolves the saved position against it.
func LoadStoriesCmd(deps Deps, url string, restore bool) tea.Cmd {
	trimmed := strings.TrimSpace(url)
	return func() tea.Msg {
		ctx := context.Background()
		set, err := deps.Stories.Load(ctx, trimmed)
		if err != nil {
			return StoriesLoadedMsg{URL: trimmed, Err: err}
		}
		msg := StoriesLoadedMsg{URL: trimmed, Set: set}
		if restore && deps.Sessions != nil {
			msg.Restored, msg.HasRestore, msg.RestoreErr = deps.Sessions.Restore(ctx, set)
		}
		return msg
	}
}

// FrameCmd schedules the next frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(metrics.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// HandleKeyMsg processes key input based on the current phase.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Phase == state.Finished {
		return tea.Quit, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.None:
		return nil, false
	case intent.Quit:
		SaveSession(s, deps)
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateSizes(s)
		return nil, true
	}

	if s.Phase != state.Playing {
		return nil, true
	}
	s.StatusMessage = ""

	switch parsed.Type {
	case intent.Next:
		GoNext(s, deps)
	case intent.Previous:
		GoPrevious(s)
	case intent.TogglePause:
		TogglePause(s)
	case intent.Restart:
		Restart(s)
	case intent.Open:
		openCurrent(s, deps)
	}
	return nil, true
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateSizes(s)
	if s.Phase == state.Playing || s.Phase == state.Finished {
		RefreshStory(s)
	}
}

// HandleStoriesLoadedMsg sets up playback for a freshly loaded set and
// starts the frame loop.
func HandleStoriesLoadedMsg(s *state.ModelState, msg StoriesLoadedMsg, deps Deps) tea.Cmd {
	logger := deps.Logger.With().Str("feed", msg.URL).Logger()
	if msg.Err != nil {
		logger.Error().Err(msg.Err).Msg("failed to load stories")
		s.Phase = state.Failed
		s.Err = msg.Err
		return nil
	}
	if msg.RestoreErr != nil {
		logger.Warn().Err(msg.RestoreErr).Msg("saved session partly restored")
	}

	s.Set = msg.Set
	s.Err = nil
	if msg.HasRestore && msg.Restored.HasStyling {
		s.Row.SetStyling(msg.Restored.Styling)
	}
	if err := s.Sequence.SetUp(msg.Set.Len(), s.StoryDuration); err != nil {
		logger.Error().Err(err).Msg("failed to set up playback")
		s.Phase = state.Failed
		s.Err = err
		return nil
	}

	positioned := false
	if msg.HasRestore {
		if err := s.Sequence.SetCurrentItem(msg.Restored.Index); err != nil {
			logger.Warn().Err(err).Int("index", msg.Restored.Index).Msg("ignoring saved position")
		} else {
			positioned = true
			logger.Info().Int("index", msg.Restored.Index).Msg("restored saved position")
		}
	}
	if !positioned {
		if err := s.Sequence.Next(); err != nil {
			logger.Error().Err(err).Msg("failed to select first story")
			s.Phase = state.Failed
			s.Err = err
			return nil
		}
	}
	s.Sequence.Start()
	s.Phase = state.Playing
	s.Paused = false
	s.StoryDone = false
	logger.Info().Int("stories", msg.Set.Len()).Msg("playback started")

	UpdateSizes(s)
	RefreshStory(s)
	if s.Ticking {
		return nil
	}
	s.Ticking = true
	s.LastFrame = time.Time{}
	return FrameCmd()
}

// HandleFrameMsg advances the indicator row by the time since the last
// frame and applies a natural story completion after the row has been
// advanced. The frame loop stops once playback is over.
func HandleFrameMsg(s *state.ModelState, msg FrameMsg, deps Deps) tea.Cmd {
	if s.Phase != state.Playing {
		s.Ticking = false
		return nil
	}

	now := time.Time(msg)
	dt := metrics.FrameInterval
	if !s.LastFrame.IsZero() {
		dt = min(max(now.Sub(s.LastFrame), 0), maxFrameStep)
	}
	s.LastFrame = now
	s.Row.Advance(dt)

	if s.StoryDone {
		s.StoryDone = false
		GoNext(s, deps)
	}
	if s.Phase != state.Playing {
		s.Ticking = false
		return nil
	}
	return FrameCmd()
}

func openCurrent(s *state.ModelState, deps Deps) {
	st, ok := s.CurrentStory()
	if !ok || strings.TrimSpace(st.Link) == "" {
		s.StatusMessage = "This story has no link."
		return
	}
	if deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(st.Link); err != nil {
		deps.Logger.Warn().Err(err).Str("link", st.Link).Msg("failed to open link")
		s.StatusMessage = "Failed to open link: " + err.Error()
	}
}
