package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tesso57/storybar/internal/application/settings"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/domain/playback"
	"github.com/tesso57/storybar/internal/presentation/tui/components/segment"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
	"github.com/tesso57/storybar/internal/presentation/tui/update"
	"github.com/tesso57/storybar/internal/presentation/tui/view"
)

// Options selects what the viewer plays.
type Options struct {
	FeedURL string
	Restore bool
	Logger  zerolog.Logger
}

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	stories  usecase.StoryService
	sessions usecase.SessionService
	logger   zerolog.Logger
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, stories usecase.StoryService, sessions usecase.SessionService, opts Options) *Model {
	feedURL := opts.FeedURL
	if feedURL == "" {
		feedURL = cfg.DefaultFeed()
	}
	return &Model{
		settings: cfg,
		stories:  stories,
		sessions: sessions,
		logger:   opts.Logger,
		state:    newModelState(cfg, feedURL, opts),
	}
}

// Init starts loading the story set.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.LoadStoriesCmd(m.deps(), m.state.FeedURL, m.state.Restore))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.StoriesLoadedMsg:
		cmds = append(cmds, update.HandleStoriesLoadedMsg(m.state, msg, m.deps()))
	case update.FrameMsg:
		return m, update.HandleFrameMsg(m.state, msg, m.deps())
	}

	if m.state.Phase == state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.state.Phase == state.Playing {
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Stories:     &m.stories,
		Sessions:    &m.sessions,
		OpenBrowser: openBrowser,
		Logger:      m.logger,
	}
}

func newModelState(cfg settings.Settings, feedURL string, opts Options) *state.ModelState {
	st := &state.ModelState{
		Phase:         state.Loading,
		FeedURL:       feedURL,
		Restore:       opts.Restore,
		StoryDuration: cfg.StoryDuration,
		Row:           segment.NewRow(cfg.Styling.Playback()),
		Viewport:      newViewport(),
		Help:          help.New(),
		Spinner:       newSpinner(cfg),
		Keys:          state.NewKeyMap(cfg.KeyMap),
	}
	st.Sequence = playback.NewSequence(st.Row,
		playback.WithOnStoryCompleted(func() {
			st.StoryDone = true
		}),
		playback.WithLogger(opts.Logger.With().Str("component", "sequence").Logger()),
	)
	return st
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Title))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	// Horizontal scrolling and space paging would shadow playback keys.
	vp.KeyMap.Left.SetEnabled(false)
	vp.KeyMap.Right.SetEnabled(false)
	vp.KeyMap.PageDown.SetKeys("pgdown", "f")
	return vp
}
