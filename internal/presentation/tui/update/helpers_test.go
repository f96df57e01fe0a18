package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/storybar/internal/application/settings"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/domain/playback"
	"github.com/tesso57/storybar/internal/domain/session"
	"github.com/tesso57/storybar/internal/domain/story"
	"github.com/tesso57/storybar/internal/presentation/tui/components/segment"
	"github.com/tesso57/storybar/internal/presentation/tui/metrics"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

const testDuration = 200 * time.Millisecond

type stubFetcher struct {
	mock.Mock
	set *story.Set
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*story.Set, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url)
		set, _ := args.Get(0).(*story.Set)
		return set, args.Error(1)
	}
	return s.set, nil
}

type stubSessionRepo struct {
	mock.Mock
	snaps map[string]session.Snapshot
	saves int
}

func (s *stubSessionRepo) Save(ctx context.Context, snap session.Snapshot) error {
	if len(s.ExpectedCalls) > 0 {
		return s.Called(ctx, snap).Error(0)
	}
	if s.snaps == nil {
		s.snaps = make(map[string]session.Snapshot)
	}
	s.saves++
	s.snaps[snap.FeedURL] = snap
	return nil
}

func (s *stubSessionRepo) Load(_ context.Context, feedURL string) (session.Snapshot, bool, error) {
	snap, ok := s.snaps[feedURL]
	return snap, ok, nil
}

func (s *stubSessionRepo) Latest(context.Context) (session.Snapshot, bool, error) {
	return session.Snapshot{}, false, nil
}

func testSet(n int) *story.Set {
	set := &story.Set{Title: "Test Feed", URL: "https://example.com/rss"}
	for i := range n {
		set.Stories = append(set.Stories, story.Story{
			GUID:  fmt.Sprintf("guid-%d", i),
			Title: fmt.Sprintf("Story %d", i),
			Body:  fmt.Sprintf("Body %d", i),
			Link:  fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return set
}

func newTestState() *state.ModelState {
	s := &state.ModelState{
		Phase:         state.Loading,
		FeedURL:       "https://example.com/rss",
		StoryDuration: testDuration,
		Row:           segment.NewRow(playback.DefaultStyling()),
		Viewport:      viewport.New(80, 20),
		Help:          help.New(),
		Keys: state.NewKeyMap(settings.KeyMapConfig{
			Next: "l,right", Previous: "h,left", Pause: "space", Restart: "r", Open: "o", Quit: "q",
		}),
		Width:  100,
		Height: 40,
	}
	s.Sequence = playback.NewSequence(s.Row, playback.WithOnStoryCompleted(func() {
		s.StoryDone = true
	}))
	return s
}

func newTestDeps(set *story.Set, repo *stubSessionRepo) Deps {
	stories := usecase.NewStoryService(&stubFetcher{set: set}, 0)
	sessions := usecase.NewSessionService(repo, func() time.Time {
		return time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	})
	return Deps{
		Stories:     &stories,
		Sessions:    &sessions,
		OpenBrowser: func(string) error { return nil },
		Logger:      zerolog.Nop(),
	}
}

// playingState returns a state that has loaded n stories and started the
// first one.
func playingState(n int, repo *stubSessionRepo) (*state.ModelState, Deps) {
	set := testSet(n)
	s := newTestState()
	deps := newTestDeps(set, repo)
	HandleStoriesLoadedMsg(s, StoriesLoadedMsg{URL: set.URL, Set: set}, deps)
	return s, deps
}

// runFrames feeds frames spaced one frame interval apart.
func runFrames(s *state.ModelState, deps Deps, frames int) {
	at := s.LastFrame
	if at.IsZero() {
		at = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	}
	for range frames {
		at = at.Add(metrics.FrameInterval)
		HandleFrameMsg(s, FrameMsg(at), deps)
	}
}

func framesFor(d time.Duration) int {
	return int(d / metrics.FrameInterval)
}

func segmentState(s *state.ModelState, i int) segment.State {
	seg, ok := s.Row.Segment(i)
	if !ok {
		return segment.State(-1)
	}
	return seg.State()
}
