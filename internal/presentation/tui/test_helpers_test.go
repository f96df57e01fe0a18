package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/storybar/internal/application/settings"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/domain/session"
	"github.com/tesso57/storybar/internal/domain/story"
)

const testFeedURL = "https://example.com/rss"

type stubFetcher struct {
	mock.Mock
	set *story.Set
	err error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*story.Set, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url)
		set, _ := args.Get(0).(*story.Set)
		return set, args.Error(1)
	}
	return s.set, s.err
}

type stubSessionRepo struct {
	mock.Mock
	snaps map[string]session.Snapshot
}

func (s *stubSessionRepo) Save(ctx context.Context, snap session.Snapshot) error {
	if len(s.ExpectedCalls) > 0 {
		return s.Called(ctx, snap).Error(0)
	}
	if s.snaps == nil {
		s.snaps = make(map[string]session.Snapshot)
	}
	s.snaps[snap.FeedURL] = snap
	return nil
}

func (s *stubSessionRepo) Load(_ context.Context, feedURL string) (session.Snapshot, bool, error) {
	snap, ok := s.snaps[feedURL]
	return snap, ok, nil
}

func (s *stubSessionRepo) Latest(context.Context) (session.Snapshot, bool, error) {
	for _, snap := range s.snaps {
		return snap, true, nil
	}
	return session.Snapshot{}, false, nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Feeds:         []string{testFeedURL},
		StoryDuration: 200 * time.Millisecond,
		KeyMap: settings.KeyMapConfig{
			Next: "l,right", Previous: "h,left", Pause: "space", Restart: "r", Open: "o", Quit: "q",
		},
		Styling: settings.StylingConfig{
			ProgressSpacing: -1,
			FilledColor:     "255",
			EmptyColor:      "240",
			FilledGlyph:     "━",
			EmptyGlyph:      "━",
		},
		Theme: settings.ThemeConfig{FeedName: "244", Title: "205"},
	}
}

func testSet(n int) *story.Set {
	set := &story.Set{Title: "Test Feed", URL: testFeedURL}
	for i := range n {
		set.Stories = append(set.Stories, story.Story{
			GUID:      fmt.Sprintf("guid-%d", i),
			Title:     fmt.Sprintf("Story %d", i),
			Body:      fmt.Sprintf("Body of story %d", i),
			Link:      fmt.Sprintf("https://example.com/%d", i),
			FeedTitle: "Test Feed",
		})
	}
	return set
}

func newTestModel(cfg settings.Settings, fetcher usecase.StoryFetcher, repo usecase.SessionRepository, restore bool) *Model {
	stories := usecase.NewStoryService(fetcher, cfg.MaxStories)
	sessions := usecase.NewSessionService(repo, func() time.Time {
		return time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	})
	return NewModel(cfg, stories, sessions, Options{Restore: restore, Logger: zerolog.Nop()})
}
