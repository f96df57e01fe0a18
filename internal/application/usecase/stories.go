package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tesso57/storybar/internal/domain/story"
)

// ErrNoStories is returned when a source yields nothing to show.
var ErrNoStories = errors.New("no stories to show")

// StoryFetcher abstracts loading a story set from a URL.
type StoryFetcher interface {
	Fetch(ctx context.Context, url string) (*story.Set, error)
}

// StoryService loads story sets for the viewer.
type StoryService struct {
	Fetcher    StoryFetcher
	MaxStories int
}

// NewStoryService constructs a StoryService. maxStories <= 0 keeps every story.
func NewStoryService(fetcher StoryFetcher, maxStories int) StoryService {
	return StoryService{Fetcher: fetcher, MaxStories: maxStories}
}

// Load fetches the set at url, capped at MaxStories.
func (s StoryService) Load(ctx context.Context, url string) (*story.Set, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	set, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoStories, url)
	}
	if s.MaxStories > 0 && len(set.Stories) > s.MaxStories {
		set.Stories = set.Stories[:s.MaxStories]
	}
	return set, nil
}
