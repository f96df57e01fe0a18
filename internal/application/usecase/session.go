package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tesso57/storybar/internal/domain/playback"
	"github.com/tesso57/storybar/internal/domain/session"
	"github.com/tesso57/storybar/internal/domain/story"
)

// SessionRepository abstracts snapshot persistence.
type SessionRepository interface {
	Save(ctx context.Context, snap session.Snapshot) error
	Load(ctx context.Context, feedURL string) (session.Snapshot, bool, error)
	Latest(ctx context.Context) (session.Snapshot, bool, error)
}

// Restored is a snapshot resolved against a freshly loaded story set.
type Restored struct {
	Index      int
	Styling    playback.Styling
	HasStyling bool
}

// SessionService saves and restores the viewer position.
type SessionService struct {
	Repo SessionRepository
	Now  func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(repo SessionRepository, now func() time.Time) SessionService {
	return SessionService{Repo: repo, Now: now}
}

// Save records the story at index and the row styling for set.
func (s SessionService) Save(ctx context.Context, set *story.Set, index int, styling playback.Styling) error {
	if s.Repo == nil || set == nil {
		return nil
	}
	blob, err := styling.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode styling: %w", err)
	}
	snap := session.Snapshot{
		FeedURL: set.URL,
		Index:   max(index, 0),
		Styling: blob,
		SavedAt: s.now(),
	}
	if st, ok := set.At(snap.Index); ok {
		snap.StoryGUID = st.GUID
	}
	return s.Repo.Save(ctx, snap)
}

// Restore looks up the saved snapshot for set. The story is found by GUID
// first, since feeds reorder; the saved index is the fallback, clamped to
// the set.
func (s SessionService) Restore(ctx context.Context, set *story.Set) (Restored, bool, error) {
	if s.Repo == nil || set.Len() == 0 {
		return Restored{}, false, nil
	}
	snap, ok, err := s.Repo.Load(ctx, set.URL)
	if err != nil || !ok {
		return Restored{}, false, err
	}

	restored := Restored{Index: min(max(snap.Index, 0), set.Len()-1)}
	if snap.StoryGUID != "" {
		for i, st := range set.Stories {
			if st.GUID == snap.StoryGUID {
				restored.Index = i
				break
			}
		}
	}
	if len(snap.Styling) > 0 {
		if err := restored.Styling.UnmarshalBinary(snap.Styling); err != nil {
			return restored, true, fmt.Errorf("failed to decode saved styling: %w", err)
		}
		restored.HasStyling = true
	}
	return restored, true, nil
}

// LatestFeed returns the feed of the most recent snapshot.
func (s SessionService) LatestFeed(ctx context.Context) (string, bool, error) {
	if s.Repo == nil {
		return "", false, nil
	}
	snap, ok, err := s.Repo.Latest(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	return snap.FeedURL, true, nil
}

func (s SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
