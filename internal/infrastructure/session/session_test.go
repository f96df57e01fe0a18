package session

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tesso57/storybar/internal/domain/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	savedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	snap := session.Snapshot{
		FeedURL:   "https://example.com/rss",
		Index:     3,
		StoryGUID: "guid-3",
		Styling:   []byte{0x08, 0x01},
		SavedAt:   savedAt,
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := store.Load(ctx, snap.FeedURL)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if got.Index != 3 || got.StoryGUID != "guid-3" {
		t.Errorf("Load = %+v", got)
	}
	if !bytes.Equal(got.Styling, snap.Styling) {
		t.Errorf("Styling = %x, want %x", got.Styling, snap.Styling)
	}
	if !got.SavedAt.Equal(savedAt) {
		t.Errorf("SavedAt = %s, want %s", got.SavedAt, savedAt)
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	url := "https://example.com/rss"

	_ = store.Save(ctx, session.Snapshot{FeedURL: url, Index: 1})
	if err := store.Save(ctx, session.Snapshot{FeedURL: url, Index: 4, StoryGUID: "g4"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := store.Load(ctx, url)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if got.Index != 4 || got.StoryGUID != "g4" {
		t.Errorf("Load = %+v, want index 4", got)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Load(context.Background(), "https://missing.example.com")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Fatal("Load reported a snapshot for an unknown feed")
	}
}

func TestStore_Latest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	if _, ok, err := store.Latest(ctx); err != nil || ok {
		t.Fatalf("Latest on empty store = %v, %v", ok, err)
	}

	_ = store.Save(ctx, session.Snapshot{FeedURL: "a", Index: 0, SavedAt: base})
	_ = store.Save(ctx, session.Snapshot{FeedURL: "b", Index: 2, SavedAt: base.Add(time.Hour)})

	got, ok, err := store.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("Latest = %v, %v", ok, err)
	}
	if got.FeedURL != "b" {
		t.Errorf("Latest feed = %q, want b", got.FeedURL)
	}
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_ = store.Save(ctx, session.Snapshot{FeedURL: "a", Index: 1})
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "a"); ok {
		t.Fatal("snapshot still present after Delete")
	}
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	for _, snap := range []session.Snapshot{
		{FeedURL: "", Index: 0},
		{FeedURL: "a", Index: -1},
	} {
		if err := store.Save(context.Background(), snap); !errors.Is(err, ErrInvalidSnapshot) {
			t.Errorf("Save(%+v) error = %v, want ErrInvalidSnapshot", snap, err)
		}
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
