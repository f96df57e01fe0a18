package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	domainsession "github.com/tesso57/storybar/internal/domain/session"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/infrastructure/session"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	var out bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("storybar"),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit(%d)", code) }),
		kong.BindTo(io.Writer(&out), (*io.Writer)(nil)),
	)
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	err = ctx.Run(&cli.Globals)
	return out.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return filepath.Join(dir, "config.yaml")
}

func TestFeedsCommands(t *testing.T) {
	configPath := setupHome(t)

	out, err := runCLI(t, "--config", configPath, "feeds", "list")
	if err != nil {
		t.Fatalf("feeds list failed: %v", err)
	}
	if !strings.Contains(out, "1. https://news.ycombinator.com/rss") {
		t.Fatalf("default feed missing:\n%s", out)
	}

	out, err = runCLI(t, "--config", configPath, "feeds", "add", " https://example.com/feed.xml ")
	if err != nil {
		t.Fatalf("feeds add failed: %v", err)
	}
	if !strings.Contains(out, "2. https://example.com/feed.xml") {
		t.Fatalf("added feed missing:\n%s", out)
	}

	out, err = runCLI(t, "--config", configPath, "feeds", "rm", "1")
	if err != nil {
		t.Fatalf("feeds rm failed: %v", err)
	}
	if strings.Contains(out, "news.ycombinator.com") || !strings.Contains(out, "1. https://example.com/feed.xml") {
		t.Fatalf("unexpected list after rm:\n%s", out)
	}

	if _, err := runCLI(t, "--config", configPath, "feeds", "rm", "5"); !errors.Is(err, usecase.ErrNoSuchFeed) {
		t.Fatalf("feeds rm 5 error = %v, want ErrNoSuchFeed", err)
	}
	if _, err := runCLI(t, "--config", configPath, "feeds", "add", "two words"); !errors.Is(err, usecase.ErrInvalidFeedURL) {
		t.Fatalf("feeds add error = %v, want ErrInvalidFeedURL", err)
	}
}

func TestFeedsRmForgetsSession(t *testing.T) {
	configPath := setupHome(t)
	dbPath := filepath.Join(filepath.Dir(configPath), "data", "storybar", "sessions.db")

	store, err := session.Open(dbPath)
	if err != nil {
		t.Fatalf("session.Open failed: %v", err)
	}
	feedURL := "https://news.ycombinator.com/rss"
	if err := store.Save(context.Background(), domainsession.Snapshot{FeedURL: feedURL, Index: 3, SavedAt: time.Now()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_ = store.Close()

	if _, err := runCLI(t, "--config", configPath, "feeds", "rm", "1"); err != nil {
		t.Fatalf("feeds rm failed: %v", err)
	}

	store, err = session.Open(dbPath)
	if err != nil {
		t.Fatalf("session.Open failed: %v", err)
	}
	defer func() { _ = store.Close() }()
	if _, ok, err := store.Load(context.Background(), feedURL); err != nil || ok {
		t.Fatalf("session should be gone: ok=%v err=%v", ok, err)
	}
}

func TestPrintFeedsEmpty(t *testing.T) {
	var out bytes.Buffer
	printFeeds(&out, nil)
	if !strings.Contains(out.String(), "No feeds") {
		t.Fatalf("output = %q", out.String())
	}
}
