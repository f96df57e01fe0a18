package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/storybar/internal/application/usecase"
	"github.com/tesso57/storybar/internal/infrastructure/config"
	"github.com/tesso57/storybar/internal/infrastructure/feed"
	"github.com/tesso57/storybar/internal/infrastructure/logging"
	"github.com/tesso57/storybar/internal/infrastructure/session"
	"github.com/tesso57/storybar/internal/presentation/tui"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Config file path." type:"path" env:"STORYBAR_CONFIG"`
	LogFile  string `help:"Log file path (overrides the config file)."`
	LogLevel string `help:"Log level: debug, info, warn or error (overrides the config file)."`
}

// CLI is the kong command tree.
type CLI struct {
	Globals

	Play  PlayCmd  `cmd:"" default:"withargs" help:"Play the stories of a feed."`
	Feeds FeedsCmd `cmd:"" help:"Manage subscribed feeds."`
}

// PlayCmd starts the story viewer.
type PlayCmd struct {
	Feed     string        `help:"Feed URL, the number of a subscribed feed, or 'all'." short:"f"`
	Duration time.Duration `help:"Time each story stays on screen (overrides the config file)."`
	Restore  bool          `help:"Resume where the last session stopped." short:"r"`
}

// FeedsCmd groups the subscription commands.
type FeedsCmd struct {
	List FeedsListCmd `cmd:"" default:"1" help:"List subscribed feeds."`
	Add  FeedsAddCmd  `cmd:"" help:"Subscribe to a feed."`
	Rm   FeedsRmCmd   `cmd:"" help:"Unsubscribe from a feed and forget its saved position."`
}

// FeedsListCmd prints the subscribed feeds.
type FeedsListCmd struct{}

// FeedsAddCmd subscribes to a feed.
type FeedsAddCmd struct {
	URL string `arg:"" help:"Feed URL."`
}

// FeedsRmCmd unsubscribes from a feed.
type FeedsRmCmd struct {
	Index int `arg:"" help:"Feed number as shown by 'feeds list'."`
}

type app struct {
	store  *config.Store
	logger zerolog.Logger
	closer io.Closer
}

func (g *Globals) open() (*app, error) {
	store, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := &store.Settings
	if g.LogFile != "" {
		cfg.LogFile = g.LogFile
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{store: store, logger: logger, closer: closer}, nil
}

func (a *app) Close() {
	_ = a.closer.Close()
}

// Run plays the selected feed until the user quits.
func (c *PlayCmd) Run(g *Globals) error {
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.store.Settings
	if c.Duration > 0 {
		cfg.StoryDuration = c.Duration
	}

	sessions, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}
	defer func() { _ = sessions.Close() }()
	sessionSvc := usecase.NewSessionService(sessions, time.Now)

	feedURL, err := usecase.NewSubscriptionService(a.store, sessions).Resolve(c.Feed)
	if err != nil {
		return err
	}
	if feedURL == "" && c.Restore {
		latest, ok, err := sessionSvc.LatestFeed(context.Background())
		if err != nil {
			a.logger.Warn().Err(err).Msg("failed to look up the last session")
		} else if ok {
			feedURL = latest
		}
	}
	if feedURL == "" {
		feedURL = cfg.DefaultFeed()
	}
	if feedURL == "" {
		return errors.New("no feed to play: pass --feed or run 'storybar feeds add URL'")
	}

	stories := usecase.NewStoryService(feed.Fetcher{Timeout: cfg.FetchTimeout, Feeds: cfg.Feeds}, cfg.MaxStories)
	logger := logging.Component(a.logger, "tui")
	logger.Info().Str("feed", feedURL).Bool("restore", c.Restore).Dur("duration", cfg.StoryDuration).Msg("starting")

	m := tui.NewModel(cfg, stories, sessionSvc, tui.Options{
		FeedURL: feedURL,
		Restore: c.Restore,
		Logger:  logger,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("storybar exited with error: %w", err)
	}
	return nil
}

// Run prints the subscribed feeds, numbered from 1.
func (c *FeedsListCmd) Run(g *Globals, out io.Writer) error {
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	feeds, err := usecase.NewSubscriptionService(a.store, nil).List()
	if err != nil {
		return err
	}
	printFeeds(out, feeds)
	return nil
}

// Run subscribes to a feed.
func (c *FeedsAddCmd) Run(g *Globals, out io.Writer) error {
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	feeds, err := usecase.NewSubscriptionService(a.store, nil).Add(c.URL)
	if err != nil {
		return err
	}
	a.logger.Info().Str("feed", strings.TrimSpace(c.URL)).Msg("feed added")
	printFeeds(out, feeds)
	return nil
}

// Run unsubscribes from a feed and deletes its saved session.
func (c *FeedsRmCmd) Run(g *Globals, out io.Writer) error {
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	sessions, err := session.Open(a.store.Settings.SessionFile)
	if err != nil {
		return err
	}
	defer func() { _ = sessions.Close() }()

	removal, err := usecase.NewSubscriptionService(a.store, sessions).Remove(context.Background(), c.Index)
	if removal.URL != "" {
		a.logger.Info().Str("feed", removal.URL).Msg("feed removed")
		printFeeds(out, removal.Feeds)
	}
	return err
}

func printFeeds(out io.Writer, feeds []string) {
	if len(feeds) == 0 {
		_, _ = fmt.Fprintln(out, "No feeds. Add one with 'storybar feeds add URL'.")
		return
	}
	for i, f := range feeds {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, f)
	}
}
