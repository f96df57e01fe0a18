// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tesso57/storybar/internal/domain/story"
)

var (
	// ErrNoSuchFeed is returned for a feed number outside the subscription list.
	ErrNoSuchFeed = errors.New("no such feed")
	// ErrInvalidFeedURL is returned for an empty URL or one containing whitespace.
	ErrInvalidFeedURL = errors.New("invalid feed url")
	// ErrDuplicateFeed is returned when the URL is already subscribed.
	ErrDuplicateFeed = errors.New("feed already subscribed")
)

// SubscriptionRepository abstracts persistence for feed subscriptions.
type SubscriptionRepository interface {
	List() ([]string, error)
	Add(url string) error
	Remove(index int) error
}

// SessionDeleter forgets the saved position of a feed.
type SessionDeleter interface {
	Delete(ctx context.Context, feedURL string) error
}

// Removal is the outcome of unsubscribing from a feed.
type Removal struct {
	URL   string
	Feeds []string
}

// SubscriptionService manages the subscribed feeds. Feeds are numbered
// from 1 in the order they were added.
type SubscriptionService struct {
	Repo     SubscriptionRepository
	Sessions SessionDeleter
}

// NewSubscriptionService constructs a SubscriptionService. sessions may be
// nil, in which case removed feeds keep their saved position.
func NewSubscriptionService(repo SubscriptionRepository, sessions SessionDeleter) SubscriptionService {
	return SubscriptionService{Repo: repo, Sessions: sessions}
}

// List returns all subscribed feed URLs.
func (s SubscriptionService) List() ([]string, error) {
	return s.Repo.List()
}

// Add subscribes to url and returns the updated list.
func (s SubscriptionService) Add(url string) ([]string, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\r\n") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFeedURL, url)
	}
	feeds, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	if slices.Contains(feeds, trimmed) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFeed, trimmed)
	}
	if err := s.Repo.Add(trimmed); err != nil {
		return nil, err
	}
	return s.Repo.List()
}

// Remove unsubscribes from the feed numbered number and forgets its saved
// position. When only the session cleanup fails, the returned Removal is
// still complete.
func (s SubscriptionService) Remove(ctx context.Context, number int) (Removal, error) {
	url, err := s.lookup(number)
	if err != nil {
		return Removal{}, err
	}
	if err := s.Repo.Remove(number - 1); err != nil {
		return Removal{}, err
	}
	feeds, err := s.Repo.List()
	if err != nil {
		return Removal{}, err
	}
	removal := Removal{URL: url, Feeds: feeds}

	if s.Sessions != nil {
		if err := s.Sessions.Delete(ctx, url); err != nil {
			return removal, fmt.Errorf("forget saved position of %s: %w", url, err)
		}
	}
	return removal, nil
}

// Resolve turns a --feed value into a feed URL. A number picks a
// subscribed feed, "all" merges every subscribed feed, and anything else
// is taken as a URL. An empty value resolves to "".
func (s SubscriptionService) Resolve(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "", nil
	case strings.EqualFold(value, "all"):
		return story.AllFeedsURL, nil
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return value, nil
	}
	return s.lookup(number)
}

func (s SubscriptionService) lookup(number int) (string, error) {
	feeds, err := s.Repo.List()
	if err != nil {
		return "", err
	}
	if number < 1 || number > len(feeds) {
		return "", fmt.Errorf("%w: %d (%d subscribed)", ErrNoSuchFeed, number, len(feeds))
	}
	return feeds[number-1], nil
}
