// Package feed loads story sets from RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/tesso57/storybar/internal/domain/story"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

const defaultTimeout = 10 * time.Second

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Storybar/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FetchWithContext parses a feed from the given URL into a story set.
func FetchWithContext(ctx context.Context, url string) (*story.Set, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	set := &story.Set{
		Title:   parsed.Title,
		URL:     url,
		Stories: make([]story.Story, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		pub := item.Published
		if pub == "" {
			pub = item.Updated
		}
		var date time.Time
		if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		}

		body := PlainText(item.Description)
		if body == "" {
			body = PlainText(item.Content)
		}

		set.Stories = append(set.Stories, story.Story{
			GUID:      item.GUID,
			Title:     strings.TrimSpace(item.Title),
			Body:      body,
			Link:      item.Link,
			Published: pub,
			Date:      date,
			FeedTitle: parsed.Title,
			FeedURL:   url,
		})
	}

	return set, nil
}

// PlainText extracts the readable text from an HTML fragment.
func PlainText(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// FetchAll fetches every url concurrently and merges the stories, newest
// first. Feeds that fail are skipped; an error is returned only when all
// of them fail.
func FetchAll(ctx context.Context, urls []string, perFeedTimeout time.Duration) (*story.Set, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var stories []story.Story
	var errs []error

	for _, url := range urls {
		url := strings.TrimSpace(url)
		if url == "" {
			continue
		}
		wg.Go(func() {
			feedCtx, cancel := context.WithTimeout(ctx, perFeedTimeout)
			defer cancel()

			set, err := FetchWithContext(feedCtx, url)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", url, err))
				return
			}
			stories = append(stories, set.Stories...)
		})
	}
	wg.Wait()

	if len(stories) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].Date.After(stories[j].Date)
	})
	return &story.Set{
		Title:   "All Feeds",
		URL:     story.AllFeedsURL,
		Stories: stories,
	}, nil
}

// Fetcher implements the usecase.StoryFetcher interface.
type Fetcher struct {
	Timeout time.Duration
	// Feeds are merged when story.AllFeedsURL is requested.
	Feeds []string
}

// Fetch loads one feed, or every configured feed for story.AllFeedsURL,
// bounded by the fetcher timeout.
func (f Fetcher) Fetch(ctx context.Context, url string) (*story.Set, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if strings.TrimSpace(url) == story.AllFeedsURL {
		return FetchAll(ctx, f.Feeds, timeout)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return FetchWithContext(ctx, url)
}
