// Package story defines the content shown by the story viewer.
package story

import "time"

// AllFeedsURL names the set that merges every subscribed feed.
const AllFeedsURL = "internal://all"

// Story is a single screen of content.
type Story struct {
	GUID      string
	Title     string
	Body      string
	Link      string
	Published string
	Date      time.Time
	FeedTitle string
	FeedURL   string
}

// Set is an ordered collection of stories from one source.
type Set struct {
	Title   string
	URL     string
	Stories []Story
}

// Len returns the number of stories.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Stories)
}

// At returns the story at index i.
func (s *Set) At(i int) (Story, bool) {
	if s == nil || i < 0 || i >= len(s.Stories) {
		return Story{}, false
	}
	return s.Stories[i], true
}
