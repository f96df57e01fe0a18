// Package session defines the viewer state kept across restarts.
package session

import "time"

// Snapshot is the last position in a story set and the row styling that
// was on screen. The indicator row itself is rebuilt on restore.
type Snapshot struct {
	FeedURL   string
	Index     int
	StoryGUID string
	Styling   []byte
	SavedAt   time.Time
}
