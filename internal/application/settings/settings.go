// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/storybar/internal/domain/playback"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Next     string `yaml:"next" kong:"help='Next story key',default='l,right'"`
	Previous string `yaml:"previous" kong:"help='Previous story key',default='h,left'"`
	Pause    string `yaml:"pause" kong:"help='Pause/resume key',default='space'"`
	Restart  string `yaml:"restart" kong:"help='Replay current story key',default='r'"`
	Open     string `yaml:"open" kong:"help='Open story link key',default='o'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// StylingConfig defines the look of the story indicator row.
type StylingConfig struct {
	ProgressSpacing int    `yaml:"progress_spacing" kong:"help='Columns between indicators (-1 uses the default)',default='-1'"`
	FilledColor     string `yaml:"filled_color" kong:"help='Filled indicator color',default='255'"`
	EmptyColor      string `yaml:"empty_color" kong:"help='Empty indicator color',default='240'"`
	FilledGlyph     string `yaml:"filled_glyph" kong:"help='Filled indicator glyph',default='━'"`
	EmptyGlyph      string `yaml:"empty_glyph" kong:"help='Empty indicator glyph',default='━'"`
}

// Playback converts the configuration into the row styling value.
func (c StylingConfig) Playback() playback.Styling {
	return playback.Styling{
		ProgressSpacing: c.ProgressSpacing,
		Progress: &playback.ProgressStyling{
			FilledColor: c.FilledColor,
			EmptyColor:  c.EmptyColor,
			FilledGlyph: c.FilledGlyph,
			EmptyGlyph:  c.EmptyGlyph,
		},
	}
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	FeedName string `yaml:"feed_name" kong:"help='Feed name color',default='244'"`
	Title    string `yaml:"title" kong:"help='Story title color',default='205'"`
}

// Settings represents the application configuration.
type Settings struct {
	Feeds         []string      `yaml:"feeds" kong:"help='RSS/Atom Feed URLs',default='https://news.ycombinator.com/rss'"`
	StoryDuration time.Duration `yaml:"story_duration" kong:"help='Time each story stays on screen',default='5s'"`
	MaxStories    int           `yaml:"max_stories" kong:"help='Maximum stories per feed (0 = no limit)',default='20'"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout" kong:"help='Feed fetch timeout',default='10s'"`
	KeyMap        KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Styling       StylingConfig `yaml:"styling" kong:"embed,prefix='styling.'"`
	Theme         ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	SessionFile   string        `yaml:"session_file" kong:"help='Saved session database path'"`
	LogFile       string        `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel      string        `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// DefaultFeed returns the first configured feed URL.
func (s Settings) DefaultFeed() string {
	if len(s.Feeds) == 0 {
		return ""
	}
	return s.Feeds[0]
}
