// Package playback implements the story indicator state machine and the
// controller that navigates it.
package playback

import "time"

// Indicator is one segment of the story row. Implementations own their
// fill timer and must invoke the completion callback passed to Start on
// the same goroutine that drives the Sequence.
type Indicator interface {
	Start(onCompleted func())
	Pause()
	Resume()
	SetCompleted()
	SetUncompleted()
	IsStarted() bool
}

// IndicatorFactory builds the indicator list for a SetUp call. Every call
// replaces whatever the factory built before.
type IndicatorFactory interface {
	Build(count int, duration time.Duration) []Indicator
}

// IndicatorFactoryFunc adapts a function to IndicatorFactory.
type IndicatorFactoryFunc func(count int, duration time.Duration) []Indicator

// Build calls f(count, duration).
func (f IndicatorFactoryFunc) Build(count int, duration time.Duration) []Indicator {
	return f(count, duration)
}
