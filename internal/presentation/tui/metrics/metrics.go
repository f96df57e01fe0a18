// Package metrics centralizes layout and timing constants for the TUI.
package metrics

import "time"

const (
	// FrameInterval is how often the indicator row is advanced and redrawn.
	FrameInterval = 50 * time.Millisecond

	ProgressLines      = 2
	HeaderLines        = 3
	HeaderWidthPadding = 4
	BodyPaddingLeft    = 1
	BodyPaddingRight   = 1
)
