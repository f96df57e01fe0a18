// Package segment provides the terminal story indicator and the row that
// lays indicators out side by side.
package segment

import "time"

// State is the playback state of a Segment.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Segment fills over a fixed duration. Time only moves through Advance,
// so the completion callback runs on whichever goroutine drives it.
type Segment struct {
	duration    time.Duration
	elapsed     time.Duration
	state       State
	onCompleted func()
}

// New creates an empty segment that fills over duration.
func New(duration time.Duration) *Segment {
	return &Segment{duration: duration}
}

// Start restarts the fill from empty. onCompleted runs once when the
// segment fills on its own.
func (s *Segment) Start(onCompleted func()) {
	s.elapsed = 0
	s.state = Running
	s.onCompleted = onCompleted
}

// Pause freezes a running segment.
func (s *Segment) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused segment.
func (s *Segment) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// SetCompleted fills the segment and drops any pending callback.
func (s *Segment) SetCompleted() {
	s.elapsed = s.duration
	s.state = Completed
	s.onCompleted = nil
}

// SetUncompleted empties the segment and drops any pending callback.
func (s *Segment) SetUncompleted() {
	s.elapsed = 0
	s.state = Idle
	s.onCompleted = nil
}

// IsStarted reports whether the segment is running or paused.
func (s *Segment) IsStarted() bool {
	return s.state == Running || s.state == Paused
}

// State returns the current playback state.
func (s *Segment) State() State {
	return s.state
}

// Duration returns the fill duration.
func (s *Segment) Duration() time.Duration {
	return s.duration
}

// Elapsed returns how much of the duration has been filled.
func (s *Segment) Elapsed() time.Duration {
	return s.elapsed
}

// Progress returns the filled fraction in [0, 1].
func (s *Segment) Progress() float64 {
	if s.duration <= 0 {
		if s.state == Completed {
			return 1
		}
		return 0
	}
	p := float64(s.elapsed) / float64(s.duration)
	return min(max(p, 0), 1)
}

// Advance moves a running segment forward by dt.
func (s *Segment) Advance(dt time.Duration) {
	if s.state != Running || dt <= 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed < s.duration {
		return
	}
	s.elapsed = s.duration
	s.state = Completed
	done := s.onCompleted
	s.onCompleted = nil
	if done != nil {
		done()
	}
}
