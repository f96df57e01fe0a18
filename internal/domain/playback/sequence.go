package playback

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sequence drives a row of story indicators. Indicators before the cursor
// are completed, the one under it is active and those after it are
// uncompleted. Next and Previous only move the cursor; marking the
// indicator being left is the caller's job (CompleteCurrent,
// UnCompleteCurrent).
//
// A Sequence is not safe for concurrent use. All calls, including the
// completion callbacks issued by indicators, must happen on one goroutine.
type Sequence struct {
	factory     IndicatorFactory
	stories     *Iterator[Indicator]
	duration    time.Duration
	onCompleted func()
	logger      zerolog.Logger

	// generation invalidates completion observers registered by earlier
	// Start calls and by indicators discarded in SetUp.
	generation uint64
	paused     bool
}

// Option configures a Sequence.
type Option func(*Sequence)

// WithOnStoryCompleted sets the natural completion listener.
func WithOnStoryCompleted(fn func()) Option {
	return func(s *Sequence) {
		s.onCompleted = fn
	}
}

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sequence) {
		s.logger = logger
	}
}

// NewSequence creates an empty Sequence. Call SetUp before navigating.
func NewSequence(factory IndicatorFactory, opts ...Option) *Sequence {
	s := &Sequence{
		factory: factory,
		stories: NewIterator[Indicator](nil),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOnStoryCompleted replaces the natural completion listener.
func (s *Sequence) SetOnStoryCompleted(fn func()) {
	s.onCompleted = fn
}

// SetUp discards the current indicators and builds count new ones, each
// filling over duration. The cursor returns to -1.
func (s *Sequence) SetUp(count int, duration time.Duration) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, duration)
	}

	indicators := s.factory.Build(count, duration)
	if len(indicators) != count {
		return fmt.Errorf("%w: factory built %d indicators, want %d", ErrInvalidCount, len(indicators), count)
	}

	s.stories = NewIterator(indicators)
	s.duration = duration
	s.generation++
	s.paused = false
	s.logger.Debug().Int("count", count).Dur("duration", duration).Msg("story row set up")
	return nil
}

// Len returns the number of indicators.
func (s *Sequence) Len() int {
	return s.stories.Len()
}

// Duration returns the per-story duration of the last SetUp.
func (s *Sequence) Duration() time.Duration {
	return s.duration
}

// Indicator returns the indicator at index i.
func (s *Sequence) Indicator(i int) (Indicator, bool) {
	return s.stories.At(i)
}

// Active returns the indicator under the cursor, if any.
func (s *Sequence) Active() (Indicator, bool) {
	return s.stories.Current()
}

// Start plays the active indicator. Its natural completion is reported
// through the story completed listener at most once.
func (s *Sequence) Start() {
	active, ok := s.Active()
	if !ok {
		return
	}
	s.generation++
	s.paused = false
	generation, index := s.generation, s.stories.Cursor()
	active.Start(func() {
		s.storyCompleted(generation, index)
	})
}

// IsStarted reports whether the active indicator is playing.
func (s *Sequence) IsStarted() bool {
	active, ok := s.Active()
	return ok && active.IsStarted()
}

// Pause pauses the active indicator.
func (s *Sequence) Pause() {
	active, ok := s.Active()
	if !ok {
		return
	}
	s.paused = true
	active.Pause()
}

// Resume resumes the active indicator.
func (s *Sequence) Resume() {
	active, ok := s.Active()
	if !ok {
		return
	}
	s.paused = false
	active.Resume()
}

// HasNext reports whether Next can move the cursor.
func (s *Sequence) HasNext() bool {
	return s.stories.HasNext()
}

// NextIndex returns cursor+1. Check HasNext before relying on it.
func (s *Sequence) NextIndex() int {
	return s.stories.NextIndex()
}

// Next moves the cursor forward by one. It returns ErrOutOfRange when
// there is no next story and leaves the cursor unchanged.
func (s *Sequence) Next() error {
	if _, err := s.stories.Next(); err != nil {
		return err
	}
	s.logger.Debug().Int("cursor", s.stories.Cursor()).Msg("next story")
	return nil
}

// HasPrevious reports whether Previous can move the cursor.
func (s *Sequence) HasPrevious() bool {
	return s.stories.HasPrevious()
}

// PreviousIndex returns cursor-1. Check HasPrevious before relying on it.
func (s *Sequence) PreviousIndex() int {
	return s.stories.PreviousIndex()
}

// Previous moves the cursor back by one. It returns ErrOutOfRange when
// there is no previous story and leaves the cursor unchanged.
func (s *Sequence) Previous() error {
	if _, err := s.stories.Previous(); err != nil {
		return err
	}
	s.logger.Debug().Int("cursor", s.stories.Cursor()).Msg("previous story")
	return nil
}

// CompleteCurrent marks the active indicator completed.
func (s *Sequence) CompleteCurrent() {
	if active, ok := s.Active(); ok {
		active.SetCompleted()
	}
}

// UnCompleteCurrent marks the active indicator uncompleted.
func (s *Sequence) UnCompleteCurrent() {
	if active, ok := s.Active(); ok {
		active.SetUncompleted()
	}
}

// CurrentIndex returns the cursor, -1 before navigation starts.
func (s *Sequence) CurrentIndex() int {
	return s.stories.Cursor()
}

// SetCurrentItem jumps to index and re-synchronizes every indicator:
// those before index are completed, the one at index and those after it
// are uncompleted. Nothing changes when index is out of range.
func (s *Sequence) SetCurrentItem(index int) error {
	if index < 0 || index >= s.stories.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, s.stories.Len())
	}

	for i, indicator := range s.stories.All() {
		if i < index {
			indicator.SetCompleted()
		} else {
			indicator.SetUncompleted()
		}
	}
	if err := s.stories.Seek(index); err != nil {
		return err
	}
	s.generation++
	s.paused = false
	s.logger.Debug().Int("cursor", index).Msg("jumped to story")
	return nil
}

func (s *Sequence) storyCompleted(generation uint64, index int) {
	if generation != s.generation || index != s.stories.Cursor() || s.paused {
		s.logger.Debug().Int("index", index).Msg("dropping stale story completion")
		return
	}
	s.generation++
	if s.onCompleted != nil {
		s.onCompleted()
	}
}
