package playback

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// stubIndicator records its visual state. With expectations set it
// defers to the mock instead.
type stubIndicator struct {
	mock.Mock
	duration    time.Duration
	started     bool
	paused      bool
	completed   bool
	onCompleted func()
}

func (s *stubIndicator) Start(onCompleted func()) {
	if len(s.ExpectedCalls) > 0 {
		s.Called(onCompleted)
		return
	}
	s.started = true
	s.paused = false
	s.completed = false
	s.onCompleted = onCompleted
}

func (s *stubIndicator) Pause() {
	if len(s.ExpectedCalls) > 0 {
		s.Called()
		return
	}
	s.paused = true
}

func (s *stubIndicator) Resume() {
	if len(s.ExpectedCalls) > 0 {
		s.Called()
		return
	}
	s.paused = false
}

func (s *stubIndicator) SetCompleted() {
	if len(s.ExpectedCalls) > 0 {
		s.Called()
		return
	}
	s.started = false
	s.completed = true
}

func (s *stubIndicator) SetUncompleted() {
	if len(s.ExpectedCalls) > 0 {
		s.Called()
		return
	}
	s.started = false
	s.completed = false
}

func (s *stubIndicator) IsStarted() bool {
	if len(s.ExpectedCalls) > 0 {
		return s.Called().Bool(0)
	}
	return s.started
}

// finish simulates the fill timer running out.
func (s *stubIndicator) finish() {
	s.started = false
	s.completed = true
	if s.onCompleted != nil {
		s.onCompleted()
	}
}

type stubFactory struct {
	builds int
	built  []*stubIndicator
}

func (f *stubFactory) Build(count int, duration time.Duration) []Indicator {
	f.builds++
	f.built = make([]*stubIndicator, count)
	out := make([]Indicator, count)
	for i := range count {
		f.built[i] = &stubIndicator{duration: duration}
		out[i] = f.built[i]
	}
	return out
}

func newTestSequence(count int, opts ...Option) (*Sequence, *stubFactory) {
	factory := &stubFactory{}
	seq := NewSequence(factory, opts...)
	if err := seq.SetUp(count, 5*time.Second); err != nil {
		panic(err)
	}
	return seq, factory
}
