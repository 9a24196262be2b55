package audio

import (
	"context"
	"time"
)

// Clock is the audio timeline the scheduler plans against.
type Clock interface {
	Now() float64
}

// Sink receives scheduled voices.
type Sink interface {
	Schedule(v Voice)
}

// startDelay gives the first note time to be queued before it is due.
const startDelay = 0.05

// Part gains.
const (
	leadGain = 0.32
	bassGain = 0.45
	drumGain = 0.6
)

// Scheduler is a look-ahead sequencer. It wakes on a short interval and
// queues every step whose start falls within the look-ahead window, moving a
// virtual note time forward by exactly one eighth note per step. The wake
// cadence decides only when notes are queued, never when they sound.
type Scheduler struct {
	clock     Clock
	sink      Sink
	track     Track
	wake      time.Duration
	lookAhead float64

	nextNoteTime float64
	step         int
	finished     bool
	seed         uint64
}

// NewScheduler creates a scheduler whose first step sounds shortly after now.
func NewScheduler(track Track, clock Clock, sink Sink, wake, lookAhead time.Duration) *Scheduler {
	return &Scheduler{
		clock:        clock,
		sink:         sink,
		track:        track,
		wake:         wake,
		lookAhead:    lookAhead.Seconds(),
		nextNoteTime: clock.Now() + startDelay,
		seed:         0x9E3779B97F4A7C15,
	}
}

// Wake queues all steps due within the look-ahead window. It returns false
// once a non-looping track has queued its last step.
func (s *Scheduler) Wake() bool {
	if s.finished {
		return false
	}
	now := s.clock.Now()
	// After a stall, resume from now instead of bursting the missed steps.
	if s.nextNoteTime < now-s.lookAhead {
		s.nextNoteTime = now
	}
	horizon := now + s.lookAhead
	for s.nextNoteTime < horizon {
		s.scheduleStep(s.step, s.nextNoteTime)
		s.nextNoteTime += s.track.Eighth()
		s.step++
		if s.step >= s.track.Steps() {
			if !s.track.Loop {
				s.finished = true
				return false
			}
			s.step = 0
		}
	}
	return true
}

// Run wakes the scheduler on its interval until ctx is cancelled or the
// track ends.
func (s *Scheduler) Run(ctx context.Context) {
	if !s.Wake() {
		return
	}
	ticker := time.NewTicker(s.wake)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.Wake() {
				return
			}
		}
	}
}

// NextNoteTime returns the start time of the next unscheduled step.
func (s *Scheduler) NextNoteTime() float64 { return s.nextNoteTime }

// Finished reports whether a one-shot track has been fully queued.
func (s *Scheduler) Finished() bool { return s.finished }

func (s *Scheduler) scheduleStep(step int, at float64) {
	t := s.track
	e := t.Eighth()

	if n := t.Lead[step]; n != Rest {
		s.sink.Schedule(Voice{
			Start: at, Duration: e * 0.9, Gain: leadGain, Channel: ChannelMusic,
			Wave: tone(noteFreq(t.Root, n), true, 0.02, 0.25, 0.6, 0.2),
		})
	}
	if n := t.Bass[step]; n != Rest {
		s.sink.Schedule(Voice{
			Start: at, Duration: e * 0.95, Gain: bassGain, Channel: ChannelMusic,
			Wave: tone(noteFreq(t.Root, n-24), false, 0.01, 0.1, 0.8, 0.1),
		})
	}

	s.seed = s.seed*6364136223846793005 + 1442695040888963407
	var w Wave
	dur := 0.0
	switch []rune(t.Drums)[step] {
	case 'k':
		w, dur = kick(), 0.25
	case 's':
		w, dur = snare(s.seed), 0.2
	case 'h':
		w, dur = hihat(s.seed), 0.06
	}
	if w != nil {
		s.sink.Schedule(Voice{Start: at, Duration: dur, Gain: drumGain, Channel: ChannelMusic, Wave: w})
	}
}
