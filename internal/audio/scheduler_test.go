package audio

import (
	"context"
	"math"
	"testing"
	"time"
)

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

type recordingSink struct{ voices []Voice }

func (s *recordingSink) Schedule(v Voice) { s.voices = append(s.voices, v) }

func leadOnlyTrack(n int, loop bool) Track {
	t := Track{Name: "test", BPM: 120, Loop: loop, Root: 440}
	for i := 0; i < n; i++ {
		t.Lead = append(t.Lead, i%12)
		t.Bass = append(t.Bass, Rest)
		t.Drums += "."
	}
	return t
}

func TestSchedulerEighthSpacingIndependentOfWake(t *testing.T) {
	track := leadOnlyTrack(16, true)
	eighth := track.Eighth()
	wakes := [][]float64{
		{0.025},
		{0.007},
		{0.09},
		{0.004, 0.061, 0.033, 0.099, 0.012},
	}
	for _, pattern := range wakes {
		clock := &fakeClock{now: 1.0}
		sink := &recordingSink{}
		s := NewScheduler(track, clock, sink, 25*time.Millisecond, 100*time.Millisecond)
		for i := 0; len(sink.voices) < 40; i++ {
			s.Wake()
			clock.now += pattern[i%len(pattern)]
		}
		for i := 1; i < len(sink.voices); i++ {
			gap := sink.voices[i].Start - sink.voices[i-1].Start
			if math.Abs(gap-eighth) > 1e-9 {
				t.Fatalf("wake pattern %v: gap %d = %.6f, want %.6f", pattern, i, gap, eighth)
			}
		}
	}
}

func TestSchedulerLookAheadWindow(t *testing.T) {
	track := leadOnlyTrack(64, false)
	clock := &fakeClock{}
	sink := &recordingSink{}
	s := NewScheduler(track, clock, sink, 25*time.Millisecond, 100*time.Millisecond)
	for step := 0; step < 100; step++ {
		s.Wake()
		for _, v := range sink.voices {
			if v.Start >= clock.now+0.1 {
				t.Fatalf("voice at %.3f scheduled beyond now+lookahead (%.3f)", v.Start, clock.now+0.1)
			}
		}
		if s.NextNoteTime() < clock.now+0.1 {
			t.Fatalf("step due at %.3f left unscheduled at %.3f", s.NextNoteTime(), clock.now)
		}
		clock.now += 0.025
	}
}

func TestSchedulerOneShotFinishes(t *testing.T) {
	track := leadOnlyTrack(4, false)
	clock := &fakeClock{}
	sink := &recordingSink{}
	s := NewScheduler(track, clock, sink, 25*time.Millisecond, 100*time.Millisecond)
	for i := 0; i < 100 && !s.Finished(); i++ {
		s.Wake()
		clock.now += 0.025
	}
	if !s.Finished() {
		t.Fatal("one-shot track never finished")
	}
	if len(sink.voices) != 4 {
		t.Errorf("scheduled %d voices, want 4", len(sink.voices))
	}
	if s.Wake() {
		t.Error("Wake after finish should report false")
	}
}

func TestSchedulerLoops(t *testing.T) {
	track := leadOnlyTrack(4, true)
	clock := &fakeClock{}
	sink := &recordingSink{}
	s := NewScheduler(track, clock, sink, 25*time.Millisecond, 100*time.Millisecond)
	for i := 0; i < 200; i++ {
		s.Wake()
		clock.now += 0.025
	}
	if len(sink.voices) < 12 {
		t.Errorf("looping track scheduled only %d voices", len(sink.voices))
	}
}

func TestSchedulerResyncsAfterStall(t *testing.T) {
	track := leadOnlyTrack(16, true)
	clock := &fakeClock{}
	sink := &recordingSink{}
	s := NewScheduler(track, clock, sink, 25*time.Millisecond, 100*time.Millisecond)
	s.Wake()
	before := len(sink.voices)
	clock.now = 10
	s.Wake()
	added := len(sink.voices) - before
	if added > int(0.1/track.Eighth())+1 {
		t.Errorf("stall produced a burst of %d voices", added)
	}
	for _, v := range sink.voices[before:] {
		if v.Start < 10 {
			t.Errorf("voice scheduled in the past at %.3f", v.Start)
		}
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	track := leadOnlyTrack(8, true)
	m := NewMixer(1, 1)
	s := NewScheduler(track, m, m, time.Millisecond, 100*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSchedulerDrums(t *testing.T) {
	track := Track{Name: "drums", BPM: 120, Root: 440,
		Lead:  []int{Rest, Rest, Rest, Rest},
		Bass:  []int{0, Rest, Rest, Rest},
		Drums: "ksh.",
	}
	clock := &fakeClock{}
	sink := &recordingSink{}
	s := NewScheduler(track, clock, sink, 25*time.Millisecond, time.Second)
	s.Wake()
	// Bass and kick on step 0, snare, hi-hat.
	if len(sink.voices) != 4 {
		t.Fatalf("scheduled %d voices, want 4", len(sink.voices))
	}
	for _, v := range sink.voices {
		if v.Channel != ChannelMusic {
			t.Error("music voices must use the music channel")
		}
	}
}
