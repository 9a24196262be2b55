package audio

import (
	"math"
	"sync"
)

// Channel groups voices for volume and cancellation.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelSFX
)

// Voice is one scheduled sound on the mixer timeline.
type Voice struct {
	Start    float64 // Seconds on the mixer clock
	Duration float64
	Gain     float64
	Channel  Channel
	Wave     Wave
}

type activeVoice struct {
	Voice
	from, to int64 // Frame range
}

// Mixer renders scheduled voices into a float32 stereo stream. It is the
// io.Reader handed to the oto player, and its frame counter is the audio clock.
type Mixer struct {
	mu     sync.Mutex
	frame  int64
	voices []activeVoice
	volume [2]float64
}

// NewMixer creates a mixer with the given channel volumes.
func NewMixer(music, sfx float64) *Mixer {
	return &Mixer{volume: [2]float64{music, sfx}}
}

// Now returns the audio clock in seconds: the time of the next frame to render.
func (m *Mixer) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.frame) / SampleRate
}

// Schedule queues a voice. Voices starting in the past start immediately.
func (m *Mixer) Schedule(v Voice) {
	if v.Wave == nil || v.Duration <= 0 {
		return
	}
	if v.Gain == 0 {
		v.Gain = 1
	}
	from := int64(math.Round(v.Start * SampleRate))
	m.mu.Lock()
	defer m.mu.Unlock()
	if from < m.frame {
		from = m.frame
	}
	to := from + int64(math.Round(v.Duration*SampleRate))
	m.voices = append(m.voices, activeVoice{Voice: v, from: from, to: to})
}

// Cancel drops every pending and sounding voice on the channel.
func (m *Mixer) Cancel(ch Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.voices[:0]
	for _, v := range m.voices {
		if v.Channel != ch {
			kept = append(kept, v)
		}
	}
	m.voices = kept
}

// SetVolume sets a channel volume in [0,1].
func (m *Mixer) SetVolume(ch Channel, vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume[ch] = math.Max(0, math.Min(1, vol))
}

// Pending returns the number of queued or sounding voices on a channel.
func (m *Mixer) Pending(ch Channel) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.voices {
		if v.Channel == ch {
			n++
		}
	}
	return n
}

// Read renders the next frames. It never returns io.EOF; silence is a stream of zeros.
func (m *Mixer) Read(p []byte) (int, error) {
	n := len(p) / frameBytes
	if n == 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < n; i++ {
		f := m.frame + int64(i)
		s := 0.0
		for _, v := range m.voices {
			if f < v.from || f >= v.to {
				continue
			}
			t := float64(f-v.from) / SampleRate
			s += v.Wave(t, v.Duration) * v.Gain * m.volume[v.Channel]
		}
		putStereoF32(p, i, softSat(s))
	}
	m.frame += int64(n)

	kept := m.voices[:0]
	for _, v := range m.voices {
		if v.to > m.frame {
			kept = append(kept, v)
		}
	}
	m.voices = kept
	return n * frameBytes, nil
}
