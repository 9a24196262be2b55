package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func sampleAt(buf []byte, frame int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[frame*frameBytes:]))
}

func constant(v float64) Wave {
	return func(_, _ float64) float64 { return v }
}

func TestMixerRendersScheduledVoice(t *testing.T) {
	m := NewMixer(1, 1)
	m.Schedule(Voice{Start: 0.001, Duration: 0.001, Gain: 1, Channel: ChannelSFX, Wave: constant(0.5)})

	buf := make([]byte, 200*frameBytes)
	n, err := m.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	start := int(math.Round(0.001 * SampleRate))
	end := start + int(math.Round(0.001*SampleRate))
	if s := sampleAt(buf, start-1); s != 0 {
		t.Errorf("sample before voice = %v, want silence", s)
	}
	if s := sampleAt(buf, start); s == 0 {
		t.Error("voice should sound at its start frame")
	}
	if s := sampleAt(buf, end); s != 0 {
		t.Errorf("sample after voice = %v, want silence", s)
	}
	if m.Pending(ChannelSFX) != 0 {
		t.Error("finished voice should be pruned")
	}
	if got := m.Now(); math.Abs(got-200.0/SampleRate) > 1e-12 {
		t.Errorf("Now = %v after 200 frames", got)
	}
}

func TestMixerCancel(t *testing.T) {
	m := NewMixer(1, 1)
	m.Schedule(Voice{Start: 0, Duration: 1, Channel: ChannelMusic, Wave: constant(0.3)})
	m.Schedule(Voice{Start: 0.5, Duration: 1, Channel: ChannelMusic, Wave: constant(0.3)})
	m.Schedule(Voice{Start: 0, Duration: 1, Channel: ChannelSFX, Wave: constant(0.3)})
	m.Cancel(ChannelMusic)
	if m.Pending(ChannelMusic) != 0 || m.Pending(ChannelSFX) != 1 {
		t.Fatalf("pending music=%d sfx=%d", m.Pending(ChannelMusic), m.Pending(ChannelSFX))
	}
	m.Cancel(ChannelSFX)
	buf := make([]byte, 64*frameBytes)
	m.Read(buf) //nolint:errcheck // Never fails
	for i := 0; i < 64; i++ {
		if sampleAt(buf, i) != 0 {
			t.Fatal("cancelled voices must not sound")
		}
	}
}

func TestMixerLateVoiceStartsNow(t *testing.T) {
	m := NewMixer(1, 1)
	buf := make([]byte, 100*frameBytes)
	m.Read(buf) //nolint:errcheck // Never fails
	m.Schedule(Voice{Start: 0, Duration: 0.01, Channel: ChannelSFX, Wave: constant(0.5)})
	m.Read(buf) //nolint:errcheck // Never fails
	if sampleAt(buf, 0) == 0 {
		t.Error("voice scheduled in the past should start immediately")
	}
}

func TestMixerVolume(t *testing.T) {
	m := NewMixer(1, 1)
	m.SetVolume(ChannelSFX, 0)
	m.Schedule(Voice{Start: 0, Duration: 0.01, Channel: ChannelSFX, Wave: constant(0.5)})
	buf := make([]byte, 10*frameBytes)
	m.Read(buf) //nolint:errcheck // Never fails
	if sampleAt(buf, 0) != 0 {
		t.Error("muted channel should be silent")
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v out of range", x, y)
		}
	}
}

func TestADSR(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.5, 0.5},
		{1, 0},
		{-0.1, 0},
	}
	for _, tt := range tests {
		if got := adsr(tt.p, 0.1, 0.2, 0.5, 0.2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("adsr(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
