// Package audio synthesizes coastrun's music and sound effects. Nothing is
// sampled: every sound is built from oscillators and noise, mixed into a
// float32 stereo stream and played through oto.
package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // Two float32 samples
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * frameBytes
	buf[o] = byte(v)
	buf[o+1] = byte(v >> 8)
	buf[o+2] = byte(v >> 16)
	buf[o+3] = byte(v >> 24)
	buf[o+4] = byte(v)
	buf[o+5] = byte(v >> 8)
	buf[o+6] = byte(v >> 16)
	buf[o+7] = byte(v >> 24)
}

// softSat is a gentle saturation curve that never clips hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]. attack, decay and
// release are fractions of the note length.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < 0 || progress >= 1:
		return 0
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances a noise seed and returns a sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func squareWave(phase float64) float64 {
	if math.Sin(phase) >= 0 {
		return 1
	}
	return -1
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

// noteFreq converts semitones relative to root into a frequency.
func noteFreq(root float64, semitones int) float64 {
	return root * math.Pow(2, float64(semitones)/12)
}

// Wave renders a voice: t is seconds since the voice started, dur its length.
type Wave func(t, dur float64) float64

// tone is a pulse or triangle oscillator with an envelope.
func tone(freq float64, square bool, a, d, s, r float64) Wave {
	return func(t, dur float64) float64 {
		env := adsr(t/dur, a, d, s, r)
		ph := 2 * math.Pi * freq * t
		if square {
			return squareWave(ph) * env * 0.5
		}
		return triWave(ph) * env
	}
}

// sweep glides from f0 to f1 over the voice length.
func sweep(f0, f1 float64, square bool) Wave {
	return func(t, dur float64) float64 {
		p := t / dur
		// Phase of a linear chirp.
		ph := 2 * math.Pi * (f0*t + (f1-f0)*t*t/(2*dur))
		env := adsr(p, 0.02, 0.3, 0.6, 0.3)
		if square {
			return squareWave(ph) * env * 0.5
		}
		return math.Sin(ph) * env
	}
}

// noise is a decaying noise burst with a one-pole lowpass.
func noise(seed uint64, decay, smooth float64) Wave {
	lp := 0.0
	return func(t, dur float64) float64 {
		lp = lp*smooth + lcg(&seed)*(1-smooth)
		return lp * math.Exp(-t*decay)
	}
}

// kick is a pitch-dropping sine thump.
func kick() Wave {
	return func(t, _ float64) float64 {
		phase := 2 * math.Pi * 160 / 14 * (1 - math.Exp(-t*14))
		return softSat(math.Sin(phase) * math.Exp(-t*18) * 0.9)
	}
}

// snare mixes a short body tone with noise.
func snare(seed uint64) Wave {
	return func(t, _ float64) float64 {
		env := math.Exp(-t * 26)
		body := math.Sin(2*math.Pi*190*t) * 0.25 * env
		return softSat(body + lcg(&seed)*0.5*env)
	}
}

// hihat is a very short bright noise tick.
func hihat(seed uint64) Wave {
	return func(t, _ float64) float64 {
		return lcg(&seed) * math.Exp(-t*45) * 0.25
	}
}
