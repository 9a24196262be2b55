package audio

import "math"

// SFX identifies a one-shot sound effect.
type SFX int

const (
	SFXJump SFX = iota
	SFXCollect
	SFXHeart
	SFXPowerUp
	SFXTrip
	SFXPothole
	SFXShoot
	SFXHit
	SFXKick
	SFXBark
	SFXFlag
	SFXSelect
)

// String returns the effect name.
func (s SFX) String() string {
	switch s {
	case SFXJump:
		return "jump"
	case SFXCollect:
		return "collect"
	case SFXHeart:
		return "heart"
	case SFXPowerUp:
		return "powerup"
	case SFXTrip:
		return "trip"
	case SFXPothole:
		return "pothole"
	case SFXShoot:
		return "shoot"
	case SFXHit:
		return "hit"
	case SFXKick:
		return "kick"
	case SFXBark:
		return "bark"
	case SFXFlag:
		return "flag"
	case SFXSelect:
		return "select"
	default:
		return "unknown"
	}
}

// effect builds the voices of a sound effect. Start times are relative to
// the moment the effect is triggered.
func effect(s SFX) []Voice {
	v := func(start, dur, gain float64, w Wave) Voice {
		return Voice{Start: start, Duration: dur, Gain: gain, Channel: ChannelSFX, Wave: w}
	}
	switch s {
	case SFXJump:
		return []Voice{v(0, 0.14, 0.5, sweep(300, 720, true))}
	case SFXCollect:
		return []Voice{
			v(0, 0.06, 0.4, tone(988, true, 0.01, 0.2, 0.7, 0.2)),
			v(0.06, 0.12, 0.4, tone(1319, true, 0.01, 0.2, 0.7, 0.4)),
		}
	case SFXHeart:
		return []Voice{
			v(0, 0.08, 0.45, tone(523, false, 0.05, 0.2, 0.8, 0.2)),
			v(0.08, 0.08, 0.45, tone(659, false, 0.05, 0.2, 0.8, 0.2)),
			v(0.16, 0.16, 0.45, tone(784, false, 0.05, 0.2, 0.8, 0.4)),
		}
	case SFXPowerUp:
		return []Voice{v(0, 0.35, 0.4, sweep(220, 880, true))}
	case SFXTrip:
		return []Voice{
			v(0, 0.25, 0.5, sweep(400, 110, true)),
			v(0, 0.12, 0.35, noise(7, 30, 0.6)),
		}
	case SFXPothole:
		return []Voice{
			v(0, 0.45, 0.55, sweep(700, 90, false)),
			v(0.3, 0.15, 0.4, noise(21, 25, 0.85)),
		}
	case SFXShoot:
		return []Voice{v(0, 0.08, 0.35, sweep(1400, 500, true))}
	case SFXHit:
		return []Voice{v(0, 0.15, 0.55, noise(99, 22, 0.3))}
	case SFXKick:
		return []Voice{v(0, 0.12, 0.6, kick())}
	case SFXBark:
		bark := func(t, dur float64) float64 {
			f := 520 - 260*t/dur
			return softSat(math.Sin(2*math.Pi*f*t)*2.5) * adsr(t/dur, 0.05, 0.4, 0.3, 0.3) * 0.6
		}
		return []Voice{v(0, 0.09, 0.5, bark), v(0.14, 0.09, 0.5, bark)}
	case SFXFlag:
		return []Voice{
			v(0, 0.1, 0.4, tone(784, true, 0.01, 0.2, 0.7, 0.2)),
			v(0.1, 0.1, 0.4, tone(988, true, 0.01, 0.2, 0.7, 0.2)),
			v(0.2, 0.25, 0.4, tone(1175, true, 0.01, 0.2, 0.7, 0.5)),
		}
	case SFXSelect:
		return []Voice{v(0, 0.05, 0.35, tone(660, true, 0.01, 0.3, 0.5, 0.3))}
	default:
		return nil
	}
}
