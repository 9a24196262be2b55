package coastrun

import "github.com/vovakirdan/coastrun/internal/audio"

// Sound is the audio subsystem as seen by the scenes. *audio.Engine
// implements it, including as a nil pointer.
type Sound interface {
	PlayTrack(name string)
	StopMusic()
	PlaySound(s audio.SFX)
}

type silent struct{}

func (silent) PlayTrack(string)      {}
func (silent) StopMusic()            {}
func (silent) PlaySound(s audio.SFX) {}
