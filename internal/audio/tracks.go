package audio

import (
	"fmt"
	"sort"
)

// Rest marks a silent step in a melodic part.
const Rest = -100

const rest = Rest

// Track is a fixed-length step sequence. Every step lasts one eighth note.
// Lead and bass hold semitone offsets from Root; drums hold one rune per
// step: 'k' kick, 's' snare, 'h' hi-hat, '.' silence.
type Track struct {
	Name  string
	BPM   float64
	Loop  bool
	Root  float64
	Lead  []int
	Bass  []int
	Drums string
}

// Steps returns the sequence length.
func (t Track) Steps() int { return len(t.Lead) }

// Eighth returns the duration of one step in seconds.
func (t Track) Eighth() float64 { return 60 / t.BPM / 2 }

// Duration returns the length of one pass through the sequence.
func (t Track) Duration() float64 { return float64(t.Steps()) * t.Eighth() }

// Validate checks that all parts have the same length.
func (t Track) Validate() error {
	if t.BPM <= 0 {
		return fmt.Errorf("audio: track %q: bpm must be positive", t.Name)
	}
	if len(t.Lead) == 0 {
		return fmt.Errorf("audio: track %q: empty", t.Name)
	}
	if len(t.Bass) != len(t.Lead) || len([]rune(t.Drums)) != len(t.Lead) {
		return fmt.Errorf("audio: track %q: parts differ in length (lead %d, bass %d, drums %d)",
			t.Name, len(t.Lead), len(t.Bass), len([]rune(t.Drums)))
	}
	return nil
}

var tracks = map[string]Track{
	"title": {
		Name: "title", BPM: 104, Loop: true, Root: 261.63,
		Lead: []int{
			0, 4, 7, 12, 11, 7, 4, 7,
			9, 5, 9, 12, 7, rest, rest, rest,
		},
		Bass: []int{
			0, rest, 0, rest, 7, rest, 7, rest,
			5, rest, 5, rest, 7, rest, 7, rest,
		},
		Drums: "k.h.s.h.k.h.s.hh",
	},
	"coast": {
		Name: "coast", BPM: 132, Loop: true, Root: 261.63,
		Lead: []int{
			7, 9, 12, 9, 7, 4, 2, 4,
			7, rest, 7, 9, 12, rest, rest, rest,
			5, 7, 9, 5, 4, 5, 7, 4,
			2, 4, 5, 2, 0, rest, rest, rest,
		},
		Bass: []int{
			0, rest, 12, rest, 0, rest, 12, rest,
			-3, rest, 9, rest, -3, rest, 9, rest,
			-7, rest, 5, rest, -8, rest, 4, rest,
			-5, rest, 7, rest, 0, rest, rest, rest,
		},
		Drums: "k.h.s.h.k.h.s.h.k.h.s.h.k.h.s.hs",
	},
	"boardwalk": {
		Name: "boardwalk", BPM: 148, Loop: true, Root: 220,
		Lead: []int{
			0, 3, 7, 10, 12, 10, 7, 3,
			5, 8, 12, 8, 7, rest, 7, rest,
			0, 3, 7, 10, 12, 15, 12, 10,
			8, 7, 5, 3, 2, rest, 0, rest,
		},
		Bass: []int{
			0, 0, rest, 0, 0, rest, 0, rest,
			-4, -4, rest, -4, -5, rest, -5, rest,
			0, 0, rest, 0, 0, rest, 0, rest,
			-4, rest, -2, rest, -5, rest, -5, rest,
		},
		Drums: "k.hsk.hsk.hsk.hsk.hsk.hsk.hskshs",
	},
	"victory": {
		Name: "victory", BPM: 160, Root: 261.63,
		Lead: []int{
			0, 4, 7, 12, rest, 7, 12, rest,
			16, rest, rest, rest, rest, rest, rest, rest,
		},
		Bass: []int{
			0, rest, rest, rest, 7, rest, rest, rest,
			12, rest, rest, rest, rest, rest, rest, rest,
		},
		Drums: "k...k...k.s.k...",
	},
	"gameover": {
		Name: "gameover", BPM: 84, Root: 261.63,
		Lead: []int{
			7, 6, 5, 4, 3, rest, 2, rest,
			0, rest, rest, rest,
		},
		Bass: []int{
			-5, rest, rest, rest, -7, rest, rest, rest,
			-12, rest, rest, rest,
		},
		Drums: "k.......k...",
	},
}

// LookupTrack returns a track by name.
func LookupTrack(name string) (Track, bool) {
	t, ok := tracks[name]
	return t, ok
}

// TrackNames returns all track names, sorted.
func TrackNames() []string {
	names := make([]string, 0, len(tracks))
	for n := range tracks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
