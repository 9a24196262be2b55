package storage

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Capacity is the number of leaderboard slots.
const Capacity = 10

// InitialsLen is the number of letters in a name.
const InitialsLen = 3

// Entry is one leaderboard record.
type Entry struct {
	ID        int64
	Initials  string
	Level     int
	Meters    float64
	CreatedAt time.Time
}

// Better reports whether a run outranks e: higher level first, then distance.
func (e Entry) Better(level int, meters float64) bool {
	if level != e.Level {
		return level > e.Level
	}
	return meters > e.Meters
}

// Qualifies reports whether a run would enter a sorted leaderboard.
func Qualifies(entries []Entry, level int, meters float64) bool {
	if meters <= 0 && level <= 1 {
		return false
	}
	if len(entries) < Capacity {
		return true
	}
	return entries[len(entries)-1].Better(level, meters)
}

// NormalizeInitials upper-cases and pads or trims a name to InitialsLen letters.
func NormalizeInitials(s string) string {
	r := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(r) > InitialsLen {
		r = r[:InitialsLen]
	}
	for len(r) < InitialsLen {
		r = append(r, 'A')
	}
	return string(r)
}

// Memory is an in-process leaderboard with the same ranking as Store.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	nextID  int64
}

// NewMemory creates a leaderboard pre-filled with entries.
func NewMemory(entries ...Entry) *Memory {
	m := &Memory{}
	for _, e := range entries {
		m.insert(e)
	}
	return m
}

func (m *Memory) insert(e Entry) {
	m.nextID++
	if e.ID == 0 {
		e.ID = m.nextID
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Initials = NormalizeInitials(e.Initials)
	m.entries = append(m.entries, e)
	sort.SliceStable(m.entries, func(i, j int) bool {
		a, b := m.entries[i], m.entries[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.Meters > b.Meters
	})
	if len(m.entries) > Capacity {
		m.entries = m.entries[:Capacity]
	}
}

// AddScore records a run.
func (m *Memory) AddScore(initials string, level int, meters float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insert(Entry{Initials: initials, Level: level, Meters: meters})
	return nil
}

// Scores returns a copy of the leaderboard, best first.
func (m *Memory) Scores() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

// IsHighScore reports whether a run would enter the leaderboard.
func (m *Memory) IsHighScore(level int, meters float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Qualifies(m.entries, level, meters), nil
}
