package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/coastrun/internal/storage"
)

type fixedScores struct {
	entries []storage.Entry
	err     error
}

func (f fixedScores) Scores() ([]storage.Entry, error) { return f.entries, f.err }

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.Entry{
		{Initials: "ANA", Level: 4, Meters: 1234.6, CreatedAt: when},
		{Initials: "BOB", Level: 2, Meters: 80, CreatedAt: when},
	})
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	want := []string{"#1", "ANA", "4", "1234m", "Mar 04 15:30"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 col %d = %q, want %q", i, cell, want[i])
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(fixedScores{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board message missing")
	}

	m = NewScoreboardModel(fixedScores{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("error not shown")
	}
}

func TestScoreboardBackQuits(t *testing.T) {
	m := NewScoreboardModel(fixedScores{}, 80, 24)
	next, cmd := m.Update(runeKey('b'))
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("back should close the scoreboard")
	}
}
