package coastrun

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coastrun/internal/storage"
)

// Leaderboard is the persisted high-score table.
type Leaderboard interface {
	Scores() ([]storage.Entry, error)
	AddScore(initials string, level int, meters float64) error
	IsHighScore(level int, meters float64) (bool, error)
}

// SafeBoard wraps a leaderboard whose backing store may fail. Every score is
// mirrored in memory; when the store errors the failure is logged and the
// mirror answers instead, so a run never stops on a storage problem.
type SafeBoard struct {
	store  Leaderboard
	mirror *storage.Memory
	logger *log.Logger
}

// NewSafeBoard wraps store. A nil store keeps scores in memory only.
func NewSafeBoard(store Leaderboard, logger *log.Logger) *SafeBoard {
	if logger == nil {
		logger = log.Default()
	}
	b := &SafeBoard{store: store, mirror: storage.NewMemory(), logger: logger}
	if store != nil {
		entries, err := store.Scores()
		if err != nil {
			logger.Warn("leaderboard unavailable, keeping scores in memory", "err", err)
		}
		b.mirror = storage.NewMemory(entries...)
	}
	return b
}

// Scores returns the leaderboard, best first.
func (b *SafeBoard) Scores() []storage.Entry {
	if b.store != nil {
		entries, err := b.store.Scores()
		if err == nil {
			return entries
		}
		b.logger.Warn("read scores", "err", err)
	}
	entries, _ := b.mirror.Scores()
	return entries
}

// AddScore records a run.
func (b *SafeBoard) AddScore(initials string, level int, meters float64) {
	b.mirror.AddScore(initials, level, meters) //nolint:errcheck // Memory never fails
	if b.store == nil {
		return
	}
	if err := b.store.AddScore(initials, level, meters); err != nil {
		b.logger.Warn("save score", "err", err)
	}
}

// IsHighScore reports whether a run would enter the leaderboard.
func (b *SafeBoard) IsHighScore(level int, meters float64) bool {
	if b.store != nil {
		ok, err := b.store.IsHighScore(level, meters)
		if err == nil {
			return ok
		}
		b.logger.Warn("check high score", "err", err)
	}
	ok, _ := b.mirror.IsHighScore(level, meters)
	return ok
}
