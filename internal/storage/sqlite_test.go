package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRanking(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		initials string
		level    int
		meters   float64
	}{
		{"ana", 1, 250},
		{"BOB", 3, 120},
		{"cat", 3, 410},
		{"DAN", 2, 900},
	}
	for _, r := range runs {
		if err := store.AddScore(r.initials, r.level, r.meters); err != nil {
			t.Fatalf("AddScore() failed: %v", err)
		}
	}

	scores, err := store.Scores()
	if err != nil {
		t.Fatalf("Scores() failed: %v", err)
	}
	want := []string{"CAT", "BOB", "DAN", "ANA"}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Initials != w {
			t.Errorf("rank %d = %s, want %s", i+1, scores[i].Initials, w)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestStoreCapacity(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= Capacity+5; i++ {
		if err := store.AddScore("AAA", 1, float64(i*10)); err != nil {
			t.Fatalf("AddScore() failed: %v", err)
		}
	}
	scores, err := store.Scores()
	if err != nil {
		t.Fatalf("Scores() failed: %v", err)
	}
	if len(scores) != Capacity {
		t.Fatalf("Expected %d scores, got %d", Capacity, len(scores))
	}
	if scores[0].Meters != 150 || scores[Capacity-1].Meters != 60 {
		t.Errorf("kept range %v..%v, want 150..60", scores[0].Meters, scores[Capacity-1].Meters)
	}

	ok, err := store.IsHighScore(1, 55)
	if err != nil || ok {
		t.Errorf("IsHighScore(1, 55) = %v, %v; want false", ok, err)
	}
	ok, err = store.IsHighScore(1, 65)
	if err != nil || !ok {
		t.Errorf("IsHighScore(1, 65) = %v, %v; want true", ok, err)
	}
	ok, err = store.IsHighScore(2, 1)
	if err != nil || !ok {
		t.Errorf("higher level should qualify regardless of distance")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	store.AddScore("ZED", 1, 10) //nolint:errcheck // Checked via Scores
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	scores, _ := store.Scores()
	if len(scores) != 0 {
		t.Errorf("Expected empty board, got %d", len(scores))
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.AddScore("KEV", 4, 321); err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	scores, _ := store.Scores()
	if len(scores) != 1 || scores[0].Initials != "KEV" || scores[0].Level != 4 {
		t.Errorf("unexpected scores after reopen: %+v", scores)
	}
}
