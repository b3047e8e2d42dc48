package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []struct{ score, stage int }{
		{100, 1}, {50, 1}, {200, 2},
	} {
		if _, err := store.SaveScore("campaign", sc.score, sc.stage); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("classic", 500, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("campaign", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Stage != 2 {
		t.Errorf("Stage = %d, want 2", scores[0].Stage)
	}

	classicScores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classicScores) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classicScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100, 1)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, want 0", high)
	}

	store.SaveScore("classic", 150, 1)
	store.SaveScore("classic", 320, 1)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 320 {
		t.Errorf("HighScore() = %d, want 320", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("campaign")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.Best != 0 {
		t.Errorf("Stats() on empty table = %+v, want zero", stats)
	}

	store.SaveScore("campaign", 100, 1)
	store.SaveScore("campaign", 300, 3)

	stats, err = store.Stats("campaign")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Plays != 2 {
		t.Errorf("Plays = %d, want 2", stats.Plays)
	}
	if stats.Best != 300 {
		t.Errorf("Best = %d, want 300", stats.Best)
	}
	if stats.BestStage != 3 {
		t.Errorf("BestStage = %d, want 3", stats.BestStage)
	}
	if stats.Average != 200 {
		t.Errorf("Average = %v, want 200", stats.Average)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 1)
	store.SaveScore("campaign", 200, 2)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("classic scores not cleared: %v", scores)
	}
	kept, _ := store.TopScores("campaign", 10)
	if len(kept) != 1 {
		t.Errorf("campaign scores should survive clearing classic: %v", kept)
	}
}
