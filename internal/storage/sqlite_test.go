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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	for _, run := range []struct {
		score   int
		outcome string
	}{
		{100, OutcomeLose},
		{50, OutcomeLose},
		{900, OutcomeWin},
	} {
		if _, err := store.SaveRun("world-1-1", run.score, run.outcome); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// A different level keeps its own board.
	if _, err := store.SaveRun("test-pit", 500, OutcomeWin); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("world-1-1", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 900 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted by score descending: %v", runs)
	}
	if runs[0].Outcome != OutcomeWin {
		t.Errorf("Best run outcome = %q, want win", runs[0].Outcome)
	}

	pitRuns, err := store.TopRuns("test-pit", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(pitRuns) != 1 {
		t.Errorf("Expected 1 test-pit run, got %d", len(pitRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("world-1-1", (i+1)*100, OutcomeLose)
	}

	runs, err := store.TopRuns("world-1-1", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("world-1-1")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for a fresh level, got %d", high)
	}

	store.SaveRun("world-1-1", 100, OutcomeLose)
	store.SaveRun("world-1-1", 300, OutcomeWin)
	store.SaveRun("world-1-1", 200, OutcomeLose)

	high, err = store.HighScore("world-1-1")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("world-1-1", 100, OutcomeLose)
	store.SaveRun("world-1-1", 200, OutcomeWin)
	store.SaveRun("test-pit", 300, OutcomeWin)

	if err := store.ClearRuns("world-1-1"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("world-1-1", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	pitRuns, _ := store.TopRuns("test-pit", 10)
	if len(pitRuns) != 1 {
		t.Error("Other levels should not be affected by the clear")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("world-1-1", 100, OutcomeLose)
	store.SaveRun("world-1-1", 400, OutcomeWin)
	store.SaveRun("world-1-1", 700, OutcomeWin)

	stats, err := store.GetLevelStats("world-1-1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.HighScore != 700 {
		t.Errorf("HighScore = %d, want 700", stats.HighScore)
	}
	if stats.AvgScore != 400 {
		t.Errorf("AvgScore = %v, want 400", stats.AvgScore)
	}
}

func TestStorePlayedLevels(t *testing.T) {
	store := openTestStore(t)

	ids, err := store.PlayedLevels()
	if err != nil {
		t.Fatalf("PlayedLevels() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no played levels, got %v", ids)
	}

	store.SaveRun("world-1-1", 100, OutcomeLose)
	store.SaveRun("test-pit", 200, OutcomeWin)

	ids, err = store.PlayedLevels()
	if err != nil {
		t.Fatalf("PlayedLevels() failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 played levels, got %v", ids)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
