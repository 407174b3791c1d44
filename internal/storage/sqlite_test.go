package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", path, err)
		}

		if _, err := store.SaveRound(Round{Mode: "invaders", Score: 12}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		high, err := store.HighScore("invaders")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != 12 {
			t.Errorf("Open(%q): high score = %d, expected 12", path, high)
		}
		store.Close()
	}

	// A fresh in-memory ledger starts empty.
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore("invaders"); high != 0 {
		t.Errorf("expected empty ledger, got high score %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	rounds := []Round{
		{Mode: "invaders", Player: "ann", Score: 20, Ticks: 900},
		{Mode: "invaders", Player: "bob", Score: 5, Ticks: 300},
		{Mode: "invaders", Player: "cy", Score: 50, Ticks: 2400},
		{Mode: "invaders_boss", Player: "ann", Score: 60, Ticks: 5100},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{50, 20, 5}
	for i, s := range scores {
		if s.Score != expected[i] {
			t.Errorf("score %d = %d, expected %d", i, s.Score, expected[i])
		}
	}
	if scores[0].Player != "cy" || scores[0].Ticks != 2400 || scores[0].Mode != "invaders" {
		t.Errorf("unexpected top round %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	bossScores, err := store.TopScores("invaders_boss", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bossScores) != 1 {
		t.Errorf("Expected 1 boss score, got %d", len(bossScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(Round{Mode: "test", Score: (i + 1) * 10})
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // falls back to the default of 10
	}

	for _, tc := range tests {
		scores, err := store.TopScores("test", tc.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != tc.expected {
			t.Errorf("limit %d: got %d scores, expected %d", tc.limit, len(scores), tc.expected)
		}
	}

	top, _ := store.TopScores("test", 3)
	if top[0].Score != 50 || top[1].Score != 40 || top[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	// No scores yet
	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveRound(Round{Mode: "invaders", Score: 10})
	store.SaveRound(Round{Mode: "invaders", Score: 30})
	store.SaveRound(Round{Mode: "invaders", Score: 20})

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveRound(Round{Mode: "invaders", Score: 10})
	store.SaveRound(Round{Mode: "invaders", Score: 20})
	store.SaveRound(Round{Mode: "invaders_boss", Score: 30})

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("invaders", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	bossScores, _ := store.TopScores("invaders_boss", 10)
	if len(bossScores) != 1 {
		t.Errorf("boss scores should not be affected by clearing invaders")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty mode: %+v", empty)
	}

	store.SaveRound(Round{Mode: "invaders", Score: 10, Ticks: 100})
	store.SaveRound(Round{Mode: "invaders", Score: 30, Ticks: 200})
	store.SaveRound(Round{Mode: "invaders_boss", Score: 60, Ticks: 700})

	stats, err := store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalTicks != 300 {
		t.Errorf("unexpected stats %+v", stats)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 modes, got %d", len(all))
	}
	if all["invaders_boss"].HighScore != 60 {
		t.Errorf("boss high score = %d, expected 60", all["invaders_boss"].HighScore)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
