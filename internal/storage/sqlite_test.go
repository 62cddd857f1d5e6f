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

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("empty path should be rejected")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game   string
		score  int
		frames uint64
	}{
		{"lanedodger", 12, 1200},
		{"lanedodger", 5, 600},
		{"lanedodger", 30, 3000},
		{"other", 99, 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.game, r.score, r.frames); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("lanedodger", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	want := []int{30, 12, 5}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("run %d score = %d, expected %d", i, top[i].Score, w)
		}
	}
	if top[0].Frames != 3000 {
		t.Errorf("frames = %d, expected 3000", top[0].Frames)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at should be filled in")
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun("lanedodger", 7, 1)
	store.SaveRun("lanedodger", 7, 2)
	for i := 0; i < 20; i++ {
		store.SaveRun("lanedodger", i%5, 0)
	}

	top, err := store.TopRuns("lanedodger", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(top))
	}
	if top[0].ID != first {
		t.Errorf("earlier run should win a tie, got id %d", top[0].ID)
	}

	// Non-positive limit falls back to 10
	top, _ = store.TopRuns("lanedodger", 0)
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("lanedodger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 with no runs, got %d", hs)
	}

	st, err := store.Stats("lanedodger")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	for _, s := range []int{4, 10, 1} {
		store.SaveRun("lanedodger", s, 0)
	}

	hs, _ = store.HighScore("lanedodger")
	if hs != 10 {
		t.Errorf("Expected high score 10, got %d", hs)
	}

	st, _ = store.Stats("lanedodger")
	if st.Runs != 3 || st.Best != 10 || st.Average != 5 {
		t.Errorf("Stats = %+v, expected 3 runs, best 10, average 5", st)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("lanedodger", 3, 0)
	store.SaveRun("other", 4, 0)

	if err := store.ClearRuns("lanedodger"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("lanedodger", 10)
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Error("Clearing one game should not touch another")
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database should be created under HOME: %v", err)
	}
}
