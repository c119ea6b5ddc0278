package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

func entry(name string, score uint64) pin.HighScore {
	var h pin.HighScore
	copy(h.Name[:], name)
	h.Score = bcd.FromUint64(score)
	return h
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

func TestHighScoresRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	want := [pin.HighScoreCount]pin.HighScore{
		entry("TOR", 2500000),
		entry("AH", 1500000),
		entry("IVS", 1400000),
		entry("ORB", 1000000),
	}
	if err := store.SaveHighScores("party", want); err != nil {
		t.Fatalf("SaveHighScores() failed: %v", err)
	}

	got, err := store.HighScores("party")
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	for i := range want {
		if got[i].NameString() != want[i].NameString() {
			t.Errorf("rank %d: name %q, want %q", i, got[i].NameString(), want[i].NameString())
		}
		if got[i].Score.Cmp(want[i].Score) != 0 {
			t.Errorf("rank %d: score %s, want %s", i, got[i].Score, want[i].Score)
		}
	}
}

func TestHighScoresEmptyTable(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.HighScores("speed")
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	for i := range got {
		if !got[i].Score.IsZero() {
			t.Errorf("rank %d of a fresh database should be zero, got %s", i, got[i].Score)
		}
	}
}

func TestSaveHighScoresReplacesOld(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first := [pin.HighScoreCount]pin.HighScore{
		entry("AAA", 400), entry("BBB", 300), entry("CCC", 200), entry("DDD", 100),
	}
	second := [pin.HighScoreCount]pin.HighScore{
		entry("NEW", 900), entry("AAA", 400), entry("BBB", 300), entry("CCC", 200),
	}
	if err := store.SaveHighScores("show", first); err != nil {
		t.Fatalf("SaveHighScores() failed: %v", err)
	}
	if err := store.SaveHighScores("show", second); err != nil {
		t.Fatalf("SaveHighScores() failed: %v", err)
	}

	got, err := store.HighScores("show")
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if got[0].NameString() != "NEW" {
		t.Errorf("save should replace the stored table, top is %q", got[0].NameString())
	}
}

func TestHighScoresPerTableIsolation(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	party := [pin.HighScoreCount]pin.HighScore{entry("PAR", 500)}
	stones := [pin.HighScoreCount]pin.HighScore{entry("STO", 700)}
	store.SaveHighScores("party", party)
	store.SaveHighScores("stones", stones)

	got, _ := store.HighScores("party")
	if got[0].NameString() != "PAR" {
		t.Errorf("party table should keep its own scores, got %q", got[0].NameString())
	}
	if err := store.ClearHighScores("party"); err != nil {
		t.Fatalf("ClearHighScores() failed: %v", err)
	}
	got, _ = store.HighScores("stones")
	if got[0].NameString() != "STO" {
		t.Error("clearing one table must not touch another")
	}
}

func TestGameHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveGame("party", 1, bcd.FromUint64(uint64(i)*1000)); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	records, err := store.RecentGames("party", 3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 records with limit, got %d", len(records))
	}
}

func TestStoreExpandNestedPath(t *testing.T) {
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
