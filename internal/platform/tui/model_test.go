package tui

import (
	"path/filepath"
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordGameHistoryLogsEveryPlayer(t *testing.T) {
	store := testStore(t)

	recordGameHistory(store, "party", []bcd.Score{
		bcd.FromUint64(125000),
		bcd.FromUint64(43000),
	})

	games, err := store.RecentGames("party", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("both players should be logged, got %d records", len(games))
	}
	scores := map[int]string{}
	for _, g := range games {
		scores[g.Player] = g.Score.String()
	}
	if scores[1] != "125000" || scores[2] != "43000" {
		t.Errorf("logged scores mismatch: %v", scores)
	}
}

func TestRecordGameHistorySkipsZeroScores(t *testing.T) {
	store := testStore(t)

	recordGameHistory(store, "party", []bcd.Score{
		bcd.FromUint64(9000),
		{}, // player 2 never scored
	})

	games, err := store.RecentGames("party", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("a pointless game should not be logged, got %d records", len(games))
	}
	if games[0].Player != 1 {
		t.Errorf("player 1's game should be the one kept, got P%d", games[0].Player)
	}
}

func TestRecordGameHistoryToleratesNilStore(t *testing.T) {
	// The host runs without storage when the database cannot be opened.
	recordGameHistory(nil, "party", []bcd.Score{bcd.FromUint64(1000)})
}
