package storage

import (
	"os"
	"path/filepath"
	"strings"
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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
	if store.Dialect() != DialectSQLite {
		t.Errorf("Dialect() = %q, want sqlite", store.Dialect())
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		dsn  string
		want Dialect
	}{
		{"postgres://beast@localhost/beast?sslmode=disable", DialectPostgres},
		{"postgresql://localhost/beast", DialectPostgres},
		{filepath.Join(t.TempDir(), "scores.db"), DialectSQLite},
	}
	for _, tt := range tests {
		got, source, err := resolve(tt.dsn)
		if err != nil {
			t.Fatalf("resolve(%q) failed: %v", tt.dsn, err)
		}
		if got != tt.want {
			t.Errorf("resolve(%q) dialect = %q, want %q", tt.dsn, got, tt.want)
		}
		if source != tt.dsn {
			t.Errorf("resolve(%q) source = %q", tt.dsn, source)
		}
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	lite := &Store{dialect: DialectSQLite}
	query := "SELECT * FROM scores WHERE game_id = ? AND score > ? LIMIT ?"

	if got, want := pg.rebind(query), "SELECT * FROM scores WHERE game_id = $1 AND score > $2 LIMIT $3"; got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
	if got := lite.rebind(query); got != query {
		t.Errorf("sqlite rebind changed the query: %q", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game  string
		name  string
		score int
		level int
	}{
		{"beast", "ann", 100, 3},
		{"beast", "bob", 50, 2},
		{"beast", "cid", 200, 5},
		{"beast_ranked", "dee", 500, 7},
	} {
		if _, err := store.SaveScore(s.game, s.name, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("beast", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []struct {
		name  string
		score int
		level int
	}{{"cid", 200, 5}, {"ann", 100, 3}, {"bob", 50, 2}}
	for i, w := range want {
		if scores[i].Name != w.name || scores[i].Score != w.score || scores[i].Level != w.level {
			t.Errorf("scores[%d] = %+v, want %+v", i, scores[i], w)
		}
	}

	ranked, err := store.TopScores("beast_ranked", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(ranked) != 1 {
		t.Errorf("Expected 1 ranked score, got %d", len(ranked))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 120 {
		store.SaveScore("beast", "p", (i+1)*10, 1)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 10},
		{500, MaxScores},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("beast", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d scores, want %d", tt.limit, len(scores), tt.want)
		}
		if scores[0].Score != 1200 {
			t.Errorf("TopScores(%d) first score = %d, want 1200", tt.limit, scores[0].Score)
		}
	}

	all, err := store.AllScores("beast")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 120 {
		t.Errorf("Expected 120 scores, got %d", len(all))
	}
}

func TestCleanName(t *testing.T) {
	long := strings.Repeat("ж", 60)
	tests := []struct {
		in, want string
	}{
		{"  ann  ", "ann"},
		{"", DefaultName},
		{"   ", DefaultName},
		{long, strings.Repeat("ж", MaxNameLen)},
	}
	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("beast")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("beast", "a", 100, 1)
	store.SaveScore("beast", "b", 300, 4)
	store.SaveScore("beast_ranked", "c", 50, 1)

	if high, _ = store.HighScore("beast"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("beast"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("beast", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("beast_ranked", 10); len(scores) != 1 {
		t.Errorf("Ranked scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("beast", "a", 10, 2)
	store.SaveScore("beast", "b", 30, 6)

	stats, err := store.GetGameStats("beast")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.BestLevel != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["beast"].GamesCount != 2 {
		t.Errorf("unexpected all-games stats: %v", all)
	}
}

func TestStoreReplays(t *testing.T) {
	store := openTestStore(t)

	entry := ReplayEntry{
		ID:       "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		GameID:   "beast_ranked",
		Name:     "ann",
		Score:    42,
		Verified: true,
		Data:     []byte(`{"version":"1"}`),
	}
	if err := store.SaveReplay(entry); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.SaveReplay(entry); err == nil {
		t.Error("SaveReplay() accepted a duplicate id")
	}
	if err := store.SaveReplay(ReplayEntry{GameID: "beast"}); err == nil {
		t.Error("SaveReplay() accepted an empty id")
	}

	got, err := store.Replay(entry.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got == nil || got.Score != 42 || !got.Verified || string(got.Data) != string(entry.Data) {
		t.Errorf("Replay() = %+v", got)
	}

	missing, err := store.Replay("missing")
	if err != nil || missing != nil {
		t.Errorf("Replay(missing) = %v, %v", missing, err)
	}

	recent, err := store.RecentReplays("beast_ranked", 0)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != entry.ID || recent[0].Data != nil {
		t.Errorf("RecentReplays() = %+v", recent)
	}
}
