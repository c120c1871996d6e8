package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/beasts"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

func matrix(tiles map[board.Coord]board.Tile) [][]board.Tile {
	b := board.New()
	b.Set(board.PlayerStart, board.Player)
	for c, t := range tiles {
		b.Set(c, t)
	}
	return b.Matrix()
}

// squishLevel is a level whose only beast sits between the player's block
// and a static block: one push up clears it.
func squishLevel() (config.LevelSet, LevelLog) {
	set := config.LevelSet{Lives: 3, Levels: []config.LevelConfig{{
		Blocks: 1, StaticBlocks: 1, CommonBeasts: 1, BeastStartingDistance: 1, TimeSecs: 100, CompletionScore: 5,
	}}}
	log := LevelLog{Level: 1, Board: matrix(map[board.Coord]board.Tile{
		board.C(0, 28): board.Block,
		board.C(0, 27): board.CommonBeast,
		board.C(0, 26): board.StaticBlock,
	})}
	return set, log
}

func TestRecordRoundTrip(t *testing.T) {
	_, log := squishLevel()
	log.Append(PlayerMove(board.Up))
	log.Append(CommonMove(board.C(0, 27), board.C(1, 27)))
	log.Append(HatchedMove(0, board.C(2, 2)))

	rec := NewRecord("beast_ranked", 42, true, 7, []LevelLog{log})
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Seed, got.Seed)
	assert.True(t, got.Deterministic)
	assert.Equal(t, rec.Levels, got.Levels)
	assert.Equal(t, board.Up, got.Levels[0].Entries[0].Dir)
}

func TestDecodeRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"wrong version", `{"version":"0","id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`},
		{"bad id", `{"version":"1","id":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEntryJSONUsesNames(t *testing.T) {
	rec := NewRecord("beast", 1, false, 0, []LevelLog{{Level: 1, Entries: []LogEntry{PlayerMove(board.Left)}}})
	data, err := rec.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "player_moved"`)
	assert.Contains(t, string(data), `"dir": "left"`)
}

func TestVerifySquish(t *testing.T) {
	set, log := squishLevel()
	log.Append(PlayerMove(board.Up))

	res, err := Verify(set, []LevelLog{log})
	require.NoError(t, err)
	require.NotNil(t, res.Board)
	assert.Equal(t, board.Block, res.Board.Get(board.C(0, 27)))
	assert.Equal(t, board.Player, res.Board.Get(board.C(0, 28)))

	res.Board = nil
	assert.Equal(t, Result{Score: 2, LevelsCleared: 1, Completed: true, Lives: 3, BeastsKilled: 1, MaxTimeBonus: 10}, res)
}

func TestVerifyCompletionScoreOnNextLevel(t *testing.T) {
	set, first := squishLevel()
	_, second := squishLevel()
	set.Levels = append(set.Levels, set.Levels[0])
	set.Levels[1].CompletionScore = 7
	first.Append(PlayerMove(board.Up))
	second.Level = 2
	second.Append(PlayerMove(board.Up))

	res, err := Verify(set, []LevelLog{first, second})
	require.NoError(t, err)
	assert.Equal(t, 2+7+2, res.Score)
	assert.Equal(t, 2, res.LevelsCleared)
	assert.True(t, res.Completed)
	assert.Equal(t, 20, res.MaxTimeBonus)
}

func TestVerifyUnfinishedLastLevel(t *testing.T) {
	set, log := squishLevel()
	log.Append(CommonMove(board.C(0, 27), board.C(1, 27)))
	log.Append(PlayerMove(board.Up))

	res, err := Verify(set, []LevelLog{log})
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Zero(t, res.LevelsCleared)
	assert.Zero(t, res.Score)
}

func TestVerifyRequiresClearedLevels(t *testing.T) {
	set, log := squishLevel()
	set.Levels = append(set.Levels, set.Levels[0])
	next := log
	next.Level = 2

	_, err := Verify(set, []LevelLog{log, next})
	assert.ErrorIs(t, err, ErrNotCleared)
}

func TestVerifyBoardMismatch(t *testing.T) {
	set, log := squishLevel()
	set.Levels[0].Blocks = 2

	_, err := Verify(set, []LevelLog{log})
	assert.ErrorIs(t, err, ErrBoardMismatch)

	set, log = squishLevel()
	log.Board = log.Board[:3]
	_, err = Verify(set, []LevelLog{log})
	assert.ErrorIs(t, err, ErrBoardMismatch)
}

func TestVerifyInvalidMovement(t *testing.T) {
	set, log := squishLevel()
	log.Append(CommonMove(board.C(0, 27), board.C(3, 27)))

	_, err := Verify(set, []LevelLog{log})
	require.ErrorIs(t, err, beasts.ErrInvalidMovement)
	assert.Contains(t, err.Error(), "replay: level 1 entry 0")
}

func TestVerifyUnknownEntity(t *testing.T) {
	set, log := squishLevel()
	log.Append(SuperMove(board.C(9, 9), board.C(9, 10)))
	_, err := Verify(set, []LevelLog{log})
	assert.ErrorIs(t, err, ErrUnknownEntity)

	set, log = squishLevel()
	log.Append(HatchedMove(0, board.C(9, 10)))
	_, err = Verify(set, []LevelLog{log})
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestVerifyBeastKillsPlayer(t *testing.T) {
	set := config.LevelSet{Lives: 3, Levels: []config.LevelConfig{{CommonBeasts: 1, BeastStartingDistance: 1, TimeSecs: 100}}}
	log := LevelLog{Level: 1, Board: matrix(map[board.Coord]board.Tile{
		board.C(1, 28): board.CommonBeast,
	})}
	log.Append(CommonMove(board.C(1, 28), board.PlayerStart))
	log.Append(PlayerMove(board.Right))

	res, err := Verify(set, []LevelLog{log})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lives)
	assert.False(t, res.Completed)
}

func TestVerifyHatchedEgg(t *testing.T) {
	set := config.LevelSet{Lives: 3, Levels: []config.LevelConfig{{Eggs: 1, EggHatchingMs: 1000, BeastStartingDistance: 1, TimeSecs: 100}}}
	log := LevelLog{Level: 1, Board: matrix(map[board.Coord]board.Tile{
		board.C(3, 3): board.Egg,
	})}
	log.Append(HatchStart(board.C(3, 3)))

	res, err := Verify(set, []LevelLog{log})
	require.NoError(t, err)
	assert.Equal(t, board.EggHatching, res.Board.Get(board.C(3, 3)))

	log.Append(EggHatch(board.C(3, 3)))
	log.Append(HatchedMove(0, board.C(3, 4)))

	res, err = Verify(set, []LevelLog{log})
	require.NoError(t, err)
	assert.Equal(t, board.HatchedBeast, res.Board.Get(board.C(3, 4)))

	log.Append(EggHatch(board.C(3, 3)))
	_, err = Verify(set, []LevelLog{log})
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestRecordVerify(t *testing.T) {
	set, log := squishLevel()
	log.Append(PlayerMove(board.Up))

	rec := NewRecord("beast_ranked", 1, true, 2+9, []LevelLog{log})
	_, err := rec.Verify(set)
	require.NoError(t, err)

	rec.Score = 100
	_, err = rec.Verify(set)
	assert.ErrorIs(t, err, ErrScoreMismatch)

	rec.Deterministic = false
	_, err = rec.Verify(set)
	assert.ErrorIs(t, err, ErrNotRanked)
}
