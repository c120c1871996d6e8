package beasts

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

func ring(b *board.Board, center board.Coord, tile board.Tile) {
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			b.Set(board.C(center.Column+dc, center.Row+dr), tile)
		}
	}
}

func TestCommonBeastKillsAdjacentPlayer(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.CommonBeast)
	b.Set(board.C(5, 6), board.Player)

	cb := NewCommonBeast(board.C(5, 5), rand.New(rand.NewSource(3)))
	assert.Equal(t, PlayerKilled, cb.Advance(b, board.C(5, 6)))
	assert.Equal(t, board.C(5, 6), cb.Position())
	assert.Equal(t, board.CommonBeast, b.Get(board.C(5, 6)))
	assert.Equal(t, board.Empty, b.Get(board.C(5, 5)))
}

func TestCommonBeastMovesTowardPlayer(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.CommonBeast)
	b.Set(board.C(5, 20), board.Player)

	cb := NewCommonBeast(board.C(5, 5), nil)
	assert.Equal(t, Moved, cb.Advance(b, board.C(5, 20)))
	assert.Equal(t, board.C(5, 6), cb.Position(), "straight-toward step is never shuffled")
	assert.Equal(t, 1, b.Count(board.CommonBeast))
}

func TestCommonBeastStaysWhenBoxedIn(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.CommonBeast)
	ring(b, board.C(5, 5), board.Block)

	cb := NewCommonBeast(board.C(5, 5), nil)
	assert.Equal(t, Stayed, cb.Advance(b, board.C(20, 20)))
	assert.Equal(t, board.C(5, 5), cb.Position())
}

func TestCommonBeastSameSeedSameMoves(t *testing.T) {
	run := func() []board.Coord {
		b := board.New()
		b.Set(board.C(10, 10), board.CommonBeast)
		b.Set(board.C(10, 11), board.Block)
		b.Set(board.C(30, 25), board.Player)
		cb := NewCommonBeast(board.C(10, 10), rand.New(rand.NewSource(99)))

		var trail []board.Coord
		for i := 0; i < 15; i++ {
			cb.Advance(b, board.C(30, 25))
			trail = append(trail, cb.Position())
		}
		return trail
	}
	assert.Equal(t, run(), run())
}

func TestShufflePairsKeepsEnds(t *testing.T) {
	list := []board.Coord{
		board.C(0, 0), board.C(1, 0), board.C(2, 0), board.C(3, 0),
		board.C(4, 0), board.C(5, 0), board.C(6, 0), board.C(7, 0),
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		got := append([]board.Coord(nil), list...)
		shufflePairs(got, rng)
		assert.Equal(t, list[0], got[0])
		assert.Equal(t, list[7], got[7])
		assert.ElementsMatch(t, list[1:3], got[1:3])
		assert.ElementsMatch(t, list[3:5], got[3:5])
		assert.ElementsMatch(t, list[5:7], got[5:7])
	}
}

func TestSuperBeastStepsAlongPath(t *testing.T) {
	b := board.New()
	b.Set(board.C(1, 1), board.SuperBeast)
	b.Set(board.C(3, 1), board.Player)

	sb := NewSuperBeast(board.C(1, 1))
	assert.Equal(t, Moved, sb.Advance(b, board.C(3, 1)))
	assert.Equal(t, board.C(2, 1), sb.Position())

	assert.Equal(t, PlayerKilled, sb.Advance(b, board.C(3, 1)))
	assert.Equal(t, board.C(3, 1), sb.Position())
	assert.Equal(t, board.SuperBeast, b.Get(board.C(3, 1)))
}

func TestSuperBeastGoesAroundWall(t *testing.T) {
	b := board.New()
	b.Set(board.C(0, 0), board.SuperBeast)
	b.Set(board.C(4, 0), board.Player)
	for row := 0; row < 5; row++ {
		b.Set(board.C(2, row), board.StaticBlock)
	}

	sb := NewSuperBeast(board.C(0, 0))
	for i := 0; i < 12 && sb.Position() != board.C(4, 0); i++ {
		sb.Advance(b, board.C(4, 0))
	}
	assert.Equal(t, board.C(4, 0), sb.Position())
	assert.Equal(t, 5, b.Count(board.StaticBlock))
}

func TestSuperBeastFallsBackToGreedyStep(t *testing.T) {
	b := board.New()
	player := board.C(10, 10)
	b.Set(player, board.Player)
	ring(b, player, board.StaticBlock)
	b.Set(board.C(5, 10), board.SuperBeast)

	sb := NewSuperBeast(board.C(5, 10))
	assert.Equal(t, Moved, sb.Advance(b, player))
	assert.Equal(t, board.C(6, 10), sb.Position())
}

func TestHatchedBeastKillsDiagonalPlayer(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	b.Set(board.C(6, 6), board.Player)

	hb := NewHatchedBeast(board.C(5, 5))
	assert.Equal(t, PlayerKilled, hb.Advance(b, board.C(6, 6)))
	assert.Equal(t, board.C(6, 6), hb.Position())
}

func TestHatchedBeastPushesChainOntoTrappedPlayer(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	b.Set(board.C(5, 4), board.Block)
	b.Set(board.C(5, 3), board.Player)
	b.Set(board.C(5, 2), board.StaticBlock)

	hb := NewHatchedBeast(board.C(5, 5))
	assert.Equal(t, PlayerKilled, hb.Advance(b, board.C(5, 3)))
	assert.Equal(t, board.C(5, 4), hb.Position())
	assert.Equal(t, board.Empty, b.Get(board.C(5, 5)))
	assert.Equal(t, board.HatchedBeast, b.Get(board.C(5, 4)))
	assert.Equal(t, board.Block, b.Get(board.C(5, 3)))
	assert.Equal(t, 0, b.Count(board.Player))
}

func TestHatchedBeastPushesBlockAlongPath(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	b.Set(board.C(5, 4), board.Block)
	b.Set(board.C(5, 2), board.Player)

	hb := NewHatchedBeast(board.C(5, 5))
	assert.Equal(t, Moved, hb.Advance(b, board.C(5, 2)))
	assert.Equal(t, board.C(5, 4), hb.Position())
	assert.Equal(t, board.Block, b.Get(board.C(5, 3)))
	assert.Equal(t, 1, b.Count(board.Block))
	assert.Equal(t, board.Player, b.Get(board.C(5, 2)))
}

func TestHatchedBeastStaysWhenBoxedIn(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	ring(b, board.C(5, 5), board.StaticBlock)
	b.Set(board.C(20, 20), board.Player)

	hb := NewHatchedBeast(board.C(5, 5))
	assert.Equal(t, Stayed, hb.Advance(b, board.C(20, 20)))
	assert.Equal(t, board.C(5, 5), hb.Position())
}

func TestHatchedBeastDoesNotPushDiagonally(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	ring(b, board.C(5, 5), board.StaticBlock)
	b.Set(board.C(6, 6), board.Block)
	b.Set(board.C(20, 20), board.Player)

	hb := NewHatchedBeast(board.C(5, 5))
	assert.Equal(t, Stayed, hb.Advance(b, board.C(20, 20)))
	assert.Equal(t, board.Block, b.Get(board.C(6, 6)))
	assert.Equal(t, board.Empty, b.Get(board.C(7, 7)))
}

func TestAdvanceToRecordedSteps(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.CommonBeast)
	b.Set(board.C(4, 4), board.Block)
	b.Set(board.C(9, 9), board.Player)
	cb := NewCommonBeast(board.C(5, 5), nil)

	action, err := cb.AdvanceTo(b, board.C(9, 9), board.C(5, 5))
	require.NoError(t, err)
	assert.Equal(t, Stayed, action)

	_, err = cb.AdvanceTo(b, board.C(9, 9), board.C(7, 7))
	assert.ErrorIs(t, err, ErrInvalidMovement)

	_, err = cb.AdvanceTo(b, board.C(9, 9), board.C(4, 4))
	assert.ErrorIs(t, err, ErrInvalidMovement)
	assert.Equal(t, board.C(5, 5), cb.Position())

	action, err = cb.AdvanceTo(b, board.C(9, 9), board.C(6, 6))
	require.NoError(t, err)
	assert.Equal(t, Moved, action)
	assert.Equal(t, board.CommonBeast, b.Get(board.C(6, 6)))
	assert.Equal(t, board.Empty, b.Get(board.C(5, 5)))
}

func TestHatchedBeastAdvanceToPush(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	b.Set(board.C(5, 4), board.Block)
	b.Set(board.C(6, 4), board.Block)
	b.Set(board.C(20, 20), board.Player)
	hb := NewHatchedBeast(board.C(5, 5))

	_, err := hb.AdvanceTo(b, board.C(20, 20), board.C(6, 4))
	assert.ErrorIs(t, err, ErrInvalidMovement)

	action, err := hb.AdvanceTo(b, board.C(20, 20), board.C(5, 4))
	require.NoError(t, err)
	assert.Equal(t, Moved, action)
	assert.Equal(t, board.C(5, 4), hb.Position())
	assert.Equal(t, board.Block, b.Get(board.C(5, 3)))
}

func TestHatchedBeastAdvanceToRejectsYieldingPlayer(t *testing.T) {
	b := board.New()
	b.Set(board.C(5, 5), board.HatchedBeast)
	b.Set(board.C(5, 4), board.Block)
	b.Set(board.C(5, 3), board.Player)
	hb := NewHatchedBeast(board.C(5, 5))

	_, err := hb.AdvanceTo(b, board.C(5, 3), board.C(5, 4))
	assert.ErrorIs(t, err, ErrInvalidMovement)
	assert.Equal(t, board.Player, b.Get(board.C(5, 3)))
}

func TestEggHatch(t *testing.T) {
	laid := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	hatchTime := 10 * time.Second
	egg := NewEgg(board.C(3, 3), laid)

	tests := []struct {
		at      time.Duration
		state   HatchingState
		changed bool
	}{
		{5 * time.Second, Incubating, false},
		{8 * time.Second, Hatching, true},
		{9 * time.Second, Hatching, false},
		{10 * time.Second, Hatched, true},
		{11 * time.Second, Hatched, false},
	}
	for _, tt := range tests {
		state, changed := egg.Hatch(laid.Add(tt.at), hatchTime)
		assert.Equal(t, tt.state, state, "at %v", tt.at)
		assert.Equal(t, tt.changed, changed, "at %v", tt.at)
		assert.Equal(t, tt.state, egg.State)
	}
	assert.Equal(t, EggScore, egg.Score())
}

func TestEggHatchesDirectlyAfterLongPause(t *testing.T) {
	laid := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	egg := NewEgg(board.C(3, 3), laid)
	state, changed := egg.Hatch(laid.Add(time.Minute), 10*time.Second)
	assert.Equal(t, Hatched, state)
	assert.True(t, changed)
}

func TestRosterStartHatching(t *testing.T) {
	b := board.New()
	b.Set(board.C(3, 3), board.Egg)
	r := RosterFromBoard(b, nil)

	require.True(t, r.StartHatching(b, board.C(3, 3)))
	assert.Equal(t, board.EggHatching, b.Get(board.C(3, 3)))
	assert.Equal(t, Hatching, r.Eggs[0].State)

	assert.False(t, r.StartHatching(b, board.C(3, 3)), "already hatching")
	assert.False(t, r.StartHatching(b, board.C(4, 4)), "no egg there")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "stayed", Stayed.String())
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "player_killed", PlayerKilled.String())
}
