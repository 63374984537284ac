package wordgrid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStrategy blocks long enough for any reasonable deadline to fire.
type slowStrategy struct{}

func (s *slowStrategy) PickMove(state *GameState, moves []*TileMove) Move {
	time.Sleep(200 * time.Millisecond)
	return NewPassMove(state.PlayerID)
}

func TestProposeMoveTimesOutToPass(t *testing.T) {
	g, a, _ := testGame(t, gameDict(t), "CATXYZW", "EEEEEEE")
	bot := NewBot(a, &slowStrategy{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	move := bot.ProposeMove(ctx, g.State())
	require.Equal(t, MovePass, move.Kind())
	assert.Equal(t, a.ID, move.PlayerID())
}

func TestProposeMoveReturnsInTime(t *testing.T) {
	g, a, _ := testGame(t, gameDict(t), "CATXYZW", "EEEEEEE")
	bot := NewBot(a, &HighScore{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	move := bot.ProposeMove(ctx, g.State())
	require.Equal(t, MovePlace, move.Kind())
	require.NoError(t, g.ExecuteMove(move))
}

func TestHighScorePicksBestMove(t *testing.T) {
	g, a, _ := testGame(t, gameDict(t), "CATXYZW", "EEEEEEE")
	bot := NewBot(a, &HighScore{})

	state := g.State()
	moves := state.GenerateMoves()
	require.NotEmpty(t, moves)

	best := 0
	for _, m := range moves {
		if m.Points > best {
			best = m.Points
		}
	}

	move := bot.GenerateMove(state)
	placed, ok := move.(*TileMove)
	require.True(t, ok)
	assert.Equal(t, best, placed.Points)
}

func TestOneOfNBestStaysInTopN(t *testing.T) {
	g, a, _ := testGame(t, gameDict(t), "CATXYZW", "EEEEEEE")
	bot := NewBot(a, &OneOfNBest{N: 3})

	state := g.State()
	moves := state.GenerateMoves()
	require.NotEmpty(t, moves)
	sortByScore(moves)
	floor := moves[min(len(moves), 3)-1].Points

	for i := 0; i < 10; i++ {
		move := bot.GenerateMove(state)
		placed, ok := move.(*TileMove)
		require.True(t, ok)
		assert.GreaterOrEqual(t, placed.Points, floor)
	}
}

func TestFallbackExchangesWhenStuck(t *testing.T) {
	// A rack that spells nothing in a dictionary it cannot match.
	g, a, _ := testGame(t, testDict(t, "QUIZZES"), "VWXJKQZ", "EEEEEEE")
	bot := NewBot(a, &HighScore{})

	move := bot.GenerateMove(g.State())
	require.Equal(t, MoveExchange, move.Kind())
	require.NoError(t, g.ExecuteMove(move))
	assert.Equal(t, RackSize, a.Rack.Len())
}

func TestFallbackPassesWhenBagShort(t *testing.T) {
	g, a, _ := testGame(t, testDict(t, "QUIZZES"), "VWXJKQZ", "EEEEEEE")
	g.Bag.Tiles = tilesOf("AB")
	bot := NewBot(a, &HighScore{})

	move := bot.GenerateMove(g.State())
	require.Equal(t, MovePass, move.Kind())
}

func TestFallbackPassesAfterOwnExchange(t *testing.T) {
	g, a, _ := testGame(t, testDict(t, "QUIZZES"), "VWXJKQZ", "EEEEEEE")
	bot := NewBot(a, &HighScore{})

	// First stall: the bot trades tiles.
	move := bot.GenerateMove(g.State())
	require.Equal(t, MoveExchange, move.Kind())
	require.NoError(t, g.ExecuteMove(move))
	require.NoError(t, g.ExecuteMove(NewPassMove(g.CurrentPlayer().ID)))

	// Still stuck on the next turn: one exchange per dry spell.
	state := g.State()
	assert.True(t, state.Exchanged)
	move = bot.GenerateMove(state)
	assert.Equal(t, MovePass, move.Kind())
}

func TestBlanksAreNeverExchanged(t *testing.T) {
	rack := NewRack()
	for _, tile := range tilesOf("**QZVWX") {
		rack.Add(tile)
	}
	for _, letter := range exchangeCandidates(rack) {
		assert.NotEqual(t, BlankLetter, letter)
	}
}
