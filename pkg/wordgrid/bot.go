package wordgrid

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"lukechampine.com/frand"
)

// Strategy picks a move from the generator's output, given the state
// the moves were generated for.
type Strategy interface {
	PickMove(state *GameState, moves []*TileMove) Move
}

// Bot is an automated player: a Player plus a move-picking strategy.
type Bot struct {
	*Player
	Strategy
}

func NewBot(p *Player, s Strategy) *Bot {
	return &Bot{
		Player:   p,
		Strategy: s,
	}
}

// GenerateMove enumerates the legal placements for the state and
// picks one with the bot's strategy.
func (b *Bot) GenerateMove(state *GameState) Move {
	moves := state.GenerateMoves()
	return b.PickMove(state, moves)
}

// ProposeMove runs move computation off the goroutine that owns the
// game and hands the result back through a channel. If the context
// expires first, the turn falls back to a pass; a computation that
// completes after that is discarded, since the turn has moved on.
func (b *Bot) ProposeMove(ctx context.Context, state *GameState) Move {
	result := make(chan Move, 1)
	go func() {
		result <- b.GenerateMove(state)
	}()

	select {
	case move := <-result:
		return move
	case <-ctx.Done():
		log.Warn().
			Str("bot", b.Username).
			Msg("move computation timed out, passing")
		return NewPassMove(b.ID)
	}
}

// sortByScore orders moves by descending score.
func sortByScore(moves []*TileMove) {
	slices.SortStableFunc(moves, func(a, b *TileMove) bool {
		return a.Points > b.Points
	})
}

// HighScore always picks the highest-scoring placement, exchanges its
// worst tiles when no placement exists and the bag allows it, and
// passes as a last resort.
type HighScore struct{}

func (hs *HighScore) PickMove(state *GameState, moves []*TileMove) Move {
	if len(moves) > 0 {
		sortByScore(moves)
		return moves[0]
	}
	return fallbackMove(state)
}

// OneOfNBest picks one of the N highest-scoring placements at random.
type OneOfNBest struct {
	N int
}

func (ofb *OneOfNBest) PickMove(state *GameState, moves []*TileMove) Move {
	if len(moves) > 0 {
		sortByScore(moves)
		if len(moves) > ofb.N {
			moves = moves[:ofb.N]
		}
		return moves[frand.Intn(len(moves))]
	}
	return fallbackMove(state)
}

// fallbackMove exchanges the least desirable tiles when allowed, and
// passes otherwise. At most one exchange is spent per dry spell: once
// the bot has exchanged without finding a placement afterwards it
// passes, letting the pass limit end a dead game.
func fallbackMove(state *GameState) Move {
	if state.ExchangeAllowed && !state.Exchanged {
		letters := exchangeCandidates(state.Rack)
		if len(letters) > 0 {
			return NewExchangeMove(state.PlayerID, string(letters))
		}
	}
	return NewPassMove(state.PlayerID)
}

// exchangeCandidates scores each rack tile for discard preference:
// heavy and rare letters are penalized, and vowels beyond a balanced
// count go first. Only the qualitative policy matters; the weights
// are tuning constants.
func exchangeCandidates(rack *Rack) []rune {
	type scored struct {
		letter rune
		keep   int
	}

	vowels := 0
	for _, t := range rack.Tiles {
		if isVowel(t.Letter) {
			vowels++
		}
	}

	tiles := make([]scored, 0, rack.Len())
	for _, t := range rack.Tiles {
		if t.Blank {
			// Blanks are never exchanged.
			continue
		}
		keep := 10 - t.Value
		if isVowel(t.Letter) && vowels > 3 {
			keep -= 4
		}
		if !isVowel(t.Letter) && vowels < 2 {
			keep -= 2
		}
		tiles = append(tiles, scored{letter: t.Letter, keep: keep})
	}
	slices.SortStableFunc(tiles, func(a, b scored) bool {
		return a.keep < b.keep
	})

	// Discard the worse half of the rack.
	n := len(tiles) / 2
	if n == 0 && len(tiles) > 0 {
		n = 1
	}
	letters := make([]rune, 0, n)
	for _, t := range tiles[:n] {
		letters = append(letters, t.letter)
	}
	return letters
}

func isVowel(letter rune) bool {
	return strings.ContainsRune("AEIOU", letter)
}
