package wordgrid

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// DefaultPassLimit is the number of consecutive passes that ends a
// game.
const DefaultPassLimit = 6

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusInProgress
	StatusGameOver
)

var (
	ErrNotEnoughPlayers = errors.New("a game needs at least two players")
	ErrGameNotStarted   = errors.New("game has not started")
	ErrGameAlreadyOn    = errors.New("game has already started")
	ErrGameOver         = errors.New("game is over")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrUnknownPlayer    = errors.New("player is not in this game")
)

// MoveItem is an entry in the Game's history: the mover's rack as it
// was before the move, and the move itself.
type MoveItem struct {
	RackBefore string
	Move       Move
}

// Game owns the board, the bag, the players and the move history, and
// drives turn progression. It is a single-writer structure: callers
// serialize access externally, one move in flight per instance.
type Game struct {
	ID      uuid.UUID
	Board   *Board
	Bag     *Bag
	Dict    *Dictionary
	TileSet *TileSet
	Players []*Player

	Current   int
	History   []*MoveItem
	PassCount int
	PassLimit int
	Status    GameStatus
}

func NewGame(dict *Dictionary, tileSet *TileSet, players ...*Player) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	return &Game{
		ID:        uuid.New(),
		Board:     NewBoard(),
		Bag:       NewBag(tileSet),
		Dict:      dict,
		TileSet:   tileSet,
		Players:   players,
		PassLimit: DefaultPassLimit,
	}, nil
}

// Start shuffles the bag, fills every rack, picks a random starting
// player and enters play.
func (g *Game) Start() error {
	if g.Status != StatusNotStarted {
		return ErrGameAlreadyOn
	}
	g.Bag.Shuffle()
	for _, p := range g.Players {
		p.Rack.Fill(g.Bag)
	}
	g.Current = frand.Intn(len(g.Players))
	g.History = g.History[:0]
	g.PassCount = 0
	g.Status = StatusInProgress

	log.Debug().
		Str("game", g.ID.String()).
		Str("first", g.CurrentPlayer().Username).
		Msg("game started")
	return nil
}

func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Current]
}

func (g *Game) playerByID(id uuid.UUID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ExecuteMove validates and commits a move for the current player.
// A rejected move leaves board, racks, bag and turn order unchanged.
func (g *Game) ExecuteMove(move Move) error {
	switch g.Status {
	case StatusNotStarted:
		return ErrGameNotStarted
	case StatusGameOver:
		return ErrGameOver
	}
	if g.playerByID(move.PlayerID()) == nil {
		return ErrUnknownPlayer
	}
	if move.PlayerID() != g.CurrentPlayer().ID {
		return ErrNotYourTurn
	}

	rackBefore := g.CurrentPlayer().Rack.AsString()
	if err := move.validate(g); err != nil {
		return err
	}
	if err := move.apply(g); err != nil {
		return err
	}

	g.History = append(g.History, &MoveItem{RackBefore: rackBefore, Move: move})

	log.Debug().
		Str("game", g.ID.String()).
		Str("player", g.CurrentPlayer().Username).
		Stringer("move", move).
		Msg("move committed")

	if g.isOver() {
		g.finish(move)
	} else {
		g.Current = (g.Current + 1) % len(g.Players)
	}
	return nil
}

// isOver reports whether the last committed move ended the game:
// either the pass limit was reached, or the mover emptied their rack
// with the bag also empty.
func (g *Game) isOver() bool {
	if g.PassCount >= g.PassLimit {
		return true
	}
	return g.Bag.IsEmpty() && g.CurrentPlayer().Rack.IsEmpty()
}

// finish applies the endgame adjustment: every player still holding
// tiles forfeits their rack value; a player who went out by emptying
// their rack collects all forfeits.
func (g *Game) finish(last Move) {
	var outPlayer *Player
	if last.Kind() == MovePlace && g.CurrentPlayer().Rack.IsEmpty() {
		outPlayer = g.CurrentPlayer()
	}

	forfeited := 0
	for _, p := range g.Players {
		v := p.Rack.Value()
		if v > 0 {
			p.Score -= v
			forfeited += v
		}
	}
	if outPlayer != nil {
		outPlayer.Score += forfeited
	}
	g.Status = StatusGameOver

	evt := log.Info().Str("game", g.ID.String())
	for _, p := range g.Players {
		evt = evt.Int(p.Username, p.Score)
	}
	evt.Msg("game over")
}

// TileCount is the total number of tiles across the bag, all racks
// and the board. It is invariant through any sequence of moves.
func (g *Game) TileCount() int {
	count := g.Bag.TileCount() + g.Board.OccupiedCount()
	for _, p := range g.Players {
		count += p.Rack.Len()
	}
	return count
}

// GameState is the minimal read-only view an automated player needs
// to decide on a move.
type GameState struct {
	Dict            *Dictionary
	TileSet         *TileSet
	Board           *Board
	Rack            *Rack
	PlayerID        uuid.UUID
	ExchangeAllowed bool

	// Exchanged reports whether the player has already exchanged
	// since their last placement. Exchanges reset the pass counter,
	// so a bot that keeps trading tiles on a dead board would hold
	// the game open forever.
	Exchanged bool
}

// State captures the game as seen by the current player.
func (g *Game) State() *GameState {
	p := g.CurrentPlayer()
	return &GameState{
		Dict:            g.Dict,
		TileSet:         g.TileSet,
		Board:           g.Board,
		Rack:            p.Rack,
		PlayerID:        p.ID,
		ExchangeAllowed: g.Bag.CanExchange(p.Rack.Len()),
		Exchanged:       g.exchangedSincePlacement(p),
	}
}

// exchangedSincePlacement reports whether p's most recent non-pass
// move was an exchange.
func (g *Game) exchangedSincePlacement(p *Player) bool {
	for i := len(g.History) - 1; i >= 0; i-- {
		move := g.History[i].Move
		if move.PlayerID() != p.ID || move.Kind() == MovePass {
			continue
		}
		return move.Kind() == MoveExchange
	}
	return false
}

// GenerateMoves enumerates the legal placements for the state's rack.
func (gs *GameState) GenerateMoves() []*TileMove {
	gen := NewGenerator(gs.Dict, gs.TileSet)
	moves := gen.GenerateMoves(gs.Board, gs.Rack)
	for _, m := range moves {
		m.Player = gs.PlayerID
	}
	return moves
}
