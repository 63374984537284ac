package wordgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type MoveKind int

const (
	MovePlace MoveKind = iota
	MoveExchange
	MovePass
)

var (
	ErrNoTilesPlayed        = errors.New("move places no tiles")
	ErrTooManyTiles         = errors.New("move places more tiles than a rack holds")
	ErrCenterNotCovered     = errors.New("first move must cover the center square")
	ErrDisconnectedMove     = errors.New("move does not connect to the board")
	ErrTileMismatch         = errors.New("move conflicts with a tile already on the board")
	ErrWordNotInDictionary  = errors.New("word is not in the dictionary")
	ErrWordBoundary         = errors.New("move does not align with adjacent tiles")
	ErrRackCannotSupply     = errors.New("rack cannot supply the tiles for this move")
	ErrExchangeNotAllowed   = errors.New("not enough tiles left in the bag to exchange")
	ErrInvalidExchangeCount = errors.New("exchange must name between 1 and 7 tiles")
)

// Move is a turn action. Moves are transient: constructed, validated
// and either committed to the game history or discarded.
type Move interface {
	Kind() MoveKind
	PlayerID() uuid.UUID
	validate(g *Game) error
	apply(g *Game) error
	fmt.Stringer
}

// Interface checks.
var (
	_ Move = (*TileMove)(nil)
	_ Move = (*ExchangeMove)(nil)
	_ Move = (*PassMove)(nil)
)

// placement is one new tile landing on one empty square.
type placement struct {
	tile *Tile
	pos  Position
}

// TileMove places tiles from the mover's rack onto the board. Start
// is the first square of the main word (existing tiles included),
// Tiles the new tiles in placement order, skipping over occupied
// squares. Words and Points are filled in by validation or by the
// placement generator.
type TileMove struct {
	Player     uuid.UUID
	Start      Position
	Horizontal bool
	Word       string
	Tiles      []*Tile
	Words      []string
	Points     int
}

func (m *TileMove) Kind() MoveKind      { return MovePlace }
func (m *TileMove) PlayerID() uuid.UUID { return m.Player }

func (m *TileMove) String() string {
	dir := "H"
	if !m.Horizontal {
		dir = "V"
	}
	return fmt.Sprintf("PLACE %s at (%d,%d)%s for %d",
		m.Word, m.Start.Row, m.Start.Col, dir, m.Points)
}

// NewTileMove builds a placement from a raw start square, direction
// and tile sequence, as submitted by an interactive player. The move
// is normalized so that Start is the first square of the full main
// word and Word covers existing board tiles. Validation happens
// separately, against the game the move is executed in.
func NewTileMove(board *Board, player uuid.UUID, start Position, horizontal bool, tiles []*Tile) (*TileMove, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTilesPlayed
	}
	if len(tiles) > RackSize {
		return nil, ErrTooManyTiles
	}
	if !start.InBounds() {
		return nil, ErrInvalidPosition
	}

	if len(tiles) == 1 {
		// A single tile does not fix a direction by itself: pick the
		// axis with the longer existing run through the square.
		h := len(board.PrefixBefore(start, true)) + len(board.SuffixAfter(start, true))
		v := len(board.PrefixBefore(start, false)) + len(board.SuffixAfter(start, false))
		horizontal = h >= v
	}

	// Pull the start back over any contiguous tiles before it.
	for {
		prev := start.step(horizontal, -1)
		sq := board.GetSquare(prev)
		if sq == nil || sq.Tile == nil {
			break
		}
		start = prev
	}

	// Walk forward, interleaving the new tiles with board tiles.
	var word strings.Builder
	ti := 0
	pos := start
	for ti < len(tiles) {
		sq := board.GetSquare(pos)
		if sq == nil {
			return nil, ErrInvalidPosition
		}
		if sq.Tile != nil {
			word.WriteRune(sq.Tile.Letter)
		} else {
			word.WriteRune(tiles[ti].Letter)
			ti++
		}
		pos = pos.step(horizontal, 1)
	}
	// Absorb any trailing tiles already on the board.
	for {
		sq := board.GetSquare(pos)
		if sq == nil || sq.Tile == nil {
			break
		}
		word.WriteRune(sq.Tile.Letter)
		pos = pos.step(horizontal, 1)
	}

	return &TileMove{
		Player:     player,
		Start:      start,
		Horizontal: horizontal,
		Word:       word.String(),
		Tiles:      tiles,
	}, nil
}

// placements maps the given tiles to the empty squares they cover,
// checking that occupied squares along the word match its letters.
func (m *TileMove) placements(board *Board, tiles []*Tile) ([]placement, error) {
	word := []rune(m.Word)
	if len(word) < 2 {
		return nil, ErrWordNotInDictionary
	}

	placements := make([]placement, 0, len(tiles))
	ti := 0
	pos := m.Start
	for _, letter := range word {
		sq := board.GetSquare(pos)
		if sq == nil {
			return nil, ErrInvalidPosition
		}
		if sq.Tile != nil {
			if sq.Tile.Letter != letter {
				return nil, ErrTileMismatch
			}
		} else {
			if ti >= len(tiles) {
				return nil, ErrRackCannotSupply
			}
			tile := tiles[ti]
			if tile.Letter != letter {
				return nil, ErrTileMismatch
			}
			placements = append(placements, placement{tile: tile, pos: pos})
			ti++
		}
		pos = pos.step(m.Horizontal, 1)
	}
	if ti != len(tiles) {
		// The word ended before all tiles were laid down.
		return nil, ErrTileMismatch
	}
	if len(placements) == 0 {
		return nil, ErrNoTilesPlayed
	}

	// The word must not abut further tiles on either end.
	before := board.GetSquare(m.Start.step(m.Horizontal, -1))
	after := board.GetSquare(pos)
	if before != nil && before.Tile != nil || after != nil && after.Tile != nil {
		return nil, ErrWordBoundary
	}

	return placements, nil
}

// validate runs the full rule check for a placement: structural
// fit, center/connectivity, rack supply, and dictionary membership of
// the main word and every new crossing word. On success the move's
// Words and Points are filled in from a speculative board copy; a
// generator-produced move reproduces its original score here.
func (m *TileMove) validate(g *Game) error {
	if len(m.Tiles) == 0 {
		return ErrNoTilesPlayed
	}
	if len(m.Tiles) > RackSize {
		return ErrTooManyTiles
	}

	// Resolve the submitted tiles against the mover's rack first, so
	// that everything downstream scores what the rack really gives up.
	tiles, err := m.rackTiles(g)
	if err != nil {
		return err
	}

	board := g.Board
	placements, err := m.placements(board, tiles)
	if err != nil {
		return err
	}

	if board.IsEmpty() {
		covered := false
		for _, pl := range placements {
			if pl.pos.IsCenter() {
				covered = true
				break
			}
		}
		if !covered {
			return ErrCenterNotCovered
		}
	} else {
		connected := len(placements) < len(m.Word)
		for _, pl := range placements {
			if board.HasAdjacentTile(pl.pos) {
				connected = true
				break
			}
		}
		if !connected {
			return ErrDisconnectedMove
		}
	}

	// Lay the tiles on a copy to collect and check the formed words.
	trial := board.Copy()
	words, score, err := applyAndScore(trial, placements, m.Horizontal)
	if err != nil {
		return err
	}
	for _, word := range words {
		if !g.Dict.Contains(word) {
			return fmt.Errorf("%w: %s", ErrWordNotInDictionary, word)
		}
	}

	m.Words = words
	m.Points = score
	return nil
}

// rackTiles resolves every submitted tile to the tile the rack will
// actually give up: the named letter when the rack holds it, or a
// blank assigned that letter otherwise. Resolved tiles carry the
// canonical tile-set values, so a blank stays worth zero no matter
// what the submitted tile claimed. The rack itself is not touched.
func (m *TileMove) rackTiles(g *Game) ([]*Tile, error) {
	player := g.playerByID(m.Player)
	if player == nil {
		return nil, ErrRackCannotSupply
	}
	counts := player.Rack.LetterCounts()
	tiles := make([]*Tile, len(m.Tiles))
	for i, t := range m.Tiles {
		need := t.Letter
		if t.Blank {
			need = BlankLetter
		}
		switch {
		case counts[need] > 0:
			counts[need]--
			if t.Blank {
				tiles[i] = NewBlankTile()
				tiles[i].assignLetter(t.Letter)
			} else {
				tiles[i] = NewTile(t.Letter, g.TileSet.Values[t.Letter])
			}
		case !t.Blank && counts[BlankLetter] > 0:
			counts[BlankLetter]--
			tiles[i] = NewBlankTile()
			tiles[i].assignLetter(t.Letter)
		default:
			return nil, ErrRackCannotSupply
		}
	}
	return tiles, nil
}

// apply commits the move: the resolved tiles leave the rack and are
// fixed into the live board, premiums consumed there are marked, the
// score is credited and the rack refilled.
func (m *TileMove) apply(g *Game) error {
	player := g.playerByID(m.Player)
	tiles, err := m.rackTiles(g)
	if err != nil {
		return err
	}
	placements, err := m.placements(g.Board, tiles)
	if err != nil {
		return err
	}

	// Removal mirrors the resolution above, so it cannot fail here.
	for _, t := range tiles {
		letter := t.Letter
		if t.Blank {
			letter = BlankLetter
		}
		if _, err := player.Rack.Remove(letter); err != nil {
			return ErrRackCannotSupply
		}
	}
	m.Tiles = tiles

	words, score, err := applyAndScore(g.Board, placements, m.Horizontal)
	if err != nil {
		return err
	}
	m.Words = words
	m.Points = score
	player.Score += score

	player.Rack.Fill(g.Bag)
	g.PassCount = 0
	return nil
}

// ExchangeMove swaps 1-7 named rack tiles for fresh ones from the
// bag. It requires the bag to hold at least as many tiles as are
// exchanged.
type ExchangeMove struct {
	Player  uuid.UUID
	Letters string
}

func NewExchangeMove(player uuid.UUID, letters string) *ExchangeMove {
	return &ExchangeMove{Player: player, Letters: letters}
}

func (m *ExchangeMove) Kind() MoveKind      { return MoveExchange }
func (m *ExchangeMove) PlayerID() uuid.UUID { return m.Player }

func (m *ExchangeMove) String() string {
	return "EXCHANGE " + m.Letters
}

func (m *ExchangeMove) validate(g *Game) error {
	runes := []rune(m.Letters)
	if len(runes) < 1 || len(runes) > RackSize {
		return ErrInvalidExchangeCount
	}
	if !g.Bag.CanExchange(len(runes)) {
		return ErrExchangeNotAllowed
	}
	rack := g.playerByID(m.Player).Rack.AsString()
	for _, letter := range runes {
		if !strings.ContainsRune(rack, letter) {
			return ErrTileNotInRack
		}
		rack = strings.Replace(rack, string(letter), "", 1)
	}
	return nil
}

func (m *ExchangeMove) apply(g *Game) error {
	rack := g.playerByID(m.Player).Rack

	removed := make([]*Tile, 0, len(m.Letters))
	for _, letter := range m.Letters {
		tile, err := rack.Remove(letter)
		if err != nil {
			return err
		}
		removed = append(removed, tile)
	}
	for range removed {
		tile, err := g.Bag.DrawTile()
		if err != nil {
			return err
		}
		rack.Add(tile)
	}
	// Return the exchanged tiles only after drawing, so a player
	// cannot draw back what they just gave up.
	for _, tile := range removed {
		g.Bag.ReturnTile(tile)
	}
	g.Bag.Shuffle()
	g.PassCount = 0
	return nil
}

// PassMove forfeits the turn.
type PassMove struct {
	Player uuid.UUID
}

func NewPassMove(player uuid.UUID) *PassMove {
	return &PassMove{Player: player}
}

func (m *PassMove) Kind() MoveKind      { return MovePass }
func (m *PassMove) PlayerID() uuid.UUID { return m.Player }
func (m *PassMove) String() string      { return "PASS" }

func (m *PassMove) validate(g *Game) error { return nil }

func (m *PassMove) apply(g *Game) error {
	g.PassCount++
	return nil
}
