package wordgrid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BoardSize   int = 15
	BoardCenter int = 7
)

var (
	ErrInvalidPosition = errors.New("position is out of bounds")
	ErrExistingTile    = errors.New("a tile already exists on that square")
)

// The standard premium layout, one digit per square.
var (
	wordMultipliers = [BoardSize]string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}

	letterMultipliers = [BoardSize]string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}
)

type Position struct {
	Row, Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize &&
		p.Col >= 0 && p.Col < BoardSize
}

func (p Position) IsCenter() bool {
	return p.Row == BoardCenter && p.Col == BoardCenter
}

// step moves one square along the given axis.
func (p Position) step(horizontal bool, delta int) Position {
	if horizontal {
		return Position{Row: p.Row, Col: p.Col + delta}
	}
	return Position{Row: p.Row + delta, Col: p.Col}
}

// Square holds at most one tile, placed once and never vacated. Its
// premium multipliers are fixed at board construction; PremiumUsed is
// set the first time a multiplier contributes to a score, after which
// it never applies again.
type Square struct {
	Tile             *Tile
	LetterMultiplier int
	WordMultiplier   int
	PremiumUsed      bool
	Position         Position
}

func (s *Square) IsEmpty() bool {
	return s.Tile == nil
}

func (s *Square) String() string {
	if s.Tile == nil {
		return "-"
	}
	return string(s.Tile.Letter)
}

// Board is the fixed 15x15 grid of squares.
type Board struct {
	Squares [BoardSize][BoardSize]Square
}

func NewBoard() *Board {
	b := &Board{}

	const zeroUnicode = '0'
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			b.Squares[i][j] = Square{
				LetterMultiplier: int(letterMultipliers[i][j] - zeroUnicode),
				WordMultiplier:   int(wordMultipliers[i][j] - zeroUnicode),
				Position:         Position{Row: i, Col: j},
			}
		}
	}

	return b
}

// Copy returns a full value copy for speculative trials. Placed tiles
// are shared; they are immutable once on the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

func (b *Board) GetSquare(p Position) *Square {
	if !p.InBounds() {
		return nil
	}
	return &b.Squares[p.Row][p.Col]
}

func (b *Board) PlaceTile(t *Tile, p Position) error {
	if !p.InBounds() {
		return ErrInvalidPosition
	}
	sq := b.GetSquare(p)
	if sq.Tile != nil {
		return ErrExistingTile
	}
	sq.Tile = t
	return nil
}

// IsEmpty reports whether no tile has been placed yet.
func (b *Board) IsEmpty() bool {
	return b.Squares[BoardCenter][BoardCenter].Tile == nil
}

// HasAdjacentTile reports whether any 4-neighbor of p is occupied.
func (b *Board) HasAdjacentTile(p Position) bool {
	for _, adj := range [4]Position{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	} {
		if sq := b.GetSquare(adj); sq != nil && sq.Tile != nil {
			return true
		}
	}
	return false
}

// IsAnchor reports whether p is an empty square adjacent to at least
// one occupied square.
func (b *Board) IsAnchor(p Position) bool {
	sq := b.GetSquare(p)
	return sq != nil && sq.Tile == nil && b.HasAdjacentTile(p)
}

// Anchors returns every anchor position on the board.
func (b *Board) Anchors() []Position {
	anchors := make([]Position, 0)
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			p := Position{Row: i, Col: j}
			if b.IsAnchor(p) {
				anchors = append(anchors, p)
			}
		}
	}
	return anchors
}

// wordSpan returns the contiguous run of occupied squares through p
// along the given axis, in reading order. Nil if p itself is empty.
func (b *Board) wordSpan(p Position, horizontal bool) []*Square {
	if sq := b.GetSquare(p); sq == nil || sq.Tile == nil {
		return nil
	}
	start := p
	for {
		prev := start.step(horizontal, -1)
		sq := b.GetSquare(prev)
		if sq == nil || sq.Tile == nil {
			break
		}
		start = prev
	}

	span := make([]*Square, 0, BoardSize)
	for pos := start; ; pos = pos.step(horizontal, 1) {
		sq := b.GetSquare(pos)
		if sq == nil || sq.Tile == nil {
			break
		}
		span = append(span, sq)
	}
	return span
}

// WordAt returns the contiguous word through p along the given axis,
// or "" if the run is shorter than two tiles (single letters are not
// words).
func (b *Board) WordAt(p Position, horizontal bool) string {
	span := b.wordSpan(p, horizontal)
	if len(span) < 2 {
		return ""
	}
	var sb strings.Builder
	for _, sq := range span {
		sb.WriteRune(sq.Tile.Letter)
	}
	return sb.String()
}

// HorizontalWordAt and VerticalWordAt are the axis-specific forms of
// WordAt.
func (b *Board) HorizontalWordAt(p Position) string { return b.WordAt(p, true) }
func (b *Board) VerticalWordAt(p Position) string   { return b.WordAt(p, false) }

// fragment returns the letters of the contiguous occupied run starting
// one square from p in the given delta direction, in reading order.
// Used for the prefix/suffix context around an empty anchor square.
func (b *Board) fragment(p Position, horizontal bool, delta int) string {
	letters := make([]rune, 0, BoardSize-1)
	for pos := p.step(horizontal, delta); ; pos = pos.step(horizontal, delta) {
		sq := b.GetSquare(pos)
		if sq == nil || sq.Tile == nil {
			break
		}
		letters = append(letters, sq.Tile.Letter)
	}
	if delta < 0 {
		for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
			letters[i], letters[j] = letters[j], letters[i]
		}
	}
	return string(letters)
}

// PrefixBefore returns the occupied run immediately before p on the
// given axis, SuffixAfter the run immediately after it.
func (b *Board) PrefixBefore(p Position, horizontal bool) string {
	return b.fragment(p, horizontal, -1)
}

func (b *Board) SuffixAfter(p Position, horizontal bool) string {
	return b.fragment(p, horizontal, 1)
}

// lineLetters returns the letters of every occupied square in the row
// (horizontal) or column through p, in reading order.
func (b *Board) lineLetters(p Position, horizontal bool) []rune {
	letters := make([]rune, 0, BoardSize)
	start := Position{Row: p.Row, Col: 0}
	if !horizontal {
		start = Position{Row: 0, Col: p.Col}
	}
	for pos := start; pos.InBounds(); pos = pos.step(horizontal, 1) {
		if sq := b.GetSquare(pos); sq.Tile != nil {
			letters = append(letters, sq.Tile.Letter)
		}
	}
	return letters
}

// OccupiedCount returns the number of squares holding a tile.
func (b *Board) OccupiedCount() int {
	count := 0
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if b.Squares[i][j].Tile != nil {
				count++
			}
		}
	}
	return count
}

// String renders the board for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2d", i))
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2d ", i))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf(" %v", b.GetSquare(Position{i, j})))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
