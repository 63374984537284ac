package wordgrid

import (
	"golang.org/x/exp/slices"
)

// Generator enumerates every legal placement, with its score, for a
// board and rack. It only reads the board; candidates are simulated
// on private copies.
type Generator struct {
	dict    *Dictionary
	tileSet *TileSet
}

func NewGenerator(dict *Dictionary, tileSet *TileSet) *Generator {
	return &Generator{dict: dict, tileSet: tileSet}
}

type moveKey struct {
	word       string
	start      Position
	horizontal bool
}

// GenerateMoves returns all legal tile moves. No ordering is
// guaranteed; callers sort by score when they need a ranked list.
func (g *Generator) GenerateMoves(board *Board, rack *Rack) []*TileMove {
	if board.IsEmpty() {
		return dedupe(g.firstMoves(board, rack))
	}

	anchors := board.Anchors()
	results := make(chan []*TileMove, len(anchors))
	for _, anchor := range anchors {
		go func(anchor Position) {
			results <- g.movesAtAnchor(board, rack, anchor)
		}(anchor)
	}

	moves := make([]*TileMove, 0)
	for range anchors {
		moves = append(moves, <-results...)
	}
	return dedupe(moves)
}

// The same placement is reachable from several pivots and anchors;
// collapse candidates sharing word, start and direction.
func dedupe(moves []*TileMove) []*TileMove {
	seen := make(map[moveKey]struct{}, len(moves))
	out := moves[:0]
	for _, m := range moves {
		k := moveKey{m.Word, m.Start, m.Horizontal}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}
	return out
}

// firstMoves handles the empty board: every candidate word is slid
// along both axes so that the pivot letter lands on the center square.
func (g *Generator) firstMoves(board *Board, rack *Rack) []*TileMove {
	center := Position{Row: BoardCenter, Col: BoardCenter}
	moves := make([]*TileMove, 0)

	for _, pv := range g.pivots(rack) {
		pool := rack.LetterCounts()
		pool[pv.consumes]--
		for _, word := range g.dict.Gaddag.WordsFrom(pool, pv.letter, true, true) {
			for _, idx := range occurrences(word, pv.letter) {
				for _, horizontal := range []bool{true, false} {
					start := center.step(horizontal, -idx)
					if m, ok := g.tryPlacement(board, rack, word, start, horizontal); ok {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// movesAtAnchor generates the candidates whose pivot tile covers the
// given anchor square, on both axes.
func (g *Generator) movesAtAnchor(board *Board, rack *Rack, anchor Position) []*TileMove {
	moves := make([]*TileMove, 0)

	for _, horizontal := range []bool{true, false} {
		context := board.lineLetters(anchor, horizontal)

		for _, pv := range g.pivots(rack) {
			// The pool combines the rack with every board letter a
			// word along this line could absorb, adjacent runs and
			// runs beyond a gap alike. The pool only filters the
			// index walk; tryPlacement checks the real fit.
			pool := rack.LetterCounts()
			pool[pv.consumes]--
			for _, letter := range context {
				pool[letter]++
			}

			for _, word := range g.dict.Gaddag.WordsFrom(pool, pv.letter, true, true) {
				for _, idx := range occurrences(word, pv.letter) {
					start := anchor.step(horizontal, -idx)
					if m, ok := g.tryPlacement(board, rack, word, start, horizontal); ok {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// tryPlacement lays word down from start, consuming rack letters for
// every empty square (blanks as fallback), and keeps the candidate if
// it fits the board context, connects to it, and only forms
// dictionary words. The returned move carries its score.
func (g *Generator) tryPlacement(board *Board, rack *Rack, word string, start Position, horizontal bool) (*TileMove, bool) {
	runes := []rune(word)
	if !start.InBounds() {
		return nil, false
	}
	end := start.step(horizontal, len(runes)-1)
	if !end.InBounds() {
		return nil, false
	}
	// The word must be a maximal run: no tiles directly before or after.
	if before := board.GetSquare(start.step(horizontal, -1)); before != nil && before.Tile != nil {
		return nil, false
	}
	if after := board.GetSquare(end.step(horizontal, 1)); after != nil && after.Tile != nil {
		return nil, false
	}

	counts := rack.LetterCounts()
	placements := make([]placement, 0, len(runes))
	tiles := make([]*Tile, 0, len(runes))
	connected := false

	pos := start
	for _, letter := range runes {
		sq := board.GetSquare(pos)
		if sq.Tile != nil {
			if sq.Tile.Letter != letter {
				return nil, false
			}
			connected = true
		} else {
			var tile *Tile
			switch {
			case counts[letter] > 0:
				counts[letter]--
				tile = NewTile(letter, g.tileSet.Values[letter])
			case counts[BlankLetter] > 0:
				counts[BlankLetter]--
				tile = NewBlankTile()
				tile.assignLetter(letter)
			default:
				return nil, false
			}
			tiles = append(tiles, tile)
			placements = append(placements, placement{tile: tile, pos: pos})
			if board.HasAdjacentTile(pos) {
				connected = true
			}
		}
		pos = pos.step(horizontal, 1)
	}

	if len(placements) == 0 {
		return nil, false
	}
	if board.IsEmpty() {
		coversCenter := slices.ContainsFunc(placements, func(pl placement) bool {
			return pl.pos.IsCenter()
		})
		if !coversCenter {
			return nil, false
		}
	} else if !connected {
		return nil, false
	}

	trial := board.Copy()
	words, score, err := applyAndScore(trial, placements, horizontal)
	if err != nil {
		return nil, false
	}
	for _, w := range words {
		if !g.dict.Contains(w) {
			return nil, false
		}
	}

	return &TileMove{
		Start:      start,
		Horizontal: horizontal,
		Word:       word,
		Tiles:      tiles,
		Words:      words,
		Points:     score,
	}, true
}

// pivot is one way the rack can cover the pivot square: the letter it
// shows there and the rack letter consumed to show it.
type pivot struct {
	letter   rune
	consumes rune
}

// pivots returns every letter the rack can put on the pivot square:
// each distinct concrete letter, plus, when a blank is held, every
// other letter the index branches on at its root. Without the blank
// expansion, placements whose pivot letter exists only as a blank
// would never be enumerated.
func (g *Generator) pivots(rack *Rack) []pivot {
	letters := uniqueLetters(rack)
	choices := make([]pivot, 0, len(letters))
	for _, letter := range letters {
		choices = append(choices, pivot{letter: letter, consumes: letter})
	}
	if rack.Contains(BlankLetter) {
		for letter := range g.dict.Gaddag.Root.Edges {
			if letter == Delimiter || slices.Contains(letters, letter) {
				continue
			}
			choices = append(choices, pivot{letter: letter, consumes: BlankLetter})
		}
	}
	return choices
}

// uniqueLetters returns the distinct concrete letters on the rack,
// blanks excluded.
func uniqueLetters(rack *Rack) []rune {
	letters := make([]rune, 0, RackSize)
	for _, t := range rack.Tiles {
		if t.Blank {
			continue
		}
		if !slices.Contains(letters, t.Letter) {
			letters = append(letters, t.Letter)
		}
	}
	return letters
}

// occurrences returns every index where the pivot letter occurs in
// word.
func occurrences(word string, pivot rune) []int {
	idxs := make([]int, 0, 2)
	for i, letter := range []rune(word) {
		if letter == pivot {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
