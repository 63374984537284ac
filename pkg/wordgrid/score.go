package wordgrid

import "strings"

// BingoBonus is awarded for playing all seven rack tiles in one move.
const BingoBonus = 50

// applyAndScore lays the placements on b and returns every word the
// move forms (main word first, then crossing words of length >= 2)
// together with the move total. Premium squares that contribute are
// marked consumed on b, so callers score speculative trials on a
// board copy and commits on the live board.
func applyAndScore(b *Board, placements []placement, horizontal bool) ([]string, int, error) {
	newPos := make(map[Position]bool, len(placements))
	for _, pl := range placements {
		if err := b.PlaceTile(pl.tile, pl.pos); err != nil {
			return nil, 0, err
		}
		newPos[pl.pos] = true
	}

	spans := make([][]*Square, 0, len(placements)+1)
	main := b.wordSpan(placements[0].pos, horizontal)
	if len(main) >= 2 {
		spans = append(spans, main)
	}
	for _, pl := range placements {
		cross := b.wordSpan(pl.pos, !horizontal)
		if len(cross) >= 2 {
			spans = append(spans, cross)
		}
	}

	words := make([]string, 0, len(spans))
	total := 0
	for _, span := range spans {
		words = append(words, spanWord(span))
		total += scoreSpan(span, newPos)
	}

	if len(placements) == RackSize {
		total += BingoBonus
	}

	return words, total, nil
}

// scoreSpan scores one formed word. A square's multipliers count only
// if the square was covered this move and its premium is still
// unconsumed; a premium that counts is consumed on the spot and never
// applies again, not even to another word of the same move.
func scoreSpan(span []*Square, newPos map[Position]bool) int {
	letterSum := 0
	wordMultiplier := 1
	for _, sq := range span {
		value := sq.Tile.Value
		if newPos[sq.Position] && !sq.PremiumUsed {
			if sq.LetterMultiplier > 1 {
				value *= sq.LetterMultiplier
			}
			wordMultiplier *= sq.WordMultiplier
			if sq.LetterMultiplier > 1 || sq.WordMultiplier > 1 {
				sq.PremiumUsed = true
			}
		}
		letterSum += value
	}
	return letterSum * wordMultiplier
}

func spanWord(span []*Square) string {
	var sb strings.Builder
	for _, sq := range span {
		sb.WriteRune(sq.Tile.Letter)
	}
	return sb.String()
}
