package wordgrid

import (
	"errors"

	"github.com/samber/lo"
)

// RackSize is the maximum number of tiles a player holds.
const RackSize = 7

var ErrTileNotInRack = errors.New("tile not in rack")

// Rack is the ordered multiset of tiles held by one player.
// It never exceeds RackSize tiles.
type Rack struct {
	Tiles []*Tile
}

func NewRack() *Rack {
	return &Rack{
		Tiles: make([]*Tile, 0, RackSize),
	}
}

// Fill draws tiles from the bag until the rack is full or the
// bag runs out.
func (r *Rack) Fill(b *Bag) {
	for len(r.Tiles) < RackSize {
		tile, err := b.DrawTile()
		if err != nil {
			return
		}
		r.Tiles = append(r.Tiles, tile)
	}
}

func (r *Rack) Index(letter rune) int {
	for i, t := range r.Tiles {
		if letter == t.Letter {
			return i
		}
	}
	return -1
}

func (r *Rack) Contains(letter rune) bool {
	return r.Index(letter) >= 0
}

// Remove takes the first tile showing the given letter out of the
// rack and returns it. Order is kept so an interactive player sees
// their remaining tiles in the same arrangement.
func (r *Rack) Remove(letter rune) (*Tile, error) {
	i := r.Index(letter)
	if i == -1 {
		return nil, ErrTileNotInRack
	}
	tile := r.Tiles[i]
	r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)

	return tile, nil
}

// Take removes a tile for the given letter, falling back to a blank
// tile (assigned that letter) if no matching tile is held.
func (r *Rack) Take(letter rune) (*Tile, error) {
	if tile, err := r.Remove(letter); err == nil {
		return tile, nil
	}
	tile, err := r.Remove(BlankLetter)
	if err != nil {
		return nil, ErrTileNotInRack
	}
	tile.assignLetter(letter)
	return tile, nil
}

func (r *Rack) Add(t *Tile) {
	r.Tiles = append(r.Tiles, t)
}

func (r *Rack) AsRunes() []rune {
	return lo.Map(r.Tiles, func(t *Tile, _ int) rune { return t.Letter })
}

func (r *Rack) AsString() string {
	return string(r.AsRunes())
}

// LetterCounts returns the rack contents as a letter multiset,
// blanks included under BlankLetter.
func (r *Rack) LetterCounts() map[rune]int {
	counts := make(map[rune]int, len(r.Tiles))
	for _, t := range r.Tiles {
		if t.Blank {
			counts[BlankLetter]++
		} else {
			counts[t.Letter]++
		}
	}
	return counts
}

// Value is the total point value of the tiles on the rack.
func (r *Rack) Value() int {
	return lo.SumBy(r.Tiles, func(t *Tile) int { return t.Value })
}

func (r *Rack) Len() int {
	return len(r.Tiles)
}

func (r *Rack) IsEmpty() bool {
	return len(r.Tiles) == 0
}
