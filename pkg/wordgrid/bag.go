package wordgrid

import (
	"errors"

	"lukechampine.com/frand"
)

var ErrBagEmpty = errors.New("bag is empty")

// Bag is the shuffled, drawable tile supply of a game.
type Bag struct {
	Tiles []*Tile

	TileSet *TileSet
}

func NewBag(tileSet *TileSet) *Bag {
	total := 0
	for _, count := range tileSet.Count {
		total += count
	}

	b := &Bag{
		Tiles:   make([]*Tile, 0, total),
		TileSet: tileSet,
	}

	for letter, count := range tileSet.Count {
		for i := 0; i < count; i++ {
			if letter == BlankLetter {
				b.Tiles = append(b.Tiles, NewBlankTile())
			} else {
				b.Tiles = append(b.Tiles, NewTile(letter, tileSet.Values[letter]))
			}
		}
	}

	b.Shuffle()

	return b
}

func (b *Bag) Shuffle() {
	frand.Shuffle(b.TileCount(), func(i, j int) {
		b.Tiles[i], b.Tiles[j] = b.Tiles[j], b.Tiles[i]
	})
}

func (b *Bag) TileCount() int {
	return len(b.Tiles)
}

func (b *Bag) IsEmpty() bool {
	return len(b.Tiles) == 0
}

// DrawTile removes and returns a random tile from the bag.
func (b *Bag) DrawTile() (*Tile, error) {
	tileCount := b.TileCount()
	if tileCount == 0 {
		return nil, ErrBagEmpty
	}

	i := frand.Intn(tileCount)
	tile := b.Tiles[i]
	b.removeTile(i)

	return tile, nil
}

func (b *Bag) removeTile(i int) {
	// No need to keep order in the bag
	end := b.TileCount() - 1
	b.Tiles[i] = b.Tiles[end]
	b.Tiles = b.Tiles[:end]
}

// ReturnTile puts a tile back in the bag. A blank returned after an
// exchange is unassigned again.
func (b *Bag) ReturnTile(t *Tile) {
	if t.Blank {
		t.Letter = BlankLetter
		t.Value = 0
	}
	b.Tiles = append(b.Tiles, t)
}

// CanExchange reports whether the bag holds enough tiles to serve an
// exchange of n tiles.
func (b *Bag) CanExchange(n int) bool {
	return n > 0 && b.TileCount() >= n
}
