package wordgrid

import (
	"testing"

	"github.com/matryer/is"
)

func TestBagHoldsFullDistribution(t *testing.T) {
	is := is.New(t)

	bag := NewBag(DefaultTileSet)
	is.Equal(bag.TileCount(), 100)

	blanks := 0
	for _, tile := range bag.Tiles {
		if tile.Blank {
			is.Equal(tile.Letter, BlankLetter)
			is.Equal(tile.Value, 0)
			blanks++
		}
	}
	is.Equal(blanks, 2)
}

func TestBagDrawsToEmpty(t *testing.T) {
	is := is.New(t)

	bag := NewBag(DefaultTileSet)
	for i := 0; i < 100; i++ {
		_, err := bag.DrawTile()
		is.NoErr(err)
	}
	is.True(bag.IsEmpty())

	_, err := bag.DrawTile()
	is.Equal(err, ErrBagEmpty)
}

func TestBagReturnUnassignsBlank(t *testing.T) {
	is := is.New(t)

	bag := &Bag{TileSet: DefaultTileSet}
	blank := NewBlankTile()
	blank.assignLetter('Q')

	bag.ReturnTile(blank)
	is.Equal(bag.TileCount(), 1)
	is.Equal(bag.Tiles[0].Letter, BlankLetter)
	is.Equal(bag.Tiles[0].Value, 0)
}

func TestBagCanExchange(t *testing.T) {
	is := is.New(t)

	bag := &Bag{Tiles: tilesOf("ABC"), TileSet: DefaultTileSet}
	is.True(bag.CanExchange(1))
	is.True(bag.CanExchange(3))
	is.True(!bag.CanExchange(4))
	is.True(!bag.CanExchange(0))
}
