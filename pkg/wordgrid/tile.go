package wordgrid

// BlankLetter is the face of a blank tile before a letter
// has been assigned to it.
const BlankLetter rune = '*'

// Tile is an immutable letter/value pair. A blank tile keeps its
// Blank flag and zero value even after a letter is assigned to it.
type Tile struct {
	Letter rune
	Value  int
	Blank  bool
}

func NewTile(letter rune, value int) *Tile {
	return &Tile{
		Letter: letter,
		Value:  value,
	}
}

// NewBlankTile returns an unassigned blank tile.
func NewBlankTile() *Tile {
	return &Tile{Letter: BlankLetter, Blank: true}
}

// assignLetter fixes the letter a blank tile stands for. The tile
// behaves as that letter for word formation but still scores zero.
func (t *Tile) assignLetter(letter rune) {
	if !t.Blank {
		return
	}
	t.Letter = letter
	t.Value = 0
}

// TileSet describes a tile distribution: how many copies of each
// letter exist and what each letter is worth.
type TileSet struct {
	Count  map[rune]int
	Values map[rune]int
}

func initTileSet() *TileSet {
	tileCount := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, BlankLetter: 2,
	}

	tileValue := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10, BlankLetter: 0,
	}

	return &TileSet{Count: tileCount, Values: tileValue}
}

// DefaultTileSet is the standard English 100-tile distribution.
var DefaultTileSet = initTileSet()
