package wordgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDict builds a dictionary from the given words.
func testDict(t *testing.T, words ...string) *Dictionary {
	t.Helper()
	d, err := LoadDictionary(strings.NewReader(strings.Join(words, "\n")))
	require.NoError(t, err)
	return d
}

// gameDict is a small but realistic lexicon: the two-letter words plus
// a handful of longer ones, enough for bots to keep finding plays.
func gameDict(t *testing.T) *Dictionary {
	t.Helper()
	return testDict(t,
		"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN",
		"AR", "AS", "AT", "AW", "AX", "AY", "BA", "BE", "BI", "BO",
		"BY", "DE", "DO", "ED", "EF", "EH", "EL", "EM", "EN", "ER",
		"ES", "ET", "EX", "FA", "GO", "HA", "HE", "HI", "HM", "HO",
		"ID", "IF", "IN", "IS", "IT", "JO", "KA", "LA", "LI", "LO",
		"MA", "ME", "MI", "MM", "MO", "MU", "MY", "NA", "NE", "NO",
		"NU", "OD", "OE", "OF", "OH", "OI", "OM", "ON", "OP", "OR",
		"OS", "OW", "OX", "OY", "PA", "PE", "PI", "QI", "RE", "SH",
		"SI", "SO", "TA", "TI", "TO", "UH", "UM", "UN", "UP", "US",
		"UT", "WE", "WO", "XI", "XU", "YA", "YE", "YO", "ZA",
		"ATE", "CAT", "CATS", "DOG", "DOGS", "EAT", "EATS", "NET",
		"NETS", "ONE", "ONES", "RAT", "RATE", "RATES", "RATS", "SEA",
		"SEAT", "SEATS", "TAR", "TARS", "TEA", "TEAR", "TEARS", "TEAS",
		"TEN", "TENS", "TIE", "TIES", "TOE", "TOES", "STONE", "NOTES",
		"ONSET", "TONES",
	)
}

// tilesOf builds tiles for the given letters using the default
// values; '*' makes an unassigned blank.
func tilesOf(letters string) []*Tile {
	tiles := make([]*Tile, 0, len(letters))
	for _, letter := range letters {
		if letter == BlankLetter {
			tiles = append(tiles, NewBlankTile())
		} else {
			tiles = append(tiles, NewTile(letter, DefaultTileSet.Values[letter]))
		}
	}
	return tiles
}

// rackOf replaces the rack contents of p with the given letters.
func rackOf(p *Player, letters string) {
	p.Rack.Tiles = tilesOf(letters)
}

// testGame builds a started two-player game with controlled racks.
func testGame(t *testing.T, dict *Dictionary, rackA, rackB string) (*Game, *Player, *Player) {
	t.Helper()
	a := NewPlayer("Ada")
	b := NewPlayer("Ben")
	g, err := NewGame(dict, DefaultTileSet, a, b)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	g.Current = 0
	rackOf(a, rackA)
	rackOf(b, rackB)
	return g, a, b
}
