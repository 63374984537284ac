package wordgrid

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaddagContains(t *testing.T) {
	is := is.New(t)

	g := NewGaddag()
	words := []string{"CAT", "CATS", "AT", "TEA"}
	for _, w := range words {
		g.Insert(w)
	}

	for _, w := range words {
		is.True(g.Contains(w)) // every inserted word is found
	}

	is.True(!g.Contains("CA"))   // prefixes are not words
	is.True(!g.Contains("TAC"))  // reversed-prefix paths are not words
	is.True(!g.Contains("DOG"))  // never inserted
	is.True(!g.Contains(""))     // empty string
	is.True(!g.Contains("CATSS"))
}

func TestGaddagInsertIdempotent(t *testing.T) {
	g := NewGaddag()
	g.Insert("CAT")
	g.Insert("CAT")

	assert.True(t, g.Contains("CAT"))
	assert.Len(t, g.Root.Edges, 4) // C, A, T and the delimiter
}

func TestWordsFromRespectsPool(t *testing.T) {
	d := testDict(t, "CAT", "CATS", "AT", "TACT")

	pool := map[rune]int{'A': 1, 'T': 1}
	words := d.Gaddag.WordsFrom(pool, 'C', true, true)
	assert.ElementsMatch(t, []string{"CAT"}, words)

	// The pool is restored after traversal.
	assert.Equal(t, map[rune]int{'A': 1, 'T': 1}, pool)

	// TACT needs a second T beyond the pivot.
	pool = map[rune]int{'A': 1, 'C': 1}
	words = d.Gaddag.WordsFrom(pool, 'T', true, true)
	assert.NotContains(t, words, "TACT")
	assert.Contains(t, words, "CAT")
	assert.Contains(t, words, "AT")
}

func TestWordsFromBlanks(t *testing.T) {
	d := testDict(t, "CAT", "CATS")

	// Blanks stand in for the missing T and S.
	pool := map[rune]int{'A': 1, BlankLetter: 2}
	words := d.Gaddag.WordsFrom(pool, 'C', true, true)
	assert.ElementsMatch(t, []string{"CAT", "CATS"}, words)

	// A single blank only covers one of them.
	pool = map[rune]int{'A': 1, BlankLetter: 1}
	words = d.Gaddag.WordsFrom(pool, 'C', true, true)
	assert.ElementsMatch(t, []string{"CAT"}, words)
}

func TestWordsFromDirectionFlags(t *testing.T) {
	d := testDict(t, "CAT", "AT")
	pool := map[rune]int{'C': 2, 'A': 2, 'T': 2}

	// No left extension: the pivot must start the word.
	words := d.Gaddag.WordsFrom(pool, 'A', false, true)
	assert.ElementsMatch(t, []string{"AT"}, words)

	// No right extension: the pivot must end the word.
	words = d.Gaddag.WordsFrom(pool, 'T', true, false)
	assert.ElementsMatch(t, []string{"CAT", "AT"}, words)
}

func TestWordsFromUnknownPivot(t *testing.T) {
	d := testDict(t, "CAT")
	words := d.Gaddag.WordsFrom(map[rune]int{'A': 5}, 'Z', true, true)
	require.Empty(t, words)
}
