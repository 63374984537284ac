package wordgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDictionaryCleansInput(t *testing.T) {
	input := strings.Join([]string{
		"cat",
		"CAT",
		"",
		"a",
		"4X4",
		"  dog  ",
		"HELLO-WORLD",
		"TEA",
	}, "\n")

	d, err := LoadDictionary(strings.NewReader(input))
	require.NoError(t, err)

	// "cat" and "CAT" collapse; empty, single-letter and
	// non-alphabetic lines are skipped.
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("DOG"))
	assert.True(t, d.Contains("TEA"))
	assert.False(t, d.Contains("cat"))
	assert.False(t, d.Contains("A"))
	assert.False(t, d.Contains("HELLO-WORLD"))

	// The GADDAG sees the same word set.
	assert.True(t, d.Gaddag.Contains("CAT"))
	assert.False(t, d.Gaddag.Contains("4X4"))
}
