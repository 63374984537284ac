package wordgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Dictionary is a word set with O(1) membership plus the GADDAG index
// built from the same words. It is built once per session and never
// mutated afterwards.
type Dictionary struct {
	Words  map[string]struct{}
	Gaddag *Gaddag
}

// LoadDictionary reads a plain-text word list, one word per line.
// Words are upper-cased; empty, non-alphabetic or single-letter lines
// are skipped and duplicates are idempotent. A read error aborts the
// load.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		Words:  make(map[string]struct{}),
		Gaddag: NewGaddag(),
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(word) < 2 || !isAlpha(word) {
			continue
		}
		if _, ok := d.Words[word]; ok {
			continue
		}
		d.Words[word] = struct{}{}
		d.Gaddag.Insert(word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	log.Debug().Int("words", len(d.Words)).Msg("dictionary loaded")

	return d, nil
}

// LoadDictionaryFile loads a word list from the file at path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	return LoadDictionary(f)
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Words[word]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.Words)
}

func isAlpha(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
