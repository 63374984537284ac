package wordgrid

// Delimiter is the separation token between the reversed prefix and
// the suffix of an inserted path.
const Delimiter rune = '^'

// Node is a GADDAG trie node. The structure is acyclic and
// insert-only: nodes are never removed or rewired after insertion.
type Node struct {
	IsWord bool
	Edges  map[rune]*Node
}

func NewNode() *Node {
	return &Node{
		Edges: make(map[rune]*Node),
	}
}

// Gaddag is a bidirectional word index. For every word it stores one
// path per pivot position, of the form
//
//	reverse(prefix) + Delimiter + suffix
//
// so that the whole word can be rebuilt from any letter it contains
// by first walking left (prepending) and then, past the delimiter,
// walking right (appending).
type Gaddag struct {
	Root *Node
}

func NewGaddag() *Gaddag {
	return &Gaddag{Root: NewNode()}
}

// Insert adds every pivot rotation of word to the index. The rotation
// with the pivot at the very start is the path Delimiter+word; the one
// with an empty suffix marks the delimiter node itself as terminal.
func (g *Gaddag) Insert(word string) {
	runes := []rune(word)
	n := len(runes)

	seq := make([]rune, 0, n+1)
	for i := 0; i <= n; i++ {
		seq = seq[:0]
		for j := i - 1; j >= 0; j-- {
			seq = append(seq, runes[j])
		}
		seq = append(seq, Delimiter)
		seq = append(seq, runes[i:]...)
		g.insertPath(seq)
	}
}

func (g *Gaddag) insertPath(seq []rune) {
	curr := g.Root
	for _, letter := range seq {
		next, ok := curr.Edges[letter]
		if !ok {
			next = NewNode()
			curr.Edges[letter] = next
		}
		curr = next
	}
	curr.IsWord = true
}

// Contains reports whether word was inserted, by walking the
// Delimiter+word path.
func (g *Gaddag) Contains(word string) bool {
	curr, ok := g.Root.Edges[Delimiter]
	if !ok {
		return false
	}
	for _, letter := range word {
		curr, ok = curr.Edges[letter]
		if !ok {
			return false
		}
	}
	return curr.IsWord
}

// WordsFrom enumerates the dictionary words that contain the pivot
// letter and can be built without using more copies of any letter than
// pool provides. Blanks in the pool (keyed by BlankLetter) stand in
// for any missing letter. The pivot itself is fixed and consumes
// nothing. allowLeft and allowRight control whether the word may
// extend before, respectively after, the pivot.
//
// The pool is mutated during traversal and restored on backtrack; it
// is unchanged when WordsFrom returns.
func (g *Gaddag) WordsFrom(pool map[rune]int, pivot rune, allowLeft, allowRight bool) []string {
	start, ok := g.Root.Edges[pivot]
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	words := make([]string, 0)

	// After the delimiter: letters are appended to the word.
	var walkRight func(n *Node, word []rune)
	walkRight = func(n *Node, word []rune) {
		if n.IsWord {
			w := string(word)
			if _, dup := seen[w]; !dup {
				seen[w] = struct{}{}
				words = append(words, w)
			}
		}
		if !allowRight {
			return
		}
		for letter, next := range n.Edges {
			if letter == Delimiter {
				continue
			}
			used, ok := takeFromPool(pool, letter)
			if !ok {
				continue
			}
			walkRight(next, append(word, letter))
			pool[used]++
		}
	}

	// Before the delimiter: letters are prepended to the word.
	var walkLeft func(n *Node, word []rune)
	walkLeft = func(n *Node, word []rune) {
		if next, ok := n.Edges[Delimiter]; ok {
			walkRight(next, word)
		}
		if !allowLeft {
			return
		}
		for letter, next := range n.Edges {
			if letter == Delimiter {
				continue
			}
			used, ok := takeFromPool(pool, letter)
			if !ok {
				continue
			}
			prepended := make([]rune, 0, len(word)+1)
			prepended = append(prepended, letter)
			prepended = append(prepended, word...)
			walkLeft(next, prepended)
			pool[used]++
		}
	}

	walkLeft(start, []rune{pivot})

	return words
}

// takeFromPool consumes one occurrence of letter from the pool,
// falling back to a blank. It returns the key that was decremented.
func takeFromPool(pool map[rune]int, letter rune) (rune, bool) {
	if pool[letter] > 0 {
		pool[letter]--
		return letter, true
	}
	if pool[BlankLetter] > 0 {
		pool[BlankLetter]--
		return BlankLetter, true
	}
	return 0, false
}
