package ladder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for dictionary construction and search preconditions
var (
	ErrNilDictionary   = errors.New("ladder: dictionary is nil")
	ErrEmptyWord       = errors.New("ladder: empty word")
	ErrLengthMismatch  = errors.New("ladder: word length mismatch")
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Lookup is the membership test the neighbor generator needs
type Lookup interface {
	Contains(word string) bool
}

// Dictionary is an immutable set of words sharing one length.
// It is safe for concurrent readers.
type Dictionary struct {
	words  map[string]struct{}
	length int
}

// NewDictionary builds a dictionary from words. Duplicates collapse.
// Every word must be non-empty and all words must have the same length;
// a dictionary never holds words of mixed length.
func NewDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{
		words: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if w == "" {
			return nil, ErrEmptyWord
		}
		if d.length == 0 {
			d.length = len(w)
		} else if len(w) != d.length {
			return nil, fmt.Errorf("%w: %q has length %d, dictionary words have length %d",
				ErrLengthMismatch, w, len(w), d.length)
		}
		d.words[w] = struct{}{}
	}
	return d, nil
}

// Contains reports whether word is in the dictionary
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLength returns the shared word length, or 0 for an empty dictionary
func (d *Dictionary) WordLength() int {
	return d.length
}

// Words returns a sorted copy of the dictionary contents
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Ladder is a sequence of words where consecutive words differ in one position
type Ladder []string

// Len returns the number of words in the ladder
func (l Ladder) Len() int {
	return len(l)
}

// String joins the words with single spaces
func (l Ladder) String() string {
	return strings.Join(l, " ")
}

// Last returns the final word, or "" for an empty ladder
func (l Ladder) Last() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// extend returns a copy of l with word appended
func (l Ladder) extend(word string) Ladder {
	next := make(Ladder, len(l)+1)
	copy(next, l)
	next[len(l)] = word
	return next
}

// Compare orders ladders lexicographically word by word, shorter first on a tie
func Compare(a, b Ladder) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// SortLadders sorts ladders in place using Compare
func SortLadders(ladders []Ladder) {
	sort.Slice(ladders, func(i, j int) bool {
		return Compare(ladders[i], ladders[j]) < 0
	})
}

// Stats describes the work done by one search
type Stats struct {
	Levels       int // BFS levels entered
	Expanded     int // partial ladders whose neighbors were generated
	Enqueued     int // partial ladders pushed onto the frontier
	AnswerLength int // length of the shortest ladders, 0 if none was found
}

// Result holds the shortest ladders and the search stats
type Result struct {
	Ladders []Ladder
	Stats   Stats
}

// Found reports whether at least one ladder was found
func (r *Result) Found() bool {
	return len(r.Ladders) > 0
}
