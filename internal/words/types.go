// internal/words/types.go
//
// Dictionary types shared by every solver.
// Defines:
//   - Entry: a word with its empirical frequency.
//   - Corpus: the immutable, frequency-annotated dictionary.
//   - MalformedEntryError: why a dictionary line was rejected.

package words

import (
	"errors"
	"fmt"
)

// WordLen is the only word length the loader accepts.
const WordLen = 5

// Entry is a dictionary word and how often it occurs.
type Entry struct {
	Word string
	Freq uint64
}

// Corpus is the loaded dictionary. It is built once and never mutated, so a
// single *Corpus can be handed to any number of concurrent games.
type Corpus struct {
	entries []Entry
	index   map[string]int
	total   uint64
	maxFreq uint64
	print   string
}

// ErrMalformedEntry is matched by every MalformedEntryError.
var ErrMalformedEntry = errors.New("malformed dictionary entry")

// MalformedEntryError reports a dictionary line (or BigQuery row) that could
// not be turned into an Entry.
type MalformedEntryError struct {
	Line   int    // 1-based line or row number
	Text   string // offending input
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("words: line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *MalformedEntryError) Unwrap() error { return ErrMalformedEntry }

// ErrInvalidAnswer is returned for answer stream tokens that are not 5
// letters or, from Load, not in the dictionary.
var ErrInvalidAnswer = errors.New("invalid answer word")
