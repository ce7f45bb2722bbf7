// internal/words/words.go
//
// Provides dictionary and answer stream loading for the solvers.
//
// Responsibilities:
//   - Parse "WORD FREQUENCY" lines into an immutable Corpus.
//   - Parse whitespace-separated answer streams.
//   - Pick the dictionary/answer source: explicit file, BigQuery table, or the
//     embedded defaults from the assets package.
//   - Fingerprint a corpus so stored outcomes can name the dictionary they ran on.
//
// Source selection (Load):
//   1. If Source.DictionaryFile is set, read the dictionary from it.
//   2. Else if Source.DictionaryTable is set, query BigQuery.
//   3. Else fall back to the embedded dictionary.
//   Answers come from Source.AnswersFile or the embedded answer stream.
//
// Constraints:
//   • Words must be exactly 5 lowercase letters (a–z).
//   • Frequencies are non-negative base-10 integers.
//   • Any malformed line aborts the load; nothing is silently skipped except blank lines.

package words

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// Source says where Load reads its inputs from. Zero value = embedded defaults.
type Source struct {
	DictionaryFile  string // path to a "word freq" file
	DictionaryTable string // BigQuery table "project.dataset.table"
	AnswersFile     string // path to a whitespace-separated answer stream
}

// Load resolves src into a corpus and an answer list.
func Load(ctx context.Context, src Source) (*Corpus, []string, error) {
	var (
		c   *Corpus
		err error
	)
	switch {
	case src.DictionaryFile != "":
		c, err = LoadFile(src.DictionaryFile)
	case src.DictionaryTable != "":
		c, err = LoadBigQuery(ctx, src.DictionaryTable)
	default:
		c, err = Embedded()
	}
	if err != nil {
		return nil, nil, err
	}

	var answers []string
	if src.AnswersFile != "" {
		answers, err = LoadAnswersFile(src.AnswersFile)
	} else {
		answers, err = EmbeddedAnswers()
	}
	if err != nil {
		return nil, nil, err
	}
	for _, a := range answers {
		if !c.Contains(a) {
			return nil, nil, fmt.Errorf("words: %w: %q is not in the dictionary", ErrInvalidAnswer, a)
		}
	}
	return c, answers, nil
}

// LoadFile parses the dictionary at path.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open dictionary: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Embedded parses the dictionary compiled into the binary.
func Embedded() (*Corpus, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("words: embedded dictionary: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one "word frequency" pair per line. Blank lines are skipped.
func Parse(r io.Reader) (*Corpus, error) {
	var b builder
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		word, freq, ok := strings.Cut(text, " ")
		if !ok {
			return nil, &MalformedEntryError{Line: line, Text: text, Reason: "missing separator"}
		}
		n, err := strconv.ParseUint(strings.TrimSpace(freq), 10, 64)
		if err != nil {
			return nil, &MalformedEntryError{Line: line, Text: text, Reason: "frequency is not a non-negative integer"}
		}
		if err := b.add(word, n, line, text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read dictionary: %w", err)
	}
	return b.corpus(), nil
}

// NewCorpus builds a corpus from in-memory entries, applying the same
// validation as Parse. Entry order is preserved.
func NewCorpus(entries []Entry) (*Corpus, error) {
	var b builder
	for i, e := range entries {
		if err := b.add(e.Word, e.Freq, i+1, e.Word); err != nil {
			return nil, err
		}
	}
	return b.corpus(), nil
}

// builder accumulates validated entries.
type builder struct {
	entries []Entry
	index   map[string]int
}

func (b *builder) add(word string, freq uint64, line int, text string) error {
	if len(word) != WordLen || !isAlpha(word) {
		return &MalformedEntryError{Line: line, Text: text, Reason: "word must be 5 lowercase letters"}
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if _, dup := b.index[word]; dup {
		return &MalformedEntryError{Line: line, Text: text, Reason: "duplicate word"}
	}
	b.index[word] = len(b.entries)
	b.entries = append(b.entries, Entry{Word: word, Freq: freq})
	return nil
}

func (b *builder) corpus() *Corpus {
	c := &Corpus{entries: b.entries, index: b.index}
	if c.index == nil {
		c.index = map[string]int{}
	}
	h, _ := blake2b.New256(nil)
	for _, e := range c.entries {
		c.total += e.Freq
		if e.Freq > c.maxFreq {
			c.maxFreq = e.Freq
		}
		fmt.Fprintf(h, "%s %d\n", e.Word, e.Freq)
	}
	c.print = hex.EncodeToString(h.Sum(nil)[:12])
	return c
}

// Entries returns the corpus in load order. Callers must not modify it.
func (c *Corpus) Entries() []Entry { return c.entries }

// Len is the number of words.
func (c *Corpus) Len() int { return len(c.entries) }

// Contains reports whether w is a dictionary word.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.index[w]
	return ok
}

// Freq returns the frequency of w and whether w is known.
func (c *Corpus) Freq(w string) (uint64, bool) {
	i, ok := c.index[w]
	if !ok {
		return 0, false
	}
	return c.entries[i].Freq, true
}

// Index returns the load position of w, or -1.
func (c *Corpus) Index(w string) int {
	if i, ok := c.index[w]; ok {
		return i
	}
	return -1
}

// Total is the summed frequency of every word.
func (c *Corpus) Total() uint64 { return c.total }

// MaxFreq is the largest single frequency.
func (c *Corpus) MaxFreq() uint64 { return c.maxFreq }

// Fingerprint is a short blake2b digest of the corpus contents, stable
// across loads of the same dictionary.
func (c *Corpus) Fingerprint() string { return c.print }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
