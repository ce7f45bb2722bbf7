package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// ParseAnswers reads a whitespace-separated answer stream, lowercasing each
// word. Every token must be a 5-letter word.
func ParseAnswers(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := strings.ToLower(sc.Text())
		if len(w) != WordLen || !isAlpha(w) {
			return nil, fmt.Errorf("words: %w: %q", ErrInvalidAnswer, sc.Text())
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read answers: %w", err)
	}
	return out, nil
}

// LoadAnswersFile parses the answer stream at path.
func LoadAnswersFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open answers: %w", err)
	}
	defer f.Close()
	return ParseAnswers(f)
}

// EmbeddedAnswers parses the answer stream compiled into the binary.
func EmbeddedAnswers() ([]string, error) {
	f, err := assets.Answers()
	if err != nil {
		return nil, fmt.Errorf("words: embedded answers: %w", err)
	}
	defer f.Close()
	return ParseAnswers(f)
}
