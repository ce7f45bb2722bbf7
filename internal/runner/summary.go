package runner

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Summary aggregates finished games. Failed games count towards Games and
// Failed but never towards the histogram or the average.
type Summary struct {
	Games     int
	Solved    int
	Failed    int
	Rounds    int         // summed over solved games
	Histogram map[int]int // rounds → solved games
}

// Add folds one outcome in.
func (s *Summary) Add(out game.Outcome) {
	s.Games++
	if !out.Solved {
		s.Failed++
		return
	}
	if s.Histogram == nil {
		s.Histogram = make(map[int]int)
	}
	s.Solved++
	s.Rounds += out.Rounds
	s.Histogram[out.Rounds]++
}

// Average is the mean rounds over solved games, 0 if none were solved.
func (s Summary) Average() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Solved)
}

const barWidth = 40

// Render writes a histogram of rounds-to-solve followed by the totals.
// Bars are scaled to the tallest row.
func (s Summary) Render(w io.Writer, colored bool) error {
	keys := make([]int, 0, len(s.Histogram))
	peak := 0
	for k, n := range s.Histogram {
		keys = append(keys, k)
		if n > peak {
			peak = n
		}
	}
	sort.Ints(keys)

	paint := func(c, text string) string {
		if !colored {
			return text
		}
		return color.Ize(c, text)
	}

	for _, k := range keys {
		n := s.Histogram[k]
		width := n * barWidth / peak
		if width == 0 {
			width = 1
		}
		c := color.Green
		if k > 6 {
			c = color.Yellow
		}
		if _, err := fmt.Fprintf(w, "%3d | %s %d\n", k, paint(c, strings.Repeat("#", width)), n); err != nil {
			return err
		}
	}
	if s.Failed > 0 {
		if _, err := fmt.Fprintf(w, "%s %d\n", paint(color.Red, "failed"), s.Failed); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "games %d, solved %d, average %.4f\n", s.Games, s.Solved, s.Average())
	return err
}

// RenderMask paints a mask the way the game shows it: green, yellow, grey.
func RenderMask(word string, m game.Mask, colored bool) string {
	if !colored {
		return word + " " + m.String()
	}
	var b strings.Builder
	for i := 0; i < len(word) && i < len(m); i++ {
		c := color.Gray
		switch m[i] {
		case game.Correct:
			c = color.Green
		case game.Misplaced:
			c = color.Yellow
		}
		b.WriteString(color.Ize(c, string(word[i])))
	}
	return b.String()
}
