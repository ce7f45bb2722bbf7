package game

import (
	"fmt"
	"strings"
)

// Index encodes m as a base-3 number in [0, NumMasks), position 0 being the
// most significant digit. Solvers use it to address a fixed-size bucket array.
func (m Mask) Index() int {
	n := 0
	for _, c := range m {
		n = n*3 + int(c)
	}
	return n
}

// MaskFromIndex is the inverse of Mask.Index.
func MaskFromIndex(i int) Mask {
	if i < 0 || i >= NumMasks {
		panic(fmt.Sprintf("game: mask index %d out of range", i))
	}
	var m Mask
	for p := WordLen - 1; p >= 0; p-- {
		m[p] = Correctness(i % 3)
		i /= 3
	}
	return m
}

// AllMasks returns every mask in index order.
func AllMasks() []Mask {
	out := make([]Mask, NumMasks)
	for i := range out {
		out[i] = MaskFromIndex(i)
	}
	return out
}

// Solved reports whether every position is Correct.
func (m Mask) Solved() bool {
	for _, c := range m {
		if c != Correct {
			return false
		}
	}
	return true
}

// String renders the mask as C/M/I letters, e.g. "ICMII".
func (m Mask) String() string {
	var b strings.Builder
	for _, c := range m {
		b.WriteByte(c.letter())
	}
	return b.String()
}

func (c Correctness) letter() byte {
	switch c {
	case Correct:
		return 'C'
	case Misplaced:
		return 'M'
	default:
		return 'I'
	}
}

// ParseMask reads the String form back. Lowercase letters are accepted.
func ParseMask(s string) (Mask, error) {
	var m Mask
	if len(s) != WordLen {
		return m, fmt.Errorf("mask %q: want %d symbols", s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'C', 'c':
			m[i] = Correct
		case 'M', 'm':
			m[i] = Misplaced
		case 'I', 'i':
			m[i] = Incorrect
		default:
			return m, fmt.Errorf("mask %q: bad symbol %q at %d", s, s[i], i)
		}
	}
	return m, nil
}

// Matches reports whether word could still be the secret after r was observed.
func (r Record) Matches(word string) bool {
	return Compute(word, r.Word) == r.Mask
}
