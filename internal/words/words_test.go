package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader("tares 100\n\nright 7\nwrong  0\n"))
	require.NoError(t, err)

	want := []Entry{{"tares", 100}, {"right", 7}, {"wrong", 0}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, uint64(107), c.Total())
	assert.Equal(t, uint64(100), c.MaxFreq())
	assert.True(t, c.Contains("right"))
	assert.False(t, c.Contains("fight"))
	assert.Equal(t, 1, c.Index("right"))
	assert.Equal(t, -1, c.Index("fight"))

	f, ok := c.Freq("tares")
	assert.True(t, ok)
	assert.Equal(t, uint64(100), f)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing-separator", "tares100\n", 1},
		{"non-numeric", "tares 100\nright many\n", 2},
		{"negative", "tares -3\n", 1},
		{"short-word", "tare 3\n", 1},
		{"uppercase", "TARES 3\n", 1},
		{"duplicate", "tares 1\nright 2\ntares 3\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedEntry)
			var me *MalformedEntryError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.line, me.Line)
		})
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Parse(strings.NewReader("tares 100\nright 7\n"))
	require.NoError(t, err)
	b, err := NewCorpus([]Entry{{"tares", 100}, {"right", 7}})
	require.NoError(t, err)
	c, err := NewCorpus([]Entry{{"tares", 101}, {"right", 7}})
	require.NoError(t, err)

	assert.NotEmpty(t, a.Fingerprint())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers(strings.NewReader("Right wrong\n\ttares\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"right", "wrong", "tares"}, got)

	_, err = ParseAnswers(strings.NewReader("right wron"))
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestEmbeddedDefaults(t *testing.T) {
	c, answers, err := Load(context.Background(), Source{})
	require.NoError(t, err)
	require.NotEmpty(t, answers)
	assert.True(t, c.Contains("tares"))
	for _, a := range answers {
		assert.True(t, c.Contains(a), "answer %q missing from dictionary", a)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "dict.txt")
	ans := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(dict, []byte("right 5\nwrong 3\n"), 0o644))
	require.NoError(t, os.WriteFile(ans, []byte("right\n"), 0o644))

	c, answers, err := Load(context.Background(), Source{DictionaryFile: dict, AnswersFile: ans})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"right"}, answers)

	_, _, err = Load(context.Background(), Source{DictionaryFile: filepath.Join(dir, "missing")})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(ans, []byte("right\nthird\n"), 0o644))
	_, _, err = Load(context.Background(), Source{DictionaryFile: dict, AnswersFile: ans})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestLoadBigQueryRejectsBadTableName(t *testing.T) {
	_, err := LoadBigQuery(context.Background(), "dataset.table")
	assert.Error(t, err)
}
