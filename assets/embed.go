// Package assets embeds the default dictionary and answer stream so the
// solver runs without any files configured.
//
//   - dictionary.txt: one "word frequency" pair per line, sorted by word.
//   - answers.txt:    whitespace-separated secrets, one game per word.
package assets

import (
	"embed"
	"io"
)

//go:embed dictionary.txt answers.txt
var FS embed.FS

func open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}

// Dictionary opens the embedded frequency-annotated word list.
func Dictionary() (io.ReadCloser, error) {
	return open("dictionary.txt")
}

// Answers opens the embedded answer stream.
func Answers() (io.ReadCloser, error) {
	return open("answers.txt")
}
