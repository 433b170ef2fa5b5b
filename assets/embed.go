// Package assets embeds the default word lists and the line format shared
// with on-disk lists: one word per line, blank lines and "#" comments skipped.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadList parses a word list from r, uppercasing each entry. Entries are
// not validated; callers drop words of the wrong shape.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return words, nil
}

// AnswersList returns the embedded answer words.
func AnswersList() ([]string, error) { return readEmbedded(AnswersFile) }

// AllowedList returns the embedded extra guess words.
func AllowedList() ([]string, error) { return readEmbedded(AllowedFile) }
