// internal/words/words.go
//
// Word list management for target selection and guess validation.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply Random, IsAllowed, IsAnswer and Stats.
//
// Loading behavior (Load):
//   1. Both paths set → answers from the first, allowed guesses from the second.
//   2. Only the allowed path set → that file serves as both lists.
//   3. Neither set → embedded assets/answers.txt and assets/allowed.txt.
//
// Constraints:
//   • Words must be 5 letters A–Z; anything else is dropped while loading.
//   • Lists are normalized to uppercase.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/robalobadob/wordle/apps/multiboard/assets"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// ErrEmptyList is returned when loading yields no answers.
var ErrEmptyList = errors.New("words: answers list is empty")

// List holds the answer words and the allowed guess set.
// It is read-only after construction and safe for concurrent use.
type List struct {
	answers    []game.Word
	answersSet map[game.Word]struct{}
	allowedSet map[game.Word]struct{} // answers ∪ guesses
}

// NewList builds a List from raw words, dropping invalid entries.
// Answers are always allowed.
func NewList(answers, allowed []string) *List {
	l := &List{
		answers:    normalize(answers),
		answersSet: map[game.Word]struct{}{},
		allowedSet: map[game.Word]struct{}{},
	}
	for _, w := range l.answers {
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	return l
}

// Load reads the lists as described in the file header.
func Load(answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: fallback to embedded defaults
	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}

	l := NewList(ansList, allowList)
	if len(l.answers) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// readWordFile loads a word list file in the assets line format.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	out, err := assets.ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// normalize keeps only valid words, uppercased, in input order.
func normalize(in []string) []game.Word {
	out := make([]game.Word, 0, len(in))
	for _, s := range in {
		if w, err := game.ParseWord(s); err == nil {
			out = append(out, w)
		}
	}
	return out
}

// Answers returns a copy of the answer list.
func (l *List) Answers() []game.Word {
	return append([]game.Word(nil), l.answers...)
}

// Random returns a cryptographically random answer.
func (l *List) Random() (game.Word, error) {
	if len(l.answers) == 0 {
		return "", ErrEmptyList
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return "", err
	}
	return l.answers[n.Int64()], nil
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w game.Word) bool {
	_, ok := l.allowedSet[w]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w game.Word) bool {
	_, ok := l.answersSet[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
