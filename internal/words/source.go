package words

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// ErrRejected marks a candidate target that failed validation.
var ErrRejected = errors.New("words: candidate rejected")

// Source provides target words for new games.
type Source interface {
	ProvideTargetWord(ctx context.Context) (game.Word, error)
}

// Validator decides whether a typed guess may be submitted.
type Validator interface {
	IsAcceptableGuess(ctx context.Context, w game.Word) bool
}

// ListSource draws targets from a List.
type ListSource struct {
	list *List
}

// NewListSource wraps l as a Source.
func NewListSource(l *List) *ListSource { return &ListSource{list: l} }

// ProvideTargetWord returns a random answer from the list.
func (s *ListSource) ProvideTargetWord(ctx context.Context) (game.Word, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.list.Random()
}

// ListValidator accepts guesses found in a List.
type ListValidator struct {
	list *List
}

// NewListValidator wraps l as a Validator.
func NewListValidator(l *List) *ListValidator { return &ListValidator{list: l} }

// IsAcceptableGuess reports whether w is in the allowed set.
func (v *ListValidator) IsAcceptableGuess(_ context.Context, w game.Word) bool {
	return v.list.IsAllowed(w)
}

// maxDrawsPerTarget bounds how often Targets redraws to avoid a duplicate.
const maxDrawsPerTarget = 4

// Targets draws n target words from src. Duplicates are redrawn a few times
// and accepted only if the source keeps repeating itself.
func Targets(ctx context.Context, src Source, n int) ([]game.Word, error) {
	out := make([]game.Word, 0, n)
	seen := make(map[game.Word]struct{}, n)
	for len(out) < n {
		var w game.Word
		for draw := 0; draw < maxDrawsPerTarget; draw++ {
			var err error
			if w, err = src.ProvideTargetWord(ctx); err != nil {
				return nil, err
			}
			if _, dup := seen[w]; !dup {
				break
			}
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}
