package words

import (
	"github.com/agnivade/levenshtein"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// maxSuggestDistance bounds how far a suggestion may be from the guess.
const maxSuggestDistance = 1

// Suggest returns the allowed word closest to w by edit distance, if one is
// within maxSuggestDistance. Ties go to the alphabetically first word.
func (l *List) Suggest(w game.Word) (game.Word, bool) {
	var (
		best     game.Word
		bestDist = maxSuggestDistance + 1
	)
	for cand := range l.allowedSet {
		d := levenshtein.ComputeDistance(string(w), string(cand))
		if d < bestDist || (d == bestDist && cand < best) {
			best, bestDist = cand, d
		}
	}
	if bestDist > maxSuggestDistance || best == w {
		return "", false
	}
	return best, true
}
