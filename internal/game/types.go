// internal/game/types.go
//
// Core type definitions for the multi-board game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Word: a validated, uppercase five-letter word.
//   - Row / BoardState: one board's target and guess history.
//   - GameConfig: board count and hard mode, fixed once a game starts.

package game

import "strings"

// WordLength is the fixed number of letters in every word.
const WordLength = 5

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target at a different position.
//   - "absent":  letter has no unmatched occurrence in the target.
//
// The zero value means "unknown" and is only used by KeyboardHint for
// letters that have not been guessed yet.
type Verdict string

const (
	VerdictUnknown Verdict = ""
	VerdictAbsent  Verdict = "absent"
	VerdictPresent Verdict = "present"
	VerdictCorrect Verdict = "correct"
)

// strength orders verdicts for aggregation: Correct > Present > Absent > unknown.
func (v Verdict) strength() int {
	switch v {
	case VerdictCorrect:
		return 3
	case VerdictPresent:
		return 2
	case VerdictAbsent:
		return 1
	default:
		return 0
	}
}

// Stronger reports whether v outranks o.
func (v Verdict) Stronger(o Verdict) bool { return v.strength() > o.strength() }

// Word is an uppercase sequence of exactly WordLength letters A–Z.
// Construct one with ParseWord; the zero value is not a valid word.
type Word string

// ParseWord trims and uppercases s, then validates it.
// Shorter input yields ErrIncompleteGuess; anything else that is not
// WordLength letters A–Z yields ErrInvalidWord.
func ParseWord(s string) (Word, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < WordLength && isAlpha(s) {
		return "", ErrIncompleteGuess
	}
	if len(s) != WordLength || !isAlpha(s) {
		return "", ErrInvalidWord
	}
	return Word(s), nil
}

// MustWord is ParseWord for literals known to be valid. It panics otherwise.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic("game: invalid word " + s + ": " + err.Error())
	}
	return w
}

// String returns the word as a plain string.
func (w Word) String() string { return string(w) }

// Row is one scored guess on one board.
type Row struct {
	Guess    Word      `json:"guess"`
	Verdicts []Verdict `json:"verdicts"`
}

// BoardState holds one board's target and its append-only history.
type BoardState struct {
	Index     int   `json:"index"`
	Target    Word  `json:"-"`
	Completed bool  `json:"completed"`
	History   []Row `json:"history"`
}

// clone returns a deep copy safe to hand to callers.
func (b *BoardState) clone() BoardState {
	out := BoardState{
		Index:     b.Index,
		Target:    b.Target,
		Completed: b.Completed,
		History:   make([]Row, len(b.History)),
	}
	for i, r := range b.History {
		out.History[i] = Row{Guess: r.Guess, Verdicts: append([]Verdict(nil), r.Verdicts...)}
	}
	return out
}

// GameConfig fixes the shape of a game. It is immutable once the game starts.
type GameConfig struct {
	BoardCount int  `json:"boards"`
	HardMode   bool `json:"hardMode"`
}

// WordLength returns the word length for this configuration (always 5).
func (c GameConfig) WordLength() int { return WordLength }

// Validate reports ErrInvalidConfiguration for board counts outside {1,2,4,8}.
func (c GameConfig) Validate() error {
	switch c.BoardCount {
	case 1, 2, 4, 8:
		return nil
	default:
		return ErrInvalidConfiguration
	}
}

// MaxAttempts returns the number of rows allotted for boardCount boards:
// base 6, +2 for two boards, +4 for four, +6 for eight.
func MaxAttempts(boardCount int) int {
	attempts := 6
	switch boardCount {
	case 2:
		attempts += 2
	case 4:
		attempts += 4
	case 8:
		attempts += 6
	}
	return attempts
}

// ModeName returns the display name for a board count.
func ModeName(boardCount int) string {
	switch boardCount {
	case 1:
		return "Wordle"
	case 2:
		return "Duordle"
	case 4:
		return "Quordle"
	case 8:
		return "Octordle"
	default:
		return "Unknown"
	}
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
