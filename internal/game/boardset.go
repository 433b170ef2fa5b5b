// internal/game/boardset.go
//
// BoardSet drives one multi-board game.
// Responsibilities:
//   - Own per-board targets, histories and completion flags.
//   - Gate guesses (length, hard mode) before any mutation.
//   - Score each guess on every active board and fold keyboard hints.
//   - Advance the row counter and decide Continue / AllWon / GameOver.
//
// State per board: Active → Completed (one-directional).
// Session-wide: AllActive → PartiallyCompleted → AllCompleted, tracked by the
// completed index set.

package game

import (
	"fmt"
	"sort"
	"unicode"
)

// OutcomeKind tags the result of an accepted guess.
type OutcomeKind string

const (
	OutcomeContinue OutcomeKind = "continue"
	OutcomeAllWon   OutcomeKind = "won"
	OutcomeGameOver OutcomeKind = "game_over"
)

// BoardResult is the scoring of a guess on one board.
type BoardResult struct {
	Board    int       `json:"board"`
	Verdicts []Verdict `json:"verdicts"`
	Solved   bool      `json:"solved"`
}

// SubmitOutcome reports what an accepted guess did.
// CompletedWords and RemainingWords are filled on terminal outcomes only.
type SubmitOutcome struct {
	Kind           OutcomeKind   `json:"kind"`
	Guess          Word          `json:"guess"`
	Results        []BoardResult `json:"results"`
	AttemptsUsed   int           `json:"attemptsUsed"`
	MaxAttempts    int           `json:"maxAttempts"`
	CompletedCount int           `json:"completedCount"`
	CompletedWords []Word        `json:"completedWords,omitempty"`
	RemainingWords []Word        `json:"remainingWords,omitempty"`
}

// Terminal reports whether the game ended with this guess.
func (o SubmitOutcome) Terminal() bool { return o.Kind == OutcomeAllWon || o.Kind == OutcomeGameOver }

// Won reports whether every board was completed.
func (o SubmitOutcome) Won() bool { return o.Kind == OutcomeAllWon }

// Partial reports a game over with at least one board completed.
func (o SubmitOutcome) Partial() bool { return o.Kind == OutcomeGameOver && o.CompletedCount > 0 }

// CountsAsWin reports whether the result is credited as a win in Stats:
// all boards, or a game over with at least one board completed.
func (o SubmitOutcome) CountsAsWin() bool { return o.Won() || o.Partial() }

// BoardSet owns the boards of one game. It is not safe for concurrent use.
type BoardSet struct {
	cfg         GameConfig
	maxAttempts int
	boards      []*BoardState
	completed   map[int]struct{}
	keyboard    KeyboardHint
	currentRow  int
	pending     []byte
	finished    bool
}

// NewBoardSet validates cfg and targets and returns a set ready for row 0.
func NewBoardSet(cfg GameConfig, targets []Word) (*BoardSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(targets) != cfg.BoardCount {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrTargetCount, cfg.BoardCount, len(targets))
	}
	b := &BoardSet{
		cfg:         cfg,
		maxAttempts: MaxAttempts(cfg.BoardCount),
		boards:      make([]*BoardState, 0, cfg.BoardCount),
		completed:   make(map[int]struct{}, cfg.BoardCount),
		keyboard:    KeyboardHint{},
		pending:     make([]byte, 0, WordLength),
	}
	for i, t := range targets {
		w, err := ParseWord(string(t))
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, ErrInvalidWord)
		}
		b.boards = append(b.boards, &BoardState{Index: i, Target: w})
	}
	return b, nil
}

// SubmitGuess validates, scores and applies a full guess.
// Validation failures (ErrIncompleteGuess, ErrInvalidWord, *HardModeError)
// leave every counter, history and hint untouched.
func (b *BoardSet) SubmitGuess(raw string) (SubmitOutcome, error) {
	if b.finished {
		return SubmitOutcome{}, ErrGameFinished
	}
	guess, err := ParseWord(raw)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if b.cfg.HardMode {
		for _, bd := range b.boards {
			if v := CheckHardMode(guess, *bd); v != nil {
				return SubmitOutcome{}, v
			}
		}
	}

	out := SubmitOutcome{
		Guess:        guess,
		AttemptsUsed: b.currentRow + 1,
		MaxAttempts:  b.maxAttempts,
	}

	// Score every active board and fold its hints.
	hints := b.keyboard
	for _, bd := range b.boards {
		if bd.Completed {
			continue
		}
		vs := Evaluate(guess, bd.Target)
		bd.History = append(bd.History, Row{Guess: guess, Verdicts: vs})
		hints = FoldHints(hints, guess, vs)
		out.Results = append(out.Results, BoardResult{
			Board:    bd.Index,
			Verdicts: append([]Verdict(nil), vs...),
			Solved:   allCorrect(vs),
		})
	}
	b.keyboard = hints

	for i, bd := range b.boards {
		if guess == bd.Target {
			bd.Completed = true
			b.completed[i] = struct{}{}
		}
	}
	out.CompletedCount = len(b.completed)
	b.pending = b.pending[:0]

	switch {
	case len(b.completed) == len(b.boards):
		out.Kind = OutcomeAllWon
		out.CompletedWords = b.Targets()
		b.finished = true
	case b.currentRow == b.maxAttempts-1:
		out.Kind = OutcomeGameOver
		out.CompletedWords, out.RemainingWords = b.splitTargets()
		b.finished = true
	default:
		out.Kind = OutcomeContinue
		b.currentRow++
	}
	return out, nil
}

// AddLetter appends a letter to the pending row. Letters past the word
// length are ignored.
func (b *BoardSet) AddLetter(r rune) error {
	if b.finished {
		return ErrGameFinished
	}
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return ErrInvalidWord
	}
	if len(b.pending) < WordLength {
		b.pending = append(b.pending, byte(r))
	}
	return nil
}

// DeleteLetter removes the last pending letter, if any.
func (b *BoardSet) DeleteLetter() {
	if n := len(b.pending); n > 0 && !b.finished {
		b.pending = b.pending[:n-1]
	}
}

// Pending returns the letters typed into the current row.
func (b *BoardSet) Pending() string { return string(b.pending) }

// SubmitPending submits the pending row.
func (b *BoardSet) SubmitPending() (SubmitOutcome, error) {
	if b.finished {
		return SubmitOutcome{}, ErrGameFinished
	}
	if len(b.pending) != WordLength {
		return SubmitOutcome{}, ErrIncompleteGuess
	}
	return b.SubmitGuess(string(b.pending))
}

// splitTargets partitions targets into completed and remaining, in board order.
func (b *BoardSet) splitTargets() (done, remaining []Word) {
	for _, bd := range b.boards {
		if bd.Completed {
			done = append(done, bd.Target)
		} else {
			remaining = append(remaining, bd.Target)
		}
	}
	return done, remaining
}

// ----------------------------- snapshots ------------------------------------

// Config returns the game configuration.
func (b *BoardSet) Config() GameConfig { return b.cfg }

// MaxAttempts returns the number of rows allotted.
func (b *BoardSet) MaxAttempts() int { return b.maxAttempts }

// CurrentRow is the zero-based row the next guess fills.
func (b *BoardSet) CurrentRow() int { return b.currentRow }

// CurrentCol is the number of pending letters in the current row.
func (b *BoardSet) CurrentCol() int { return len(b.pending) }

// Finished reports whether a terminal outcome was reached.
func (b *BoardSet) Finished() bool { return b.finished }

// CompletedCount returns the number of completed boards.
func (b *BoardSet) CompletedCount() int { return len(b.completed) }

// CompletedIndices returns completed board indices in ascending order.
func (b *BoardSet) CompletedIndices() []int {
	out := make([]int, 0, len(b.completed))
	for i := range b.completed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Boards returns deep copies of every board.
func (b *BoardSet) Boards() []BoardState {
	out := make([]BoardState, len(b.boards))
	for i, bd := range b.boards {
		out[i] = bd.clone()
	}
	return out
}

// Keyboard returns a copy of the shared keyboard hint.
func (b *BoardSet) Keyboard() KeyboardHint { return b.keyboard.clone() }

// Targets returns the target words in board order.
func (b *BoardSet) Targets() []Word {
	out := make([]Word, len(b.boards))
	for i, bd := range b.boards {
		out[i] = bd.Target
	}
	return out
}
