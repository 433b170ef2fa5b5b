package game

import (
	"errors"
	"fmt"
)

// Errors returned by the engine. None is fatal and none mutates state;
// callers compare with errors.Is and re-prompt.
var (
	ErrIncompleteGuess      = errors.New("not enough letters")
	ErrInvalidWord          = errors.New("guess must be 5 letters A-Z")
	ErrHardModeViolation    = errors.New("must use revealed hints")
	ErrInvalidConfiguration = errors.New("board count must be 1, 2, 4 or 8")
	ErrTargetCount          = errors.New("target count does not match board count")
	ErrGameFinished         = errors.New("game finished")
	ErrWrongPhase           = errors.New("operation not allowed in current phase")
)

// HardModeRule names which revealed hint a guess ignored.
type HardModeRule string

const (
	RuleKeepCorrect HardModeRule = "keep_correct"
	RuleUsePresent  HardModeRule = "use_present"
)

// HardModeError describes the first hard-mode violation found.
// Position is only meaningful for RuleKeepCorrect.
type HardModeError struct {
	Board    int
	Position int
	Letter   byte
	Rule     HardModeRule
}

func (e *HardModeError) Error() string {
	if e.Rule == RuleKeepCorrect {
		return fmt.Sprintf("board %d: letter %d must be %c", e.Board+1, e.Position+1, e.Letter)
	}
	return fmt.Sprintf("board %d: guess must contain %c", e.Board+1, e.Letter)
}

// Is makes errors.Is(err, ErrHardModeViolation) match.
func (e *HardModeError) Is(target error) bool { return target == ErrHardModeViolation }
